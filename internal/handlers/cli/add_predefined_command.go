package cli

import (
	"bufio"
	"fmt"

	"github.com/akash-sh/akash/internal/core/domain/alias"
	"github.com/akash-sh/akash/internal/handlers/ui"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

type addPredefinedFlags struct {
	all   bool
	yes   bool
	noFZF bool
}

// NewAddPredefinedCommand creates the command for adding bundled aliases.
func NewAddPredefinedCommand(deps Dependencies) *cobra.Command {
	var flags addPredefinedFlags

	cmd := &cobra.Command{
		Use:   "add-predefined",
		Short: "Pick aliases from the bundled collection and add them to your store",
		Long: `Shows the predefined aliases whose names you have not used yet and lets you
pick which ones to add. Uses fzf for selection if available, otherwise falls
back to numeric input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddPredefined(cmd, deps, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.all, "all", false, "Select every available predefined alias")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&flags.noFZF, "no-fzf", false, "Use numeric selection even if fzf is installed")
	return cmd
}

func runAddPredefined(cmd *cobra.Command, deps Dependencies, flags addPredefinedFlags) error {
	if deps.Predefined == nil {
		return errors.New("predefined alias provider is not initialized")
	}
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	predefined, err := deps.Predefined.GetPredefinedAliases()
	if err != nil {
		return errors.Wrap(err, "failed to load predefined aliases")
	}
	if len(predefined) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No predefined aliases are available."))
		return nil
	}

	existing, err := deps.Management.ListAliases()
	if err != nil {
		return err
	}
	available := filterUnused(predefined, existing)
	if len(available) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("All %d predefined aliases are already in your store.", len(predefined))))
		return nil
	}
	fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Found %d predefined aliases. %d are available for selection.", len(predefined), len(available))))

	selected, err := choosePredefined(in, cmd, available, flags)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases were selected to be added."))
		return nil
	}

	if !flags.yes {
		ok, err := confirm(in, out, fmt.Sprintf("Do you want to add these %d selected aliases?", len(selected)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, ui.InfoColor("Aborted. No aliases were added."))
			return nil
		}
	}

	added, skipped, err := deps.Management.AddPredefined(selected)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %d predefined alias(es) added.\n", ui.SuccessColor("Done!"), added)
	if skipped > 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d alias(es) were skipped because the name is taken or invalid.", skipped)))
	}
	if added > 0 {
		fmt.Fprintf(out, "Run %s to write them to your shell config\n", ui.InfoColor("akash apply"))
	}
	return nil
}

func choosePredefined(in *bufio.Reader, cmd *cobra.Command, available []alias.Alias, flags addPredefinedFlags) ([]alias.Alias, error) {
	out := cmd.OutOrStdout()
	if flags.all {
		return available, nil
	}
	if !flags.noFZF {
		selected, err := selectAliasesViaFZF(available)
		switch {
		case err == nil:
			return selected, nil
		case errors.Is(err, ErrFZFCancelled):
			fmt.Fprintln(out, ui.InfoColor("Selection cancelled via fzf."))
			return nil, nil
		case errors.Is(err, ErrFZFNotFound):
			fmt.Fprintln(out, ui.WarningColor("fzf not found in PATH. Falling back to numeric selection."))
		default:
			fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Error during fzf selection: %v. Falling back to numeric selection.", err)))
		}
	}
	return selectAliasesNumerically(in, out, available)
}

// filterUnused drops candidates whose name is already stored.
func filterUnused(candidates, existing []alias.Alias) []alias.Alias {
	taken := make(map[string]bool, len(existing))
	for _, a := range existing {
		taken[a.Name] = true
	}
	var free []alias.Alias
	for _, c := range candidates {
		if !taken[c.Name] {
			free = append(free, c)
		}
	}
	return free
}
