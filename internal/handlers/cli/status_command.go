package cli

import (
	"fmt"
	"io"

	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/akash-sh/akash/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewStatusCommand creates the 'status' subcommand.
func NewStatusCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Compare stored aliases with your shell config",
		Long: `Reads the akash block back out of the shell config file and reports
aliases that are missing from it, present only in it, or different.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, d, err := resolveShell(cmd, deps)
			if err != nil {
				return err
			}
			st, err := deps.Management.Status(d)
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), d, st)
			return nil
		},
	}
}

func printStatus(w io.Writer, d dialect.Dialect, st ports.SyncStatus) {
	path := ui.PathColor(ui.FriendlyPath(st.ConfigPath))
	fmt.Fprintf(w, "Shell:        %s\n", ui.ShellColor(d.Name()))
	fmt.Fprintf(w, "Config file:  %s\n", path)
	fmt.Fprintf(w, "Stored:       %d alias(es)\n", st.StoreCount)

	switch {
	case !st.FileExists:
		fmt.Fprintln(w, ui.WarningColor("The config file does not exist yet."))
		fmt.Fprintf(w, "Run %s to create it.\n", ui.InfoColor("akash init"))
		return
	case !st.BlockFound:
		fmt.Fprintln(w, ui.WarningColor("No akash block found in the config file."))
		fmt.Fprintf(w, "Run %s to add one.\n", ui.InfoColor("akash apply"))
		return
	case st.InSync():
		fmt.Fprintln(w, ui.SuccessColor("In sync."))
		return
	}

	fmt.Fprintln(w, ui.WarningColor("Out of sync:"))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Alias", "State"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	for _, name := range st.Missing {
		table.Append([]string{name, "not applied yet"})
	}
	for _, name := range st.Changed {
		table.Append([]string{name, "changed since last apply"})
	}
	for _, name := range st.Extra {
		table.Append([]string{name, "only in config file"})
	}
	table.Render()
	fmt.Fprintf(w, "Run %s to update the config file.\n", ui.InfoColor("akash apply"))
}
