package cli

import (
	"fmt"
	"io"

	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/akash-sh/akash/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewApplyCommand creates the 'apply' subcommand.
func NewApplyCommand(deps Dependencies) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Write your aliases into the shell config file",
		Long: `Renders every stored alias for the selected shell and replaces the akash
block in its startup file, or appends the block when there is none.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, d, err := resolveShell(cmd, deps)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !dryRun {
				return applyAndReport(out, deps.Management, d)
			}

			res, err := deps.Management.Preview(d)
			if err != nil {
				return err
			}
			path := ui.PathColor(ui.FriendlyPath(res.ConfigPath))
			if res.Changed {
				fmt.Fprintf(out, "Would write %d alias(es) for %s to %s:\n", res.AliasCount, ui.ShellColor(d.Name()), path)
			} else {
				fmt.Fprintf(out, "%s is already up to date:\n", path)
			}
			fmt.Fprintln(out, ui.CodeColor(res.Block))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show the block that would be written without touching the file")
	return cmd
}

// NewInitCommand creates the 'init' subcommand.
func NewInitCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Set up your shell config to load akash aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, d, err := resolveShell(cmd, deps)
			if err != nil {
				return err
			}
			return initShell(cmd.OutOrStdout(), deps.Management, d)
		},
	}
}

func initShell(w io.Writer, svc ports.AliasManagementService, d dialect.Dialect) error {
	if err := applyAndReport(w, svc, d); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s akash initialized for %s.\n", ui.SuccessColor("Ready!"), ui.ShellColor(d.Name()))
	fmt.Fprintf(w, "Your aliases will be loaded when you open a new %s session.\n", d.Name())
	return nil
}
