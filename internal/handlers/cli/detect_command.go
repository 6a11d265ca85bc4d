package cli

import (
	"fmt"

	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewDetectCommand creates the 'detect' subcommand.
func NewDetectCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Show which shell akash will write aliases for, and why",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			detection, d, err := resolveShell(cmd, deps)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Shell:        %s\n", ui.ShellColor(d.Name()))
			how := detection.Method
			if detection.Signal != "" {
				how += " " + ui.DetailColor("("+detection.Signal+")")
			}
			fmt.Fprintf(out, "Detected via: %s\n", how)

			path, err := dialect.ConfigPath(d)
			if err != nil {
				fmt.Fprintf(out, "Config file:  %s\n", ui.WarningColor("unknown ("+err.Error()+")"))
				return nil
			}
			fmt.Fprintf(out, "Config file:  %s\n", ui.PathColor(ui.FriendlyPath(path)))
			return nil
		},
	}
}
