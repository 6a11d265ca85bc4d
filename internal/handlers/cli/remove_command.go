package cli

import (
	"fmt"

	"github.com/akash-sh/akash/internal/handlers/ui"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// ErrAliasNotFound is returned by 'remove' for an unknown name.
var ErrAliasNotFound = errors.New("alias not found")

// NewRemoveCommand creates the 'remove' subcommand. A successful removal is
// applied to the shell config right away.
func NewRemoveCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove an alias and update your shell config",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, d, err := resolveShell(cmd, deps)
			if err != nil {
				return err
			}
			name := args[0]
			removed, err := deps.Management.RemoveAlias(name)
			if err != nil {
				return err
			}
			if !removed {
				return errors.Wrapf(ErrAliasNotFound, "%q", name)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.SuccessColor("Removed:"), ui.AliasNameColor(name))
			return applyAndReport(out, deps.Management, d)
		},
	}
}
