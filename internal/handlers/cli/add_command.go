package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/akash-sh/akash/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <command>",
		Short: "Add or update an alias",
		Long: `Stores an alias. Extra arguments are joined with spaces, so
'akash add gs git status' works without quoting. Run 'akash apply' afterwards
to write it to your shell config.`,
		Example: `  akash add gs "git status"
  akash add ll ls -la`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return addAlias(cmd.OutOrStdout(), deps, args[0], strings.Join(args[1:], " "))
		},
	}
	// Flags after the alias name belong to the aliased command.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func addAlias(w io.Writer, deps Dependencies, name, command string) error {
	added, err := deps.Management.AddAlias(name, command)
	if err != nil {
		return err
	}
	warnShadowed(w, deps.Commands, name)
	if added {
		fmt.Fprintf(w, "%s %s -> %s\n", ui.SuccessColor("Added:"), ui.AliasNameColor(name), command)
	} else {
		fmt.Fprintf(w, "%s %s -> %s\n", ui.WarningColor("Updated:"), ui.AliasNameColor(name), command)
	}
	fmt.Fprintf(w, "Run %s to write to your shell config\n", ui.InfoColor("akash apply"))
	return nil
}

// warnShadowed notes when an alias name hides an executable on PATH.
// The alias is still stored.
func warnShadowed(w io.Writer, commands ports.CommandLocator, name string) {
	if commands == nil {
		return
	}
	if path, ok := commands.LookPath(name); ok {
		fmt.Fprintf(w, "%s %s shadows %s\n", ui.WarningColor("Note:"), ui.AliasNameColor(name), ui.PathColor(path))
	}
}
