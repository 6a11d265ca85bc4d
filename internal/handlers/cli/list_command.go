package cli

import (
	"fmt"
	"io"

	"github.com/akash-sh/akash/internal/core/domain/alias"
	"github.com/akash-sh/akash/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored aliases",
		Long:    `Displays the aliases in the akash store. Use 'akash status' to compare them with your shell config.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases, err := deps.Management.ListAliases()
			if err != nil {
				return err
			}
			renderAliasTable(cmd.OutOrStdout(), aliases)
			return nil
		},
	}
}

func renderAliasTable(w io.Writer, aliases []alias.Alias) {
	if len(aliases) == 0 {
		fmt.Fprintf(w, "No aliases defined. Use %s to create one.\n", ui.InfoColor("akash add <name> <command>"))
		return
	}

	fmt.Fprintln(w, ui.HeaderColor("Aliases:"))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Alias", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	for _, a := range aliases {
		table.Append([]string{a.Name, a.Command})
	}
	table.Render()
}
