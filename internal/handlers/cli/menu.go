package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/handlers/ui"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

const menuText = `What would you like to do?
  1) Add an alias
  2) Remove an alias
  3) List aliases
  4) Apply aliases to shell config
  5) Init (setup shell config)
  6) Status
  q) Quit`

// runMenu is the interactive mode started by a bare `akash`. It returns
// when the user quits or input ends.
func runMenu(cmd *cobra.Command, deps Dependencies) error {
	_, d, err := resolveShell(cmd, deps)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, ui.HeaderColor("akash - one set of aliases for every shell"))
	fmt.Fprintf(out, "Detected shell: %s\n\n", ui.ShellColor(d.Name()))

	for {
		fmt.Fprintln(out, menuText)
		choice, ok := prompt(in, out, "\n>")
		if !ok {
			return nil
		}

		var actionErr error
		switch strings.ToLower(choice) {
		case "1":
			actionErr = menuAdd(in, out, deps)
		case "2":
			actionErr = menuRemove(in, out, deps, d)
		case "3":
			aliases, err := deps.Management.ListAliases()
			if err == nil {
				renderAliasTable(out, aliases)
			}
			actionErr = err
		case "4":
			actionErr = applyAndReport(out, deps.Management, d)
		case "5":
			actionErr = initShell(out, deps.Management, d)
		case "6":
			st, err := deps.Management.Status(d)
			if err == nil {
				printStatus(out, d, st)
			}
			actionErr = err
		case "q", "quit", "exit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, ui.ErrorColor("Invalid choice. Try again."))
		}
		// Errors inside the menu are shown and the loop continues.
		if actionErr != nil {
			PrintError(out, actionErr)
		}
		fmt.Fprintln(out)
	}
}

// prompt prints label and reads one trimmed line. ok is false at end of
// input.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, ui.PromptColor(label)+" ")
	line, err := in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func menuAdd(in *bufio.Reader, out io.Writer, deps Dependencies) error {
	name, ok := prompt(in, out, "Alias name:")
	if !ok {
		return nil
	}
	command, ok := prompt(in, out, "Command:")
	if !ok {
		return nil
	}
	if name == "" || command == "" {
		fmt.Fprintln(out, ui.ErrorColor("Name and command cannot be empty."))
		return nil
	}
	return addAlias(out, deps, name, command)
}

func menuRemove(in *bufio.Reader, out io.Writer, deps Dependencies, d dialect.Dialect) error {
	name, ok := prompt(in, out, "Alias name to remove:")
	if !ok {
		return nil
	}
	if name == "" {
		fmt.Fprintln(out, ui.ErrorColor("Name cannot be empty."))
		return nil
	}
	removed, err := deps.Management.RemoveAlias(name)
	if err != nil {
		return err
	}
	if !removed {
		return errors.Wrapf(ErrAliasNotFound, "%q", name)
	}
	fmt.Fprintf(out, "%s %s\n", ui.SuccessColor("Removed:"), ui.AliasNameColor(name))
	return applyAndReport(out, deps.Management, d)
}
