package cli

import (
	"fmt"
	"io"

	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/akash-sh/akash/internal/handlers/ui"
)

func printApplyResult(w io.Writer, d dialect.Dialect, res ports.ApplyResult) {
	path := ui.PathColor(ui.FriendlyPath(res.ConfigPath))
	switch {
	case !res.Changed:
		fmt.Fprintf(w, "%s %s already has your %d alias(es).\n", ui.SuccessColor("Up to date!"), path, res.AliasCount)
		return
	case res.Cleared:
		fmt.Fprintf(w, "%s Cleared all aliases from %s\n", ui.SuccessColor("Done!"), path)
	default:
		fmt.Fprintf(w, "%s Wrote %d aliases to %s\n", ui.SuccessColor("Done!"), res.AliasCount, path)
	}
	fmt.Fprintln(w, ui.InfoColor(d.ReloadInstructions()))
}

func applyAndReport(w io.Writer, svc ports.AliasManagementService, d dialect.Dialect) error {
	res, err := svc.Apply(d)
	if err != nil {
		return err
	}
	printApplyResult(w, d, res)
	return nil
}
