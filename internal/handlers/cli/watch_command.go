package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/akash-sh/akash/internal/handlers/ui"
	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const watchDebounce = 200 * time.Millisecond

// NewWatchCommand creates the 'watch' subcommand.
func NewWatchCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-apply aliases whenever the alias store changes",
		Long: `Applies once, then watches the alias store file (for example while you edit
it by hand or sync it from another machine) and applies again after every
change. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.StorePath == "" {
				return errors.New("alias store path is not configured")
			}
			_, d, err := resolveShell(cmd, deps)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			apply := func() error { return applyAndReport(out, deps.Management, d) }

			if err := apply(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			fmt.Fprintf(out, "Watching %s for changes. Press Ctrl-C to stop.\n", ui.PathColor(ui.FriendlyPath(deps.StorePath)))
			return watchStore(ctx, deps.StorePath, apply, cmd.ErrOrStderr(), deps.Logger)
		},
	}
}

// watchStore calls apply after each burst of changes to path until ctx is
// done. The parent directory is watched because editors and atomic writers
// replace the file instead of writing it in place.
func watchStore(ctx context.Context, path string, apply func() error, errOut io.Writer, logger *zap.SugaredLogger) error {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to start file watcher")
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "failed to watch %s", dir)
	}

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debugw("alias store changed", "path", path, "op", event.Op.String())
			timer.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("file watcher error", "error", err)
		case <-timer.C:
			if err := apply(); err != nil {
				PrintError(errOut, err)
			}
		}
	}
}
