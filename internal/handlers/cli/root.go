package cli

import (
	"fmt"
	"io"

	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/akash-sh/akash/internal/handlers/ui"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shellFlag = "shell"

// Dependencies are the services the commands run against.
type Dependencies struct {
	Management ports.AliasManagementService
	Detector   ports.ShellDetector
	Predefined ports.PredefinedAliasProvider
	// Commands, when set, warns about aliases that shadow executables.
	Commands ports.CommandLocator
	// ConfiguredShell is the override from the config file or AKASH_SHELL.
	// The --shell flag wins over it.
	ConfiguredShell string
	// StorePath is the alias store file, watched by `akash watch`.
	StorePath string
	Logger    *zap.SugaredLogger
}

// NewRootCommand builds the akash command tree. Without a subcommand it
// starts the interactive menu.
func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop().Sugar()
	}

	rootCmd := &cobra.Command{
		Use:   "akash",
		Short: "akash keeps one set of shell aliases in sync across Bash, Zsh and PowerShell.",
		Long: `akash stores your aliases once and writes them into a marked block in
your shell startup file (~/.bashrc, ~/.zshrc or the PowerShell profile).
Everything outside the block is left untouched.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Management == nil {
				return errors.New("alias management service not initialized")
			}
			if deps.Detector == nil {
				return errors.New("shell detector not initialized")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, deps)
		},
	}
	rootCmd.PersistentFlags().StringP(shellFlag, "s", "", "Override the detected shell (bash, zsh, powershell)")

	rootCmd.AddCommand(
		NewAddCommand(deps),
		NewRemoveCommand(deps),
		NewListCommand(deps),
		NewApplyCommand(deps),
		NewInitCommand(deps),
		NewStatusCommand(deps),
		NewDetectCommand(deps),
		NewAddPredefinedCommand(deps),
		NewWatchCommand(deps),
	)
	return rootCmd
}

// resolveShell picks the dialect for this run: --shell, then the configured
// shell, then detection. An invalid explicit value is an error.
func resolveShell(cmd *cobra.Command, deps Dependencies) (ports.Detection, dialect.Dialect, error) {
	override := deps.ConfiguredShell
	if cmd.Flags().Changed(shellFlag) {
		override, _ = cmd.Flags().GetString(shellFlag)
	}
	detection, err := deps.Detector.Resolve(override)
	if err != nil {
		return ports.Detection{}, nil, err
	}
	return detection, dialect.For(detection.Kind), nil
}

// PrintError writes err and any attached hints in the CLI's error style.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.ErrorColor("Error: "+err.Error()))
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintln(w, ui.DetailColor("Hint: "+hint))
	}
}
