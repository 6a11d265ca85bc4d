package shelldetection

import (
	"strings"

	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/core/ports"
)

// MatchProcessName maps a process name to a dialect by case-insensitive
// substring: bash (and git-bash), zsh, pwsh or powershell.
func MatchProcessName(name string) (dialect.Kind, bool) {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "bash"), strings.Contains(lower, "git-bash"):
		return dialect.Bash, true
	case strings.Contains(lower, "zsh"):
		return dialect.Zsh, true
	case strings.Contains(lower, "pwsh"), strings.Contains(lower, "powershell"):
		return dialect.PowerShell, true
	default:
		return "", false
	}
}

// MatchEnvironment checks, in order: $SHELL (zsh before bash), the presence
// of PSModulePath, then BASH_VERSION and ZSH_VERSION. It returns the
// variable that matched as signal.
func MatchEnvironment(env ports.Environment) (kind dialect.Kind, signal string, ok bool) {
	if shell, found := env.LookupEnv("SHELL"); found {
		lower := strings.ToLower(shell)
		if strings.Contains(lower, "zsh") {
			return dialect.Zsh, "SHELL=" + shell, true
		}
		if strings.Contains(lower, "bash") {
			return dialect.Bash, "SHELL=" + shell, true
		}
	}
	if _, found := env.LookupEnv("PSModulePath"); found {
		return dialect.PowerShell, "PSModulePath", true
	}
	if _, found := env.LookupEnv("BASH_VERSION"); found {
		return dialect.Bash, "BASH_VERSION", true
	}
	if _, found := env.LookupEnv("ZSH_VERSION"); found {
		return dialect.Zsh, "ZSH_VERSION", true
	}
	return "", "", false
}

// FallbackForOS is the last link of the chain: PowerShell on Windows, Zsh on
// macOS, Bash everywhere else.
func FallbackForOS(goos string) dialect.Kind {
	switch goos {
	case "windows":
		return dialect.PowerShell
	case "darwin":
		return dialect.Zsh
	default:
		return dialect.Bash
	}
}
