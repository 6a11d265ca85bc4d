/*
Package dialect holds the fixed set of shells akash can write aliases for.

Each dialect knows how to render one alias line, where its startup file
lives, which comment prefix its managed-block markers use, and what to tell
the user so the new aliases take effect.
*/
package dialect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind identifies a supported shell.
type Kind string

const (
	// Bash represents GNU Bash (including Git Bash on Windows).
	Bash Kind = "bash"
	// Zsh represents the Z shell.
	Zsh Kind = "zsh"
	// PowerShell represents PowerShell 7+.
	PowerShell Kind = "powershell"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the supported kinds.
func (k Kind) IsValid() bool {
	switch k {
	case Bash, Zsh, PowerShell:
		return true
	default:
		return false
	}
}

var (
	// ErrUnsupported is returned when a shell name is not in the supported set.
	ErrUnsupported = errors.New("unsupported shell")
	// ErrHomeDir is returned when the home directory cannot be resolved.
	ErrHomeDir = errors.New("cannot determine home directory")
)

// Marker label shared by every dialect's begin/end lines.
const markerLabel = "akash aliases"

// Dialect is the capability set every supported shell implements.
type Dialect interface {
	Kind() Kind
	// Name is the display name, e.g. "Bash".
	Name() string
	// CommentPrefix starts a comment line in this shell.
	CommentPrefix() string
	// AliasLine renders one alias definition.
	AliasLine(name, command string) string
	// ConfigPathIn returns the startup file path under homeDir.
	ConfigPathIn(homeDir string) string
	// ReloadInstructions tells the user how to pick up the new aliases.
	ReloadInstructions() string
}

// Supported returns every kind in a stable order.
func Supported() []Kind {
	return []Kind{Bash, Zsh, PowerShell}
}

// For returns the dialect for k. It panics on an invalid kind; use Parse for
// untrusted input.
func For(k Kind) Dialect {
	switch k {
	case Bash:
		return bashDialect{}
	case Zsh:
		return zshDialect{}
	case PowerShell:
		return powerShellDialect{}
	default:
		panic(fmt.Sprintf("dialect: unknown kind %q", string(k)))
	}
}

// Parse converts user input (case-insensitive, "pwsh" accepted) to a Kind.
func Parse(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "powershell", "pwsh":
		return PowerShell, nil
	}
	return "", errors.WithHint(errors.Wrapf(ErrUnsupported, "%q", s),
		"supported shells: bash, zsh, powershell")
}

// BeginMarker is the line that opens the managed block in d's config file.
func BeginMarker(d Dialect) string {
	return d.CommentPrefix() + " BEGIN " + markerLabel
}

// EndMarker is the line that closes the managed block in d's config file.
func EndMarker(d Dialect) string {
	return d.CommentPrefix() + " END " + markerLabel
}

// ConfigPath resolves d's startup file for the current user. It fails
// instead of guessing when the home directory is unknown.
func ConfigPath(d Dialect) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.Mark(err, ErrHomeDir), ErrHomeDir.Error())
	}
	if home == "" {
		return "", ErrHomeDir
	}
	return d.ConfigPathIn(home), nil
}

// joinHome is filepath.Join with the home directory as first element.
func joinHome(home string, elem ...string) string {
	return filepath.Join(append([]string{home}, elem...)...)
}
