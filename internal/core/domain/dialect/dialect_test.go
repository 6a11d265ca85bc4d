package dialect

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{name: "bash", input: "bash", want: Bash},
		{name: "zsh upper case", input: "ZSH", want: Zsh},
		{name: "powershell", input: "powershell", want: PowerShell},
		{name: "pwsh shorthand", input: "pwsh", want: PowerShell},
		{name: "surrounding spaces", input: "  bash ", want: Bash},
		{name: "fish is unsupported", input: "fish", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupported))
				assert.Contains(t, errors.FlattenHints(err), "bash, zsh, powershell")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFor(t *testing.T) {
	for _, k := range Supported() {
		assert.Equal(t, k, For(k).Kind())
		assert.True(t, k.IsValid())
	}
	assert.False(t, Kind("fish").IsValid())
	assert.Panics(t, func() { For(Kind("fish")) })
}

func TestMarkers(t *testing.T) {
	d := For(Bash)
	assert.Equal(t, "# BEGIN akash aliases", BeginMarker(d))
	assert.Equal(t, "# END akash aliases", EndMarker(d))
	assert.Equal(t, "# BEGIN akash aliases", BeginMarker(For(PowerShell)))
}

func TestAliasLine(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		alias   string
		command string
		want    string
	}{
		{name: "bash simple", kind: Bash, alias: "gs", command: "git status", want: "alias gs='git status'"},
		{name: "zsh simple", kind: Zsh, alias: "ll", command: "ls -la", want: "alias ll='ls -la'"},
		{name: "bash single quote escaped", kind: Bash, alias: "hi", command: "echo 'hi'", want: `alias hi='echo '\''hi'\'''`},
		{name: "bash pipe is opaque", kind: Bash, alias: "p", command: "ps aux | grep x", want: "alias p='ps aux | grep x'"},
		{name: "powershell function for args", kind: PowerShell, alias: "ll", command: "ls -la", want: "function ll { ls -la }"},
		{name: "powershell alias for bare command", kind: PowerShell, alias: "g", command: "git", want: "Set-Alias -Name g -Value git"},
		{name: "powershell function for pipe", kind: PowerShell, alias: "c", command: "Get-Process|Sort-Object", want: "function c { Get-Process|Sort-Object }"},
		{name: "powershell function for semicolon", kind: PowerShell, alias: "two", command: "cd;ls", want: "function two { cd;ls }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, For(tt.kind).AliasLine(tt.alias, tt.command))
		})
	}
}

// unquoteAliasLine parses line as a POSIX shell command and returns the
// value the shell would assign to the alias.
func unquoteAliasLine(t *testing.T, line string) (string, string) {
	t.Helper()
	f, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	require.NoError(t, err)
	require.Len(t, f.Stmts, 1)
	call, ok := f.Stmts[0].Cmd.(*syntax.CallExpr)
	require.True(t, ok, "expected a simple command")
	require.Len(t, call.Args, 2)

	fields, err := expand.Fields(nil, call.Args[1])
	require.NoError(t, err)
	require.Len(t, fields, 1)
	name, value, found := strings.Cut(fields[0], "=")
	require.True(t, found)
	return name, value
}

func TestPosixAliasRoundTrip(t *testing.T) {
	commands := []string{
		"git status",
		"echo 'hi'",
		"it's",
		"'''",
		`printf '%s\n' "$HOME" | tr a-z A-Z`,
		`echo "double" 'single' \back`,
		"a;b && c || d > /dev/null",
		`it'\''s`,
		"",
	}

	for _, k := range []Kind{Bash, Zsh} {
		for _, command := range commands {
			t.Run(k.String()+"/"+command, func(t *testing.T) {
				name, value := unquoteAliasLine(t, For(k).AliasLine("x-y_1", command))
				assert.Equal(t, "x-y_1", name)
				assert.Equal(t, command, value)
			})
		}
	}
}

func TestConfigPathIn(t *testing.T) {
	home := filepath.Join("home", "user")
	assert.Equal(t, filepath.Join(home, ".bashrc"), For(Bash).ConfigPathIn(home))
	assert.Equal(t, filepath.Join(home, ".zshrc"), For(Zsh).ConfigPathIn(home))
	assert.Equal(t,
		filepath.Join(home, "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1"),
		For(PowerShell).ConfigPathIn(home))
}

func TestConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("home directory is not read from $HOME on this platform")
	}

	t.Run("uses home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		got, err := ConfigPath(For(Zsh))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".zshrc"), got)
	})

	t.Run("fails when home is unknown", func(t *testing.T) {
		t.Setenv("HOME", "")

		_, err := ConfigPath(For(Bash))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrHomeDir))
	})
}

func TestReloadInstructions(t *testing.T) {
	assert.Contains(t, For(Bash).ReloadInstructions(), "source ~/.bashrc")
	assert.Contains(t, For(Zsh).ReloadInstructions(), "source ~/.zshrc")
	assert.Contains(t, For(PowerShell).ReloadInstructions(), ". $PROFILE")
}
