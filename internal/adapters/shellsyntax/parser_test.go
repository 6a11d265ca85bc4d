package shellsyntax

import (
	"testing"

	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/core/domain/managedblock"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_RoundTrip(t *testing.T) {
	aliases := map[string]string{
		"g":    "git",
		"gs":   "git status",
		"say":  `echo "it's here"`,
		"quot": `printf '%s\n' 'a b'`,
		"pipe": "ls -la | grep go",
		"both": `echo '"' "'"`,
		"it":   "it's",
		"q":    "echo 'hi'",
		"esc":  `echo \'x\'`,
	}
	p := NewParser()

	for _, k := range []dialect.Kind{dialect.Bash, dialect.Zsh} {
		t.Run(k.String(), func(t *testing.T) {
			d := dialect.For(k)
			block, err := managedblock.Render(d, aliases)
			require.NoError(t, err)
			require.NoError(t, p.Validate(d, block))

			got, err := p.ParseAliases(d, block)
			require.NoError(t, err)
			assert.Equal(t, aliases, got)
		})
	}
}

func TestParser_PowerShellRoundTrip(t *testing.T) {
	aliases := map[string]string{
		"g":    "git",
		"gs":   "git status",
		"pipe": "Get-ChildItem | Select-Object Name",
		"semi": "cd ..;ls",
	}
	d := dialect.For(dialect.PowerShell)
	block, err := managedblock.Render(d, aliases)
	require.NoError(t, err)

	p := NewParser()
	require.NoError(t, p.Validate(d, block))
	got, err := p.ParseAliases(d, block)
	require.NoError(t, err)
	assert.Equal(t, aliases, got)
}

func TestParser_EmptyBlock(t *testing.T) {
	p := NewParser()
	for _, k := range dialect.Supported() {
		d := dialect.For(k)
		block, err := managedblock.Render(d, nil)
		require.NoError(t, err)
		require.NoError(t, p.Validate(d, block), k.String())
		got, err := p.ParseAliases(d, block)
		require.NoError(t, err)
		assert.Empty(t, got, k.String())
	}
}

func TestParser_Validate_Invalid(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		kind  dialect.Kind
		block string
	}{
		{"unterminated quote", dialect.Bash, "# BEGIN akash aliases\nalias a='oops\n# END akash aliases"},
		{"dangling pipe", dialect.Zsh, "alias a=b |"},
		{"unknown powershell line", dialect.PowerShell, "# BEGIN akash aliases\nnot an alias\n# END akash aliases"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Validate(dialect.For(tt.kind), tt.block)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidBlock))
		})
	}
}

func TestParser_ParseAliases_SkipsOtherStatements(t *testing.T) {
	block := "# BEGIN akash aliases\nexport FOO=1\nalias a='x' b='y z'\necho hi\n# END akash aliases"
	got, err := NewParser().ParseAliases(dialect.For(dialect.Bash), block)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "x", "b": "y z"}, got)
}

func TestParser_ParseAliases_PowerShellIgnoresUnknownLines(t *testing.T) {
	block := "# BEGIN akash aliases\r\nSet-Alias -Name g -Value git\r\nWrite-Host hi\r\n# END akash aliases"
	got, err := NewParser().ParseAliases(dialect.For(dialect.PowerShell), block)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"g": "git"}, got)
}
