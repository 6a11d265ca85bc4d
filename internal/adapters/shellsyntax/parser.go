/*
Package shellsyntax reads managed blocks back with real shell grammar.

POSIX dialects go through the mvdan.cc/sh parser, so a block that would
break the user's shell is caught before it is written. PowerShell has no Go
parser and is read line by line against the two forms akash emits.
*/
package shellsyntax

import (
	"regexp"
	"strings"

	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/cockroachdb/errors"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// ErrInvalidBlock is returned when a block does not parse for its dialect.
var ErrInvalidBlock = errors.New("managed block is not valid shell syntax")

var (
	setAliasLine = regexp.MustCompile(`^Set-Alias\s+-Name\s+(\S+)\s+-Value\s+(.+?)\s*$`)
	functionLine = regexp.MustCompile(`^function\s+(\S+)\s*\{\s?(.*?)\s?\}\s*$`)
)

// Parser implements ports.ManagedBlockParser.
type Parser struct{}

// NewParser returns a ManagedBlockParser.
func NewParser() ports.ManagedBlockParser {
	return Parser{}
}

// Validate parses block with the dialect's grammar.
func (Parser) Validate(d dialect.Dialect, block string) error {
	if d.Kind() == dialect.PowerShell {
		_, err := parsePowerShell(block, true)
		return err
	}
	_, err := parsePOSIX(block)
	return err
}

// ParseAliases returns every alias defined in block. POSIX blocks must parse;
// unrecognised PowerShell lines are skipped.
func (Parser) ParseAliases(d dialect.Dialect, block string) (map[string]string, error) {
	if d.Kind() == dialect.PowerShell {
		return parsePowerShell(block, false)
	}
	f, err := parsePOSIX(block)
	if err != nil {
		return nil, err
	}
	return posixAliases(f)
}

func parsePOSIX(block string) (*syntax.File, error) {
	f, err := syntax.NewParser(syntax.Variant(syntax.LangBash)).Parse(strings.NewReader(block), "")
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parse managed block"), ErrInvalidBlock)
	}
	return f, nil
}

// posixAliases collects `alias name=value` calls at the top level of f.
// Each argument goes through quote removal the way the shell would do it,
// and must come out as a single field.
func posixAliases(f *syntax.File) (map[string]string, error) {
	aliases := make(map[string]string)
	for _, stmt := range f.Stmts {
		call, ok := stmt.Cmd.(*syntax.CallExpr)
		if !ok || len(call.Args) < 2 || call.Args[0].Lit() != "alias" {
			continue
		}
		for _, word := range call.Args[1:] {
			fields, err := expand.Fields(nil, word)
			if err != nil {
				return nil, errors.Mark(errors.Wrap(err, "expand alias definition"), ErrInvalidBlock)
			}
			if len(fields) != 1 {
				return nil, errors.Mark(errors.Newf("alias definition expands to %d fields", len(fields)), ErrInvalidBlock)
			}
			name, command, found := strings.Cut(fields[0], "=")
			if !found || name == "" {
				continue
			}
			aliases[name] = command
		}
	}
	return aliases, nil
}

// parsePowerShell reads Set-Alias and function lines. Comments and blank
// lines are ignored. With strict set, any other line is an error.
func parsePowerShell(block string, strict bool) (map[string]string, error) {
	aliases := make(map[string]string)
	for i, raw := range strings.Split(block, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if m := setAliasLine.FindStringSubmatch(line); m != nil {
			aliases[m[1]] = m[2]
			continue
		}
		if m := functionLine.FindStringSubmatch(line); m != nil {
			aliases[m[1]] = m[2]
			continue
		}
		if strict {
			return nil, errors.Mark(errors.Newf("line %d: unrecognised PowerShell alias definition %q", i+1, line), ErrInvalidBlock)
		}
	}
	return aliases, nil
}
