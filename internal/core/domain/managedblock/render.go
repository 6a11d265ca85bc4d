/*
Package managedblock renders the akash-owned region of a shell startup file
and splices it into existing file content.

The region is delimited by a begin and an end marker line. Everything
outside the markers belongs to the user and is left as it was.
*/
package managedblock

import (
	"strings"

	"github.com/akash-sh/akash/internal/core/domain/alias"
	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/cockroachdb/errors"
)

// ErrMarkerInCommand is returned when an alias command contains one of the
// block markers. Such a line would be mistaken for a block boundary on the
// next run.
var ErrMarkerInCommand = errors.New("alias command contains a managed block marker")

// Render builds the managed block for d: begin marker, one line per alias in
// name order, end marker. Lines are joined with "\n" and there is no
// trailing newline. An empty mapping yields just the two markers.
func Render(d dialect.Dialect, aliases map[string]string) (string, error) {
	begin, end := dialect.BeginMarker(d), dialect.EndMarker(d)

	lines := make([]string, 0, len(aliases)+2)
	lines = append(lines, begin)
	for _, name := range alias.SortedNames(aliases) {
		command := aliases[name]
		if err := CheckCommand(d, command); err != nil {
			return "", errors.Wrapf(err, "alias %q", name)
		}
		lines = append(lines, d.AliasLine(name, command))
	}
	lines = append(lines, end)

	return strings.Join(lines, "\n"), nil
}

// CheckCommand rejects commands that would embed d's markers in the block.
func CheckCommand(d dialect.Dialect, command string) error {
	if strings.Contains(command, dialect.BeginMarker(d)) || strings.Contains(command, dialect.EndMarker(d)) {
		return ErrMarkerInCommand
	}
	return nil
}
