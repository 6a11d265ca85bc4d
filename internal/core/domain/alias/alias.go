/*
Package alias defines the core domain entity for an alias.
*/
package alias

import (
	"regexp"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

/*
Alias is a short name and the full command it expands to. Commands are
opaque: they may contain quotes, pipes or any other character.
*/
type Alias struct {
	Command string `yaml:"command"`
	Name    string `yaml:"alias"`
}

var (
	// ErrInvalidName is returned when an alias name is empty or contains
	// characters outside [A-Za-z0-9_-].
	ErrInvalidName = errors.New("invalid alias name")
	// ErrEmptyCommand is returned when an alias has nothing to expand to.
	ErrEmptyCommand = errors.New("alias command cannot be empty")
)

var validNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateName checks that name is non-empty and uses only letters, digits,
// underscores or hyphens.
func ValidateName(name string) error {
	if name == "" {
		return errors.WithHint(errors.Wrap(ErrInvalidName, "alias name cannot be empty"),
			"choose a short name such as 'gs'")
	}
	if !validNameRegex.MatchString(name) {
		return errors.WithHint(errors.Wrapf(ErrInvalidName, "%q", name),
			"alias names can only contain letters, digits, underscores or hyphens")
	}
	return nil
}

// Validate checks both the name and the command of a.
func (a Alias) Validate() error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}
	if strings.TrimSpace(a.Command) == "" {
		return errors.Wrapf(ErrEmptyCommand, "alias %q", a.Name)
	}
	return nil
}

// FromMap converts a name->command mapping into aliases ordered by name.
func FromMap(m map[string]string) []Alias {
	aliases := make([]Alias, 0, len(m))
	for _, name := range SortedNames(m) {
		aliases = append(aliases, Alias{Name: name, Command: m[name]})
	}
	return aliases
}

// SortedNames returns the keys of m in ascending order.
func SortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
