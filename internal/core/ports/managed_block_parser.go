package ports

import "github.com/akash-sh/akash/internal/core/domain/dialect"

/*
ManagedBlockParser understands dialect syntax well enough to check a
rendered block and to read alias definitions back out of one.
*/
type ManagedBlockParser interface {
	// Validate returns an error if block is not valid syntax for d.
	Validate(d dialect.Dialect, block string) error
	// ParseAliases extracts name -> command from a managed block.
	ParseAliases(d dialect.Dialect, block string) (map[string]string, error)
}
