package testutil

import (
	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/core/ports"
)

// MockManagedBlockParser is a mock implementation of ports.ManagedBlockParser.
type MockManagedBlockParser struct {
	ValidateFunc     func(d dialect.Dialect, block string) error
	ParseAliasesFunc func(d dialect.Dialect, block string) (map[string]string, error)
}

func (m *MockManagedBlockParser) Validate(d dialect.Dialect, block string) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(d, block)
	}
	return nil
}

func (m *MockManagedBlockParser) ParseAliases(d dialect.Dialect, block string) (map[string]string, error) {
	if m.ParseAliasesFunc != nil {
		return m.ParseAliasesFunc(d, block)
	}
	return map[string]string{}, nil
}

var _ ports.ManagedBlockParser = (*MockManagedBlockParser)(nil)
