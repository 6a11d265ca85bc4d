package testutil

import (
	"github.com/akash-sh/akash/internal/core/domain/alias"
	"github.com/akash-sh/akash/internal/core/ports"
)

// MockPredefinedAliasProvider is a mock implementation of ports.PredefinedAliasProvider.
type MockPredefinedAliasProvider struct {
	GetPredefinedAliasesFunc func() ([]alias.Alias, error)
}

func (m *MockPredefinedAliasProvider) GetPredefinedAliases() ([]alias.Alias, error) {
	if m.GetPredefinedAliasesFunc != nil {
		return m.GetPredefinedAliasesFunc()
	}
	return nil, nil
}

var _ ports.PredefinedAliasProvider = (*MockPredefinedAliasProvider)(nil)
