package testutil

import (
	"maps"

	"github.com/akash-sh/akash/internal/core/ports"
)

// MockAliasStore is a mock implementation of ports.AliasStore.
type MockAliasStore struct {
	LoadFunc func() (map[string]string, error)
	SaveFunc func(aliases map[string]string) error
	PathFunc func() string
}

func (m *MockAliasStore) Load() (map[string]string, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return map[string]string{}, nil
}

func (m *MockAliasStore) Save(aliases map[string]string) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(aliases)
	}
	return nil
}

func (m *MockAliasStore) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return "aliases.yaml"
}

var _ ports.AliasStore = (*MockAliasStore)(nil)

// MemoryAliasStore keeps aliases in a map. Load and Save copy, so callers
// cannot mutate the stored state by accident.
type MemoryAliasStore struct {
	Aliases map[string]string
	Saves   int
}

// NewMemoryAliasStore returns a store seeded with a copy of initial.
func NewMemoryAliasStore(initial map[string]string) *MemoryAliasStore {
	s := &MemoryAliasStore{Aliases: make(map[string]string)}
	maps.Copy(s.Aliases, initial)
	return s
}

func (s *MemoryAliasStore) Load() (map[string]string, error) {
	return maps.Clone(s.Aliases), nil
}

func (s *MemoryAliasStore) Save(aliases map[string]string) error {
	s.Aliases = maps.Clone(aliases)
	if s.Aliases == nil {
		s.Aliases = make(map[string]string)
	}
	s.Saves++
	return nil
}

func (s *MemoryAliasStore) Path() string { return "memory://aliases" }

var _ ports.AliasStore = (*MemoryAliasStore)(nil)
