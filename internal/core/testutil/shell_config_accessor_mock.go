package testutil

import (
	"errors"

	"github.com/akash-sh/akash/internal/core/ports"
)

// MockShellConfigAccessor is a mock implementation of ports.ShellConfigAccessor for testing.
type MockShellConfigAccessor struct {
	ReadFunc  func(path string) (string, error)
	WriteFunc func(path, content string) error
}

func (m *MockShellConfigAccessor) Read(path string) (string, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(path)
	}
	return "", errors.New("MockShellConfigAccessor: ReadFunc not implemented")
}

func (m *MockShellConfigAccessor) Write(path, content string) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(path, content)
	}
	return errors.New("MockShellConfigAccessor: WriteFunc not implemented")
}

var _ ports.ShellConfigAccessor = (*MockShellConfigAccessor)(nil)

// MemoryShellConfig is an in-memory ports.ShellConfigAccessor keyed by path.
// Writes counts successful Write calls.
type MemoryShellConfig struct {
	Files  map[string]string
	Writes int
}

// NewMemoryShellConfig returns an empty in-memory accessor.
func NewMemoryShellConfig() *MemoryShellConfig {
	return &MemoryShellConfig{Files: make(map[string]string)}
}

func (m *MemoryShellConfig) Read(path string) (string, error) {
	return m.Files[path], nil
}

func (m *MemoryShellConfig) Write(path, content string) error {
	m.Files[path] = content
	m.Writes++
	return nil
}

var _ ports.ShellConfigAccessor = (*MemoryShellConfig)(nil)
