package testutil

import (
	"errors"

	"github.com/akash-sh/akash/internal/core/ports"
)

// MockProcessInspector is a mock implementation of ports.ProcessInspector.
type MockProcessInspector struct {
	ParentProcessNameFunc func() (string, error)
}

func (m *MockProcessInspector) ParentProcessName() (string, error) {
	if m.ParentProcessNameFunc != nil {
		return m.ParentProcessNameFunc()
	}
	return "", errors.New("MockProcessInspector: parent process unavailable")
}

// ParentNamed returns an inspector that always reports name.
func ParentNamed(name string) *MockProcessInspector {
	return &MockProcessInspector{ParentProcessNameFunc: func() (string, error) { return name, nil }}
}

var _ ports.ProcessInspector = (*MockProcessInspector)(nil)

// MapEnvironment is a ports.Environment backed by a map.
type MapEnvironment map[string]string

func (e MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

var _ ports.Environment = MapEnvironment(nil)
