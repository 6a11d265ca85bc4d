package oscommand

import (
	"os/exec"

	"github.com/akash-sh/akash/internal/core/ports"
)

// PathLocator implements ports.CommandLocator using the operating system's
// PATH lookup.
type PathLocator struct{}

// NewPathLocator creates a new PathLocator.
func NewPathLocator() ports.CommandLocator {
	return PathLocator{}
}

func (PathLocator) LookPath(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
