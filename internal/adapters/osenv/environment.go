package osenv

import (
	"os"

	"github.com/akash-sh/akash/internal/core/ports"
)

// Environment reads variables from the process environment.
type Environment struct{}

// New returns the process environment as a ports.Environment.
func New() ports.Environment {
	return Environment{}
}

func (Environment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
