package testutil

import "github.com/akash-sh/akash/internal/core/ports"

// StaticCommandLocator is a ports.CommandLocator backed by a name -> path map.
type StaticCommandLocator map[string]string

func (l StaticCommandLocator) LookPath(name string) (string, bool) {
	p, ok := l[name]
	return p, ok
}

var _ ports.CommandLocator = StaticCommandLocator(nil)
