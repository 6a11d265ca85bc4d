package ports

// CommandLocator finds executables on the user's PATH.
type CommandLocator interface {
	// LookPath returns the resolved path and true if name is an executable
	// on PATH.
	LookPath(name string) (string, bool)
}
