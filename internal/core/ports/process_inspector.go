package ports

// ProcessInspector looks up the process that launched the current one.
type ProcessInspector interface {
	// ParentProcessName returns the parent's executable name, or an error if
	// process introspection is unsupported or the parent cannot be resolved.
	ParentProcessName() (string, error)
}
