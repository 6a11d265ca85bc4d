package ports

// AliasStore persists the user's alias dictionary (name -> command).
type AliasStore interface {
	// Load returns the stored aliases. A missing store is an empty mapping.
	Load() (map[string]string, error)
	// Save replaces the stored aliases with aliases.
	Save(aliases map[string]string) error
	// Path is the on-disk location of the store, for display.
	Path() string
}
