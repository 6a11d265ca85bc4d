package ports

import (
	"github.com/akash-sh/akash/internal/core/domain/alias"
	"github.com/akash-sh/akash/internal/core/domain/dialect"
)

// ApplyResult describes one render-merge-write cycle.
type ApplyResult struct {
	Dialect    dialect.Kind
	ConfigPath string
	AliasCount int
	// Changed is false when the file already had exactly this content.
	Changed bool
	// Cleared is true when the store was empty and the block holds no aliases.
	Cleared bool
	// Content is the full new file content.
	Content string
	// Block is the rendered managed block.
	Block string
}

// SyncStatus compares the alias store with the managed block on disk.
type SyncStatus struct {
	Dialect     dialect.Kind
	ConfigPath  string
	FileExists  bool // false when the file is missing or empty
	BlockFound  bool
	Missing     []string // in the store, not in the file
	Extra       []string // in the file, not in the store
	Changed     []string // in both, with different commands
	StoreCount  int
	FileAliases map[string]string
}

// InSync reports whether the file's managed block matches the store.
func (s SyncStatus) InSync() bool {
	return s.BlockFound && len(s.Missing) == 0 && len(s.Extra) == 0 && len(s.Changed) == 0
}

// AliasManagementService defines the contract for managing shell aliases.
type AliasManagementService interface {
	// AddAlias stores an alias. It returns true if the name is new and false
	// if an existing alias was overwritten.
	AddAlias(name, command string) (bool, error)

	// RemoveAlias deletes an alias. It returns false if it did not exist.
	RemoveAlias(name string) (bool, error)

	// ListAliases returns the stored aliases ordered by name.
	ListAliases() ([]alias.Alias, error)

	// Apply writes the stored aliases into d's startup file.
	Apply(d dialect.Dialect) (ApplyResult, error)

	// Preview computes what Apply would write without touching the file.
	Preview(d dialect.Dialect) (ApplyResult, error)

	// Status compares the store with the managed block in d's startup file.
	Status(d dialect.Dialect) (SyncStatus, error)

	// AddPredefined stores each alias whose name is not taken yet.
	AddPredefined(aliases []alias.Alias) (added int, skipped int, err error)
}
