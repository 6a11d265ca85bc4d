package aliasmanagement

import "github.com/akash-sh/akash/internal/core/domain/alias"

// diffAliases returns, in name order, the names only in stored, the names
// only in file, and the names in both with different commands.
func diffAliases(stored, file map[string]string) (missing, extra, changed []string) {
	for _, name := range alias.SortedNames(stored) {
		fileCmd, ok := file[name]
		switch {
		case !ok:
			missing = append(missing, name)
		case fileCmd != stored[name]:
			changed = append(changed, name)
		}
	}
	for _, name := range alias.SortedNames(file) {
		if _, ok := stored[name]; !ok {
			extra = append(extra, name)
		}
	}
	return missing, extra, changed
}
