package shellconfig

import "fmt"

// FileError reports a failed operation on a shell config file.
type FileError struct {
	Path  string
	Op    string
	Cause error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *FileError) Unwrap() error { return e.Cause }
