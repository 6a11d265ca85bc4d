package ports

import "github.com/akash-sh/akash/internal/core/domain/dialect"

// Detection is the outcome of shell detection.
type Detection struct {
	Kind dialect.Kind
	// Method names the strategy that decided, e.g. "parent process".
	Method string
	// Signal is the raw value that matched (process name, variable value).
	Signal string
}

// ShellDetector picks the dialect to write aliases for.
type ShellDetector interface {
	// Detect runs the detection chain. It always produces a dialect.
	Detect() Detection
	// Resolve returns the dialect for override, or runs Detect when override
	// is empty. An unsupported override is an error; detection is not tried.
	Resolve(override string) (Detection, error)
}
