package shellconfig

import (
	"os"

	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/akash-sh/akash/internal/repositories/atomicfile"
	"go.uber.org/zap"
)

// ShellConfigAccessor reads and replaces shell startup files on the local
// file system.
type ShellConfigAccessor struct {
	logger *zap.SugaredLogger
}

// NewShellConfigAccessor creates a file-system backed ShellConfigAccessor.
func NewShellConfigAccessor(logger *zap.SugaredLogger) ports.ShellConfigAccessor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ShellConfigAccessor{logger: logger}
}

// Read implements ports.ShellConfigAccessor. A file that does not exist
// reads as empty content.
func (sca *ShellConfigAccessor) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			sca.logger.Debugw("shell config does not exist yet", "path", path)
			return "", nil
		}
		return "", &FileError{Path: path, Op: "read", Cause: err}
	}
	return string(data), nil
}

// Write implements ports.ShellConfigAccessor with a whole-file atomic
// replace.
func (sca *ShellConfigAccessor) Write(path, content string) error {
	if err := atomicfile.Write(path, []byte(content)); err != nil {
		return &FileError{Path: path, Op: "write", Cause: err}
	}
	sca.logger.Debugw("shell config written", "path", path, "bytes", len(content))
	return nil
}
