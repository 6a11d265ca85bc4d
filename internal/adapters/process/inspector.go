package process

import (
	"os"
	"path/filepath"

	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/cockroachdb/errors"
	gopsprocess "github.com/shirou/gopsutil/v4/process"
)

// Inspector implements ports.ProcessInspector with gopsutil, which covers
// Linux, macOS and Windows.
type Inspector struct {
	pid int32
}

// NewInspector returns an inspector for the current process.
func NewInspector() ports.ProcessInspector {
	return &Inspector{pid: int32(os.Getpid())}
}

// ParentProcessName returns the executable name of the parent process. When
// the platform does not expose a name it falls back to the base name of the
// executable path.
func (i *Inspector) ParentProcessName() (string, error) {
	self, err := gopsprocess.NewProcess(i.pid)
	if err != nil {
		return "", errors.Wrapf(err, "inspect process %d", i.pid)
	}
	parent, err := self.Parent()
	if err != nil {
		return "", errors.Wrapf(err, "resolve parent of process %d", i.pid)
	}

	name, err := parent.Name()
	if err == nil && name != "" {
		return name, nil
	}
	exe, exeErr := parent.Exe()
	if exeErr != nil || exe == "" {
		if err == nil {
			err = exeErr
		}
		return "", errors.Wrapf(err, "read name of parent process %d", parent.Pid)
	}
	return filepath.Base(exe), nil
}
