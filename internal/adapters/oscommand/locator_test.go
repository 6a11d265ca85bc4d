package oscommand

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathLocator_LookPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit lookup differs on windows")
	}
	dir := t.TempDir()
	exe := filepath.Join(dir, "akash-test-tool")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)

	got, ok := NewPathLocator().LookPath("akash-test-tool")
	assert.True(t, ok)
	assert.Equal(t, exe, got)

	_, ok = NewPathLocator().LookPath("akash-surely-missing")
	assert.False(t, ok)

	_, ok = NewPathLocator().LookPath("")
	assert.False(t, ok)
}
