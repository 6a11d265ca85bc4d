package shelldetection

import (
	"testing"

	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/akash-sh/akash/internal/core/testutil"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewService(t *testing.T) {
	t.Run("should panic if environment is nil", func(t *testing.T) {
		assert.Panics(t, func() { _ = NewService(nil, nil, "linux", nil) })
	})

	t.Run("should accept a nil process inspector and logger", func(t *testing.T) {
		svc := NewService(nil, testutil.MapEnvironment{}, "darwin", nil)
		got := svc.Detect()
		assert.Equal(t, dialect.Zsh, got.Kind)
		assert.Equal(t, MethodOSFallback, got.Method)
	})
}

func TestService_Detect(t *testing.T) {
	unavailable := &testutil.MockProcessInspector{}

	tests := []struct {
		name       string
		process    ports.ProcessInspector
		env        testutil.MapEnvironment
		goos       string
		wantKind   dialect.Kind
		wantMethod string
		wantSignal string
	}{
		{
			name:       "parent process wins over environment",
			process:    testutil.ParentNamed("zsh"),
			env:        testutil.MapEnvironment{"SHELL": "/bin/bash"},
			goos:       "linux",
			wantKind:   dialect.Zsh,
			wantMethod: MethodParentProcess,
			wantSignal: "zsh",
		},
		{
			name:       "parent pwsh.exe on windows",
			process:    testutil.ParentNamed("pwsh.exe"),
			env:        testutil.MapEnvironment{},
			goos:       "windows",
			wantKind:   dialect.PowerShell,
			wantMethod: MethodParentProcess,
			wantSignal: "pwsh.exe",
		},
		{
			name:       "parent git-bash",
			process:    testutil.ParentNamed("git-bash.exe"),
			env:        testutil.MapEnvironment{},
			goos:       "windows",
			wantKind:   dialect.Bash,
			wantMethod: MethodParentProcess,
			wantSignal: "git-bash.exe",
		},
		{
			name:       "unrecognised parent falls through to SHELL",
			process:    testutil.ParentNamed("tmux: server"),
			env:        testutil.MapEnvironment{"SHELL": "/usr/bin/zsh"},
			goos:       "linux",
			wantKind:   dialect.Zsh,
			wantMethod: MethodEnvironment,
			wantSignal: "SHELL=/usr/bin/zsh",
		},
		{
			name:       "unavailable parent falls through to SHELL bash",
			process:    unavailable,
			env:        testutil.MapEnvironment{"SHELL": "/bin/bash"},
			goos:       "darwin",
			wantKind:   dialect.Bash,
			wantMethod: MethodEnvironment,
			wantSignal: "SHELL=/bin/bash",
		},
		{
			name:       "PSModulePath means PowerShell",
			process:    unavailable,
			env:        testutil.MapEnvironment{"PSModulePath": `C:\Modules`},
			goos:       "linux",
			wantKind:   dialect.PowerShell,
			wantMethod: MethodEnvironment,
			wantSignal: "PSModulePath",
		},
		{
			name:       "SHELL checked before PSModulePath",
			process:    unavailable,
			env:        testutil.MapEnvironment{"SHELL": "/bin/zsh", "PSModulePath": "x"},
			goos:       "windows",
			wantKind:   dialect.Zsh,
			wantMethod: MethodEnvironment,
			wantSignal: "SHELL=/bin/zsh",
		},
		{
			name:       "BASH_VERSION",
			process:    unavailable,
			env:        testutil.MapEnvironment{"BASH_VERSION": "5.2"},
			goos:       "windows",
			wantKind:   dialect.Bash,
			wantMethod: MethodEnvironment,
			wantSignal: "BASH_VERSION",
		},
		{
			name:       "ZSH_VERSION",
			process:    unavailable,
			env:        testutil.MapEnvironment{"ZSH_VERSION": "5.9"},
			goos:       "windows",
			wantKind:   dialect.Zsh,
			wantMethod: MethodEnvironment,
			wantSignal: "ZSH_VERSION",
		},
		{
			name:       "unknown SHELL value falls to OS",
			process:    unavailable,
			env:        testutil.MapEnvironment{"SHELL": "/usr/bin/fish"},
			goos:       "windows",
			wantKind:   dialect.PowerShell,
			wantMethod: MethodOSFallback,
			wantSignal: "windows",
		},
		{
			name:       "nothing detected on linux",
			process:    unavailable,
			env:        testutil.MapEnvironment{},
			goos:       "linux",
			wantKind:   dialect.Bash,
			wantMethod: MethodOSFallback,
			wantSignal: "linux",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.process, tt.env, tt.goos, zaptest.NewLogger(t).Sugar())
			got := svc.Detect()
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantMethod, got.Method)
			assert.Equal(t, tt.wantSignal, got.Signal)
		})
	}
}

func TestService_Resolve(t *testing.T) {
	inspectorCalled := false
	process := &testutil.MockProcessInspector{ParentProcessNameFunc: func() (string, error) {
		inspectorCalled = true
		return "bash", nil
	}}
	svc := NewService(process, testutil.MapEnvironment{}, "linux", zaptest.NewLogger(t).Sugar())

	t.Run("override wins", func(t *testing.T) {
		inspectorCalled = false
		got, err := svc.Resolve(" PowerShell ")
		require.NoError(t, err)
		assert.Equal(t, dialect.PowerShell, got.Kind)
		assert.Equal(t, MethodOverride, got.Method)
		assert.False(t, inspectorCalled)
	})

	t.Run("pwsh alias accepted", func(t *testing.T) {
		got, err := svc.Resolve("pwsh")
		require.NoError(t, err)
		assert.Equal(t, dialect.PowerShell, got.Kind)
	})

	t.Run("empty override detects", func(t *testing.T) {
		got, err := svc.Resolve("")
		require.NoError(t, err)
		assert.Equal(t, dialect.Bash, got.Kind)
		assert.Equal(t, MethodParentProcess, got.Method)
	})

	t.Run("invalid override is an error and skips detection", func(t *testing.T) {
		inspectorCalled = false
		_, err := svc.Resolve("fish")
		require.Error(t, err)
		assert.True(t, errors.Is(err, dialect.ErrUnsupported))
		assert.False(t, inspectorCalled)
	})
}

func TestFallbackForOS(t *testing.T) {
	cases := map[string]dialect.Kind{
		"windows": dialect.PowerShell,
		"darwin":  dialect.Zsh,
		"linux":   dialect.Bash,
		"freebsd": dialect.Bash,
		"":        dialect.Bash,
	}
	for goos, want := range cases {
		assert.Equal(t, want, FallbackForOS(goos), goos)
	}
}

func TestMatchProcessName(t *testing.T) {
	tests := []struct {
		in     string
		want   dialect.Kind
		wantOK bool
	}{
		{"bash", dialect.Bash, true},
		{"-bash", dialect.Bash, true},
		{"BASH.EXE", dialect.Bash, true},
		{"zsh", dialect.Zsh, true},
		{"-zsh", dialect.Zsh, true},
		{"pwsh", dialect.PowerShell, true},
		{"powershell.exe", dialect.PowerShell, true},
		{"fish", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := MatchProcessName(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
