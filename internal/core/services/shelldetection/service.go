package shelldetection

import (
	"strings"

	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/core/ports"
	"go.uber.org/zap"
)

// Detection methods reported in ports.Detection.Method.
const (
	MethodOverride      = "explicit override"
	MethodParentProcess = "parent process"
	MethodEnvironment   = "environment"
	MethodOSFallback    = "operating system default"
)

// strategy is one link of the detection chain. ok is false when the
// strategy has no opinion and the next one should run.
type strategy struct {
	method string
	detect func() (kind dialect.Kind, signal string, ok bool)
}

type service struct {
	process ports.ProcessInspector
	env     ports.Environment
	goos    string
	logger  *zap.SugaredLogger
}

// NewService creates a shell detector.
// It panics if env is nil. process may be nil, in which case parent-process
// inspection is skipped. goos is normally runtime.GOOS.
func NewService(process ports.ProcessInspector, env ports.Environment, goos string, logger *zap.SugaredLogger) ports.ShellDetector {
	if env == nil {
		panic("environment cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &service{process: process, env: env, goos: goos, logger: logger}
}

// Detect runs parent-process inspection, then environment inspection, then
// the OS default. The first strategy with a match wins.
func (s *service) Detect() ports.Detection {
	for _, st := range s.chain() {
		kind, signal, ok := st.detect()
		if !ok {
			s.logger.Debugw("shell detection strategy had no match", "method", st.method)
			continue
		}
		s.logger.Debugw("shell detected", "method", st.method, "shell", kind, "signal", signal)
		return ports.Detection{Kind: kind, Method: st.method, Signal: signal}
	}
	// Unreachable: the OS fallback always matches.
	return ports.Detection{Kind: dialect.Bash, Method: MethodOSFallback, Signal: s.goos}
}

// Resolve honours a non-empty override and never falls back to detection
// when the override is invalid.
func (s *service) Resolve(override string) (ports.Detection, error) {
	override = strings.TrimSpace(override)
	if override == "" {
		return s.Detect(), nil
	}
	kind, err := dialect.Parse(override)
	if err != nil {
		s.logger.Warnw("rejected shell override", "value", override)
		return ports.Detection{}, err
	}
	return ports.Detection{Kind: kind, Method: MethodOverride, Signal: override}, nil
}

func (s *service) chain() []strategy {
	return []strategy{
		{method: MethodParentProcess, detect: s.fromParentProcess},
		{method: MethodEnvironment, detect: s.fromEnvironment},
		{method: MethodOSFallback, detect: s.fromOS},
	}
}

func (s *service) fromParentProcess() (dialect.Kind, string, bool) {
	if s.process == nil {
		return "", "", false
	}
	name, err := s.process.ParentProcessName()
	if err != nil {
		s.logger.Debugw("parent process unavailable", "error", err)
		return "", "", false
	}
	kind, ok := MatchProcessName(name)
	return kind, name, ok
}

func (s *service) fromEnvironment() (dialect.Kind, string, bool) {
	return MatchEnvironment(s.env)
}

func (s *service) fromOS() (dialect.Kind, string, bool) {
	return FallbackForOS(s.goos), s.goos, true
}
