/*
Package logger builds the zap logger shared by akash's services. Output goes
to stderr so it never mixes with command output on stdout.
*/
package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps normal runs quiet.
const DefaultLevel = "error"

// ParseLevel maps a configured level name to a zap level. "trace" is
// treated as debug. Unknown or empty names give the default level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.ErrorLevel
	}
}

// New returns a console logger on stderr at level.
func New(level string) *zap.SugaredLogger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter is New with a custom destination.
func NewWithWriter(level string, w io.Writer) *zap.SugaredLogger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		ParseLevel(level),
	)
	return zap.New(core).Sugar().Named("akash")
}
