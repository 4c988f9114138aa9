// Package logging builds the zap logger used by the CLI and defines the small
// leveled interface the scanning engine logs through.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is attached to every log line so the finder's output can be told
// apart from the rest of the host's log.
const Name = "disabled-effect-finder"

// Logger is the leveled, printf-style logger the engine depends on.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)
}

// Options controls logger construction.
type Options struct {
	// Verbose enables debug level.
	Verbose bool
	// JSON switches from console to JSON encoding.
	JSON bool
	// OutputPaths defaults to stderr so stdout stays clean for results.
	OutputPaths []string
}

// New builds a named zap logger.
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	if opts.JSON {
		config.Encoding = "json"
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.Sampling = nil
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named(Name), nil
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return zap.NewNop().Sugar()
}
