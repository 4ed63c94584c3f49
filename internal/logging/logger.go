package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

var (
	mu   sync.RWMutex
	base = newBase(zerolog.WarnLevel, os.Stderr)
)

// NewLogger configures the shared logger from runtime configuration and returns it
func NewLogger(cfg *config.RuntimeConfig) zerolog.Logger {
	level := ParseLevel(os.Getenv("SOLCONF_LOG_LEVEL"), zerolog.WarnLevel)
	if cfg != nil && cfg.Debug {
		level = zerolog.DebugLevel
	}
	Configure(level, os.Stderr)
	return Base()
}

// Configure replaces the shared logger
func Configure(level zerolog.Level, out io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base = newBase(level, out)
}

// Base returns the configured base logger instance
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name
func WithComponent(component string) *zerolog.Logger {
	logger := Base().With().Str("component", component).Logger()
	return &logger
}

// ParseLevel maps a level name to a zerolog level, falling back to def
func ParseLevel(val string, def zerolog.Level) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		// unknown value, keep default
		return def
	}
}

func newBase(level zerolog.Level, out io.Writer) zerolog.Logger {
	// Timestamps only add noise to interactive CLI output
	writer := zerolog.ConsoleWriter{Out: out, NoColor: !isTerminal(out), PartsExclude: []string{zerolog.TimestampFieldName}}
	return zerolog.New(writer).Level(level)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
