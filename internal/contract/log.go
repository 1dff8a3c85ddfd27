package contract

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logMu  sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
)

// Logger returns the process logger. It always writes to stderr so stdout
// stays free for results and the MCP protocol.
func Logger() *zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	l := logger
	return &l
}

// SetLogLevel changes the minimum level of the process logger.
func SetLogLevel(level zerolog.Level) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = logger.Level(level)
}
