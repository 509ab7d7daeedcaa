package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	Logger  = zerolog.Nop()
	logFile *os.File
)

// DefaultLogDir is the directory under $HOME for log files
const DefaultLogDir = ".local/state/edgejump"

// timestampHook adds timestamp at the end of each log event
type timestampHook struct{}

func (h timestampHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	e.Time("ts", time.Now())
}

// DefaultLogPath returns ~/.local/state/edgejump/edgejump.log
func DefaultLogPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultLogDir, "edgejump.log")
}

// Init initializes the logging system with zerolog.
// An empty path uses DefaultLogPath; "-" logs to stderr.
func Init(path string) error {
	var out io.Writer = os.Stderr

	if path != "-" {
		if path == "" {
			path = DefaultLogPath()
		}
		os.MkdirAll(filepath.Dir(path), 0755)

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		logFile = f
		out = f
	}

	// Set global level to Info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Configure field names
	zerolog.MessageFieldName = "msg"

	// Create logger with hook that adds timestamp last
	Logger = zerolog.New(out).Hook(timestampHook{})

	return nil
}

// SetDebug switches the global level between debug and info
func SetDebug(on bool) {
	if on {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetLevel sets the global level by name ("debug", "info", "warn", "error").
// Unknown names leave the level unchanged and return false.
func SetLevel(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return false
	}
	zerolog.SetGlobalLevel(lvl)
	return true
}

// Close closes the log file
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Debug returns a debug level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info returns an info level event
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn returns a warn level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error returns an error level event
func Error() *zerolog.Event {
	return Logger.Error()
}
