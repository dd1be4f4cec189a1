// Package log is the process-wide structured logger. It discards by default
// because the console front end owns stdout; SetFileOutput turns it on.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Logger pairs a slog logger with the file it writes to, if any.
type Logger struct {
	logger *slog.Logger
	file   *os.File
}

var (
	mu           sync.Mutex
	globalLogger = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// SetFileOutput sends all further logging to filename, appending.
func SetFileOutput(filename string) error {
	logger, err := NewLogger(filename)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger.file != nil {
		globalLogger.file.Close()
	}
	globalLogger = logger
	return nil
}

// NewLogger creates a debug-level text logger writing to filename.
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{logger: slog.New(newHandler(file)), file: file}, nil
}

// SetOutput sends logging to w. It is meant for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger.file != nil {
		globalLogger.file.Close()
	}
	globalLogger = &Logger{logger: slog.New(newHandler(w))}
}

func newHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format("2006/01/02 15:04:05.000000"))
			}
			return a
		},
	})
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return globalLogger.logger
}

// With returns the current logger with extra attributes attached.
// Loggers handed out before SetFileOutput keep their old destination.
func With(args ...any) *slog.Logger {
	return current().With(args...)
}

func Debug(msg string, args ...any) { current().Debug(msg, args...) }

func Info(msg string, args ...any) { current().Info(msg, args...) }

func Warn(msg string, args ...any) { current().Warn(msg, args...) }

func Error(msg string, args ...any) { current().Error(msg, args...) }

// Close closes the log file and goes back to discarding.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger.file != nil {
		globalLogger.file.Close()
	}
	globalLogger = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
