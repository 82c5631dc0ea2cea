// Package iologger sets up the default slog logger of validador.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Jeysshonb/Validador-nomina/pkg/config"
	"github.com/lmittmann/tint"
)

// LogFile is the name of the log file created in the log directory.
const LogFile = "validador.log"

var (
	mu sync.Mutex
	// logFile is the file behind the default logger, if any.
	logFile *os.File
)

// Init makes a logger built from cfg the default slog logger. With the
// "file" destination it writes to LogFile in logDir, appending to it when
// append is true. A log file opened by an earlier Init is closed.
func Init(logDir string, cfg config.LogConfig, append bool) error {
	w, f, err := destination(logDir, cfg.Destination, append)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(NewHandler(w, cfg)))

	mu.Lock()
	prev := logFile
	logFile = f
	mu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// Close closes the log file opened by Init. Records logged afterwards
// are lost until the next Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// NewHandler creates a slog handler for the format and level of cfg.
func NewHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	level := parseLevel(cfg.Level)
	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	switch cfg.Format {
	case "text":
		return slog.NewTextHandler(w, handlerOpts)
	case "tint":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    cfg.Destination == "file",
		})
	default:
		// Default to JSON format for any unrecognized format
		return slog.NewJSONHandler(w, handlerOpts)
	}
}

// destination returns the writer for dest and the file behind it, nil
// for the standard streams. Unknown destinations go to stderr.
func destination(logDir, dest string, append bool) (io.Writer, *os.File, error) {
	if dest != "file" {
		if dest == "stdout" {
			return os.Stdout, nil, nil
		}
		return os.Stderr, nil, nil
	}

	flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if append {
		flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	path := filepath.Join(logDir, LogFile)
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, nil, CreateLogFileError(path, append, err)
	}
	return f, f, nil
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
