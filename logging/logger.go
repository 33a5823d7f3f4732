package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// files holds one open handle per log path, shared by every logger.
	files   = make(map[string]*os.File)
	filesMu sync.Mutex
)

// Config holds the logging settings read from the environment.
type Config struct {
	// Level is the minimum level (debug, info, warn, error). BITES_LOG_LEVEL.
	Level string
	// Format is "json" or "text". BITES_LOG_FORMAT.
	Format string
	// File, when set, receives every log line. BITES_LOG_FILE.
	File string
	// Stderr is "auto" (default), "always" or "never". BITES_LOG_STDERR.
	// In auto mode logs reach stderr only when it is not a terminal, so the
	// TUI never draws over its own screen.
	Stderr string
}

// ConfigFromEnv reads Config from BITES_LOG_* variables.
func ConfigFromEnv() Config {
	return Config{
		Level:  strings.TrimSpace(os.Getenv("BITES_LOG_LEVEL")),
		Format: strings.TrimSpace(os.Getenv("BITES_LOG_FORMAT")),
		File:   strings.TrimSpace(os.Getenv("BITES_LOG_FILE")),
		Stderr: strings.TrimSpace(os.Getenv("BITES_LOG_STDERR")),
	}
}

// NewLogger returns the logger for component, configured from the
// environment on first use and cached afterwards.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	entry := New(component, ConfigFromEnv())
	loggers[component] = entry
	return entry
}

// New builds an uncached logger for component from cfg.
func New(component string, cfg Config) *logrus.Entry {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var writers []io.Writer
	if cfg.File != "" {
		file, err := openLogFile(cfg.File)
		if err != nil {
			logrus.Warnf("Failed to open log file %s: %v", cfg.File, err)
		} else {
			writers = append(writers, file)
		}
	}
	if logToStderr(cfg.Stderr, level) {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component)
}

func openLogFile(path string) (*os.File, error) {
	filesMu.Lock()
	defer filesMu.Unlock()

	if file, ok := files[path]; ok {
		return file, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	files[path] = file
	return file, nil
}

func logToStderr(mode string, level logrus.Level) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	default:
		interactive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		return level == logrus.DebugLevel || !interactive
	}
}
