// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Options configures New. Empty fields fall back to LOG_LEVEL and LOG_FORMAT.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New creates a logger. Level defaults to info; format "json" selects the
// JSON formatter, anything else the text formatter.
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	lvl := opts.Level
	if lvl == "" {
		lvl = os.Getenv("LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if opts.Output != nil {
		log.SetOutput(opts.Output)
	} else {
		log.SetOutput(os.Stderr)
	}
	return log
}

// WithRun tags every entry with a fresh run ID.
func WithRun(log *logrus.Logger) *logrus.Entry {
	return log.WithField("run", uuid.NewString())
}

// Discard returns an entry that writes nowhere.
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}
