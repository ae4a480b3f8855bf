package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements ports.Logger on top of logrus.
type LogrusLogger struct {
	entry *logrus.Logger
}

// New creates a logger writing to out. When verbose is false every message is dropped.
func New(out io.Writer, verbose bool) *LogrusLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if !verbose || out == nil {
		l.SetOutput(io.Discard)
		l.SetLevel(logrus.PanicLevel)
	} else {
		l.SetOutput(out)
		l.SetLevel(logrus.DebugLevel)
	}
	return &LogrusLogger{entry: l}
}

// NewStd creates a logger writing to stderr.
func NewStd(verbose bool) *LogrusLogger {
	return New(os.Stderr, verbose)
}

func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.entry.WithFields(fields).WithError(err).Error(msg)
}
