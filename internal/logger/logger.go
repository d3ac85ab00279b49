// Package logger provides structured logging for selectdrop.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus logger
type Logger struct {
	log *logrus.Logger
}

// Entry accumulates fields until Msg is called
type Entry struct {
	entry *logrus.Entry
	level logrus.Level
}

// New creates a logger writing to output at the given level.
// Unknown levels fall back to info.
func New(level string, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(output)

	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	// The TUI owns the terminal, so logs go to a file without colors
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	return &Logger{log: log}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return New("panic", io.Discard)
}

// Level returns the configured level name
func (l *Logger) Level() string {
	return l.log.GetLevel().String()
}

func (l *Logger) at(level logrus.Level) *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: level}
}

// Debug starts a debug entry
func (l *Logger) Debug() *Entry { return l.at(logrus.DebugLevel) }

// Info starts an info entry
func (l *Logger) Info() *Entry { return l.at(logrus.InfoLevel) }

// Warn starts a warning entry
func (l *Logger) Warn() *Entry { return l.at(logrus.WarnLevel) }

// Error starts an error entry
func (l *Logger) Error() *Entry { return l.at(logrus.ErrorLevel) }

// Str adds a string field
func (e *Entry) Str(key, value string) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Strs adds a string slice field
func (e *Entry) Strs(key string, values []string) *Entry {
	e.entry = e.entry.WithField(key, values)
	return e
}

// Int adds an int field
func (e *Entry) Int(key string, value int) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Bool adds a bool field
func (e *Entry) Bool(key string, value bool) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Any adds a field of arbitrary type
func (e *Entry) Any(key string, value interface{}) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Err adds an error field
func (e *Entry) Err(err error) *Entry {
	if err != nil {
		e.entry = e.entry.WithError(err)
	}
	return e
}

// Msg logs the message with accumulated fields
func (e *Entry) Msg(msg string) {
	e.entry.Log(e.level, msg)
}
