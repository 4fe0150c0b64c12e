// Package logger builds the diagnostic logger shared by the commands.
package logger

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// New returns a logrus logger writing to out. Debug messages are only emitted when verbose is set.
func New(out io.Writer, verbose bool) *log.Logger {
	l := log.New()
	l.SetOutput(out)

	l.SetLevel(log.WarnLevel)
	if verbose {
		l.SetLevel(log.DebugLevel)
	}

	l.Formatter = &log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}

	return l
}

// Discard returns a logger that drops everything, for callers that do not log.
func Discard() *log.Logger {
	return New(io.Discard, false)
}
