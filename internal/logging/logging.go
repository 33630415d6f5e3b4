package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. format is "text" or "json"; an unknown
// level falls back to info.
func New(level, format string, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}
	l := logrus.New()
	l.Out = out
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		l.Formatter = &logrus.JSONFormatter{PrettyPrint: false}
	default:
		l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.Level = lvl
	return l
}

// Discard returns a logger that drops everything. Handy for tests and
// for callers that do not care.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}
