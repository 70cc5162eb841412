// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// New returns a logrus logger writing to out (stdout when nil) at the given
// level. Unknown levels fall back to info; unknown formats to JSON.
func New(level, format string, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stdout
	}

	logger := logrus.New()
	logger.Out = out

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.Level = lvl

	switch strings.ToLower(format) {
	case FormatText:
		logger.Formatter = &logrus.TextFormatter{
			DisableColors: false,
			FullTimestamp: true,
		}
	default:
		logger.Formatter = &logrus.JSONFormatter{}
	}
	return logger
}
