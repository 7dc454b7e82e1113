// Package logging configures the logrus logger shared by docmaker commands.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogFormat is the output format of log entries.
type LogFormat string

const (
	// LogFormatText is human readable key=value output.
	LogFormatText LogFormat = "text"
	// LogFormatJSON is one JSON object per entry.
	LogFormatJSON LogFormat = "json"

	// DefaultLogFormat is used when no format is configured.
	DefaultLogFormat = LogFormatText
	// DefaultLogLevel is used unless debug is enabled.
	DefaultLogLevel = logrus.WarnLevel
)

// ParseLogFormat validates a configured log format.
func ParseLogFormat(s string) (LogFormat, error) {
	switch f := LogFormat(strings.ToLower(s)); f {
	case "":
		return DefaultLogFormat, nil
	case LogFormatText, LogFormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("incorrect log format %q, expected 'text' or 'json'", s)
	}
}

// GetFormatter returns a configured logrus.Formatter for format.
func GetFormatter(format LogFormat) logrus.Formatter {
	if format == LogFormatJSON {
		return &logrus.JSONFormatter{DisableTimestamp: true}
	}
	return &logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	}
}

// New returns a logger writing to out. Debug lowers the level to
// logrus.DebugLevel.
func New(out io.Writer, format LogFormat, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(GetFormatter(format))
	logger.SetLevel(DefaultLogLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
