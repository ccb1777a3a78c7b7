// Package logging configures the logrus logger shared by every command.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Standardized field names for structured logging.
const (
	FieldKey       = "key"
	FieldOperation = "operation"
	FieldIndex     = "index"
	FieldCount     = "count"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldParam     = "param"
	FieldValue     = "value"
	FieldReason    = "reason"
	FieldPath      = "path"
)

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", "error") using "text" or "json" formatting. An unknown level
// falls back to warn.
func New(level, format string, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.WarnLevel
		logger.WithField(FieldValue, level).Warn("invalid log level, using warn")
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
