package logging

import (
	"github.com/sirupsen/logrus"
)

// New builds the application logger. Denial diagnostics log the internal
// kind and principal-less identifiers only; session token values are never
// logged anywhere.
func New(level string) *logrus.Logger {
	logger := logrus.New()
	switch level {
	case "trace":
		logger.SetLevel(logrus.TraceLevel)
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warning", "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}
