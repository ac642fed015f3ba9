package logger

import (
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Default logger. Stdout carries the protocol stream, so everything goes to
// stderr.
var log = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
	return l
}

// Initialize sets up the logger with the specified level
func Initialize(level string) {
	log.SetOutput(os.Stderr)
	setLogLevel(level)
}

// setLogLevel sets the log level from a string
func setLogLevel(level string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
}

// Debug logs a debug message
func Debug(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

// Info logs an info message
func Info(format string, v ...interface{}) {
	log.Infof(format, v...)
}

// Warn logs a warning message
func Warn(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

// Error logs an error message
func Error(format string, v ...interface{}) {
	log.Errorf(format, v...)
}

// WithField returns an entry carrying a structured field
func WithField(key string, value interface{}) *logrus.Entry {
	return log.WithField(key, value)
}

// StdLogger returns a standard library logger that writes into this logger
// at error level
func StdLogger() *stdlog.Logger {
	return stdlog.New(log.WriterLevel(logrus.ErrorLevel), "", 0)
}
