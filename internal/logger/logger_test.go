package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// captureOutput captures log output during a test
func captureOutput(f func()) string {
	var buf bytes.Buffer
	oldOut := log.Out
	log.SetOutput(&buf)
	defer log.SetOutput(oldOut)

	f()
	return buf.String()
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"INFO", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"WARN", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"ERROR", logrus.ErrorLevel},
		{"unknown", logrus.InfoLevel}, // Default
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			setLogLevel(tt.level)
			assert.Equal(t, tt.expected, log.GetLevel())
		})
	}
}

func TestDebug(t *testing.T) {
	// Test when debug is enabled
	setLogLevel("debug")
	output := captureOutput(func() {
		Debug("Test debug message: %s", "value")
	})
	assert.Contains(t, output, "level=debug")
	assert.Contains(t, output, "Test debug message: value")

	// Test when debug is disabled
	setLogLevel("info")
	output = captureOutput(func() {
		Debug("This should not appear")
	})
	assert.Empty(t, output)
}

func TestInfo(t *testing.T) {
	setLogLevel("info")
	output := captureOutput(func() {
		Info("Rows returned: %d", 3)
	})
	assert.Contains(t, output, "level=info")
	assert.Contains(t, output, "Rows returned: 3")

	setLogLevel("error")
	output = captureOutput(func() {
		Info("This should not appear")
	})
	assert.Empty(t, output)
}

func TestWarn(t *testing.T) {
	setLogLevel("warn")
	output := captureOutput(func() {
		Warn("Test warn message: %s", "value")
	})
	assert.Contains(t, output, "level=warning")
	assert.Contains(t, output, "Test warn message: value")

	setLogLevel("error")
	output = captureOutput(func() {
		Warn("This should not appear")
	})
	assert.Empty(t, output)
}

func TestError(t *testing.T) {
	// Error should always be logged
	setLogLevel("error")
	output := captureOutput(func() {
		Error("Test error message: %s", "value")
	})
	assert.Contains(t, output, "level=error")
	assert.Contains(t, output, "Test error message: value")
}

func TestWithField(t *testing.T) {
	setLogLevel("info")
	output := captureOutput(func() {
		WithField("invocation_id", "abc-123").Info("query executed")
	})
	assert.Contains(t, output, "invocation_id=abc-123")
	assert.Contains(t, output, "query executed")
}

func TestStdLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		StdLogger().Printf("library message")
	})
}
