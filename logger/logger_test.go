package logger_test

import (
	"bytes"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailhead-labs/switchback/logger"
)

var logLineRegexp = regexp.MustCompile(`^\[[A-Z]+\] \S+\.go:\d+ '(.*)'`)

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"", logger.LogLevelUnk},
		{"debug", logger.LogLevelUnk},
	} {
		t.Run("Input-"+tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}
}

func TestSwitchbackLoggerRespectsLevel(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewLogger(
		logger.WithLogger(log.New(b, "", 0)),
		logger.WithLevel(logger.LogLevelWarn),
	)

	// Act
	l.Debug("quiet", nil)
	l.Info("quiet", nil)
	l.Warn("loud", nil)
	l.Error("louder", nil)

	// Assert
	out := b.String()
	require.NotContains(t, out, "quiet")
	require.Contains(t, out, "loud")
	require.Contains(t, out, "louder")
}

func TestSwitchbackLoggerFormat(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewLogger(
		logger.WithLogger(log.New(b, "", 0)),
		logger.WithLevel(logger.LogLevelDebug),
	)

	// Act
	l.Info("hit the trail", nil)

	// Assert -- level, call site, then the quoted message
	m := logLineRegexp.FindStringSubmatch(b.String())
	require.NotNil(t, m)
	require.Equal(t, "hit the trail", m[1])
}
