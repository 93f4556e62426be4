package middleware_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailhead-labs/switchback"
	"github.com/trailhead-labs/switchback/http/middleware"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopMiddleware), fmt.Sprintf("%p", actual))

	for _, tc := range []struct {
		name     string
		target   string
		ip       string
		expected string
	}{
		{"Bare-Path", "/up/the/switchbacks", "", "GET /up/the/switchbacks"},
		{"With-IP", "/", "192.168.0.0", "192.168.0.0 GET /"},
		{"With-Query-Params", "/search?param=true", "", "GET /search?param=true"},
		{
			"With-Query-Params-Hid",
			"/login?param=true&password=hunter2",
			"",
			"GET /login?param=true&password=" + switchback.LogMaskVal,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			rl := new(recordLogger)
			r := newTestRequest(t, tc.target)
			if tc.ip != "" {
				r.SetContext(context.WithValue(r.Context(), switchback.IpAddrKey, tc.ip))
			}

			// Act
			_, err := middleware.Chain(okResponder(), middleware.LogRequest(rl)).Respond(r)

			// Assert
			require.NoError(t, err)
			require.Equal(t, []string{tc.expected}, rl.lines)
		})
	}
}
