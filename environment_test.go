package switchback_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/trailhead-labs/switchback"
)

func TestEnvironmentValid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input switchback.Environment
		err   error
	}{
		{"Zero-Value", switchback.Environment(""), switchback.ErrNotValid},
		{"Unknown", switchback.Environment("LOCAL"), switchback.ErrNotValid},
		{"Lowercased", switchback.Environment("production"), switchback.ErrNotValid},
		{"Demo", switchback.Demo, nil},
		{"Development", switchback.Development, nil},
		{"Production", switchback.Production, nil},
		{"Review", switchback.Review, nil},
		{"Staging", switchback.Staging, nil},
		{"Testing", switchback.Testing, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.input.Valid(), tc.err)
		})
	}
}

func TestEnvVarOrEnv(t *testing.T) {
	key := "SWITCHBACK_TEST_ENVIRONMENT"
	for _, tc := range []struct {
		name     string
		val      string
		expected switchback.Environment
	}{
		{"Unset", "", switchback.Development},
		{"Invalid", "not-an-env", switchback.Development},
		{"Exact", "STAGING", switchback.Staging},
		{"Cased", "production", switchback.Production},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(key, tc.val)
			require.Equal(t, tc.expected, switchback.EnvVarOrEnv(key, switchback.Development))
		})
	}
}

func TestEnvVarOrDuration(t *testing.T) {
	key := "SWITCHBACK_TEST_DURATION"
	def := 5 * time.Second

	t.Setenv(key, "")
	require.Equal(t, def, switchback.EnvVarOrDuration(key, def))

	t.Setenv(key, "oops")
	require.Equal(t, def, switchback.EnvVarOrDuration(key, def))

	t.Setenv(key, "120s")
	require.Equal(t, 2*time.Minute, switchback.EnvVarOrDuration(key, def))
}

func TestEnvVarOrInt(t *testing.T) {
	key := "SWITCHBACK_TEST_INT"

	t.Setenv(key, "")
	require.Equal(t, 42, switchback.EnvVarOrInt(key, 42))

	t.Setenv(key, "17")
	require.Equal(t, 17, switchback.EnvVarOrInt(key, 42))
}
