package guide

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/trailhead-labs/switchback"
	"github.com/trailhead-labs/switchback/logger"
)

const (
	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Static asset defaults
	staticDirEnvVar = "STATIC_DIR"

	// Web server defaults
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

// defaultLogger constructs the logger.Logger a Guide boots with.
//
// The log level derives from the environment once, here:
// Production runs at INFO, everything else at DEBUG,
// with LOG_LEVEL overriding either.
func defaultLogger(env switchback.Environment) logger.Logger {
	lvl := logger.LogLevelDebug
	if env.IsProduction() {
		lvl = logger.LogLevelInfo
	}

	return logger.NewLogger(
		logger.WithEnv(env.String()),
		logger.WithLevel(envVarOrLogLevel(logLevelEnvVar, lvl)),
	)
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	port := switchback.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  switchback.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  switchback.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: switchback.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

// defaultStaticDir resolves the directory static assets serve from,
// preferring STATIC_DIR over the working directory.
func defaultStaticDir() string {
	if dir := os.Getenv(staticDirEnvVar); dir != "" {
		return dir
	}

	dir, err := os.Getwd()
	if err != nil {
		return "."
	}

	return dir
}

// envVarOrLogLevel gets the environment variable for the provided key,
// creates a logger.LogLevel from the retrieved value,
// or returns the provided default logger.LogLevel
// if the value is an unknown logger.LogLevel.
func envVarOrLogLevel(key string, def logger.LogLevel) logger.LogLevel {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	ll := logger.NewLogLevel(val)
	if ll == logger.LogLevelUnk {
		return def
	}

	return ll
}
