package dispatch

import (
	"github.com/trailhead-labs/switchback"
	"github.com/trailhead-labs/switchback/logger"
)

// An AppOptFn is a functional option configuring an App when constructing a new one.
type AppOptFn func(*App)

// WithAssets sets the AssetResolver the App falls back to when no route matches.
func WithAssets(assets AssetResolver) AppOptFn {
	return func(app *App) {
		app.assets = assets
	}
}

// WithEnv sets the Environment the App operates in,
// which gates how much failure detail error responses carry.
func WithEnv(env switchback.Environment) AppOptFn {
	return func(app *App) {
		app.env = env
	}
}

// WithLogger sets the logger.Logger the App emits diagnostics with.
func WithLogger(l logger.Logger) AppOptFn {
	return func(app *App) {
		app.l = l
	}
}

// WithRouter sets the Router the App resolves handlers through.
func WithRouter(router Router) AppOptFn {
	return func(app *App) {
		app.router = router
	}
}

// WithServerName overrides the product string stamped
// into every response's "Server" header.
func WithServerName(name string) AppOptFn {
	return func(app *App) {
		app.server = name
	}
}
