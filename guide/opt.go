package guide

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trailhead-labs/switchback"
	"github.com/trailhead-labs/switchback/http/router"
	"github.com/trailhead-labs/switchback/logger"
)

// A GuideOptFn configures a *Guide under construction.
// Options run before defaults are filled in,
// so whatever an option sets wins.
type GuideOptFn func(g *Guide) error

// WithContext exposes the provided context.Context to the switchback app.
func WithContext(ctx context.Context) GuideOptFn {
	return func(g *Guide) error {
		g.ctx = ctx
		return nil
	}
}

// WithEnv casts the provided string into a valid Environment
// and exposes it to the switchback app.
func WithEnv(envVar string) GuideOptFn {
	return func(g *Guide) error {
		env := switchback.Environment(envVar)
		if err := env.Valid(); err != nil {
			return fmt.Errorf("%w: environment %q", err, envVar)
		}

		g.env = env
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the switchback app.
func WithLogger(l logger.Logger) GuideOptFn {
	return func(g *Guide) error {
		g.l = l
		return nil
	}
}

// WithRouter exposes the provided *router.Router to the switchback app.
func WithRouter(r *router.Router) GuideOptFn {
	return func(g *Guide) error {
		g.router = r
		return nil
	}
}

// WithServer exposes the provided *http.Server to the switchback app.
func WithServer(srv *http.Server) GuideOptFn {
	return func(g *Guide) error {
		g.srv = srv
		return nil
	}
}

// WithStaticDir sets the directory whose "Public" subdirectory
// static assets are served from.
func WithStaticDir(dir string) GuideOptFn {
	return func(g *Guide) error {
		g.staticDir = dir
		return nil
	}
}
