package guide

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	// TODO: make the env file configurable
	_ "github.com/joho/godotenv/autoload"
	"github.com/trailhead-labs/switchback"
	"github.com/trailhead-labs/switchback/http/dispatch"
	"github.com/trailhead-labs/switchback/http/message"
	"github.com/trailhead-labs/switchback/http/middleware"
	"github.com/trailhead-labs/switchback/http/router"
	"github.com/trailhead-labs/switchback/http/static"
	"github.com/trailhead-labs/switchback/logger"
)

// A Guide boots a switchback app and walks it through its lifecycle:
// it owns the route table, the dispatch App, and the web server,
// and bridges inbound net/http traffic onto the App.
type Guide struct {
	app       *dispatch.App
	ctx       context.Context
	env       switchback.Environment
	l         logger.Logger
	router    *router.Router
	srv       *http.Server
	staticDir string
}

// New constructs a Guide from the provided options.
// Options overwrite environment-variable-derived defaults.
func New(opts ...GuideOptFn) (*Guide, error) {
	g := &Guide{
		ctx: context.Background(),
		env: switchback.EnvVarOrEnv(environmentEnvVar, switchback.Development),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("%w: %s", switchback.ErrBadConfig, err)
		}
	}

	if g.l == nil {
		g.l = defaultLogger(g.env)
	}

	if g.router == nil {
		g.router = router.New()
	}

	if g.staticDir == "" {
		g.staticDir = defaultStaticDir()
	}

	if g.srv == nil {
		g.srv = defaultServer(g.ctx)
	}

	g.app = dispatch.NewApp(
		dispatch.WithEnv(g.env),
		dispatch.WithLogger(g.l),
		dispatch.WithRouter(g.router),
		dispatch.WithAssets(static.New(g.staticDir, g.l)),
	)

	return g, nil
}

func (g *Guide) EmitApp() *dispatch.App     { return g.app }
func (g *Guide) EmitLogger() logger.Logger  { return g.l }
func (g *Guide) EmitRouter() *router.Router { return g.router }

// Env returns the Environment the Guide booted in.
func (g *Guide) Env() switchback.Environment { return g.env }

// Handle applies the [router.Route] to the route table.
func (g *Guide) Handle(route router.Route) {
	g.router.Register(route)
}

// HandleRoutes applies the set of [router.Route] to the route table.
func (g *Guide) HandleRoutes(routes []router.Route) {
	g.router.RegisterAll(routes)
}

// OnEveryRequest appends the middlewares to the stack
// applied to every dispatched request.
func (g *Guide) OnEveryRequest(mws ...middleware.Middleware) {
	g.app.OnEveryRequest(mws...)
}

// ServeHTTP bridges an inbound net/http request onto the dispatch App
// and writes the resulting Response back to the transport.
func (g *Guide) ServeHTTP(w http.ResponseWriter, rx *http.Request) {
	req, err := newRequest(rx)
	if err != nil {
		g.l.Warn("could not read inbound request", &logger.LogContext{Error: err})
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	resp := g.app.Respond(req)

	for key, vals := range resp.Header {
		for _, val := range vals {
			w.Header().Add(key, val)
		}
	}

	w.WriteHeader(resp.Status)
	if _, err := w.Write(resp.Body); err != nil {
		g.l.Warn("could not write response body", &logger.LogContext{Error: err, Request: req})
	}
}

// Lead begins the web server.
//
// These, and (*Guide).Shutdown, stop Lead:
//
// - os.Interrupt
// - os.Kill
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (g *Guide) Lead() error {
	var cancel context.CancelFunc
	g.ctx, cancel = context.WithCancel(g.ctx)

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		os.Kill,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		s := <-ch
		g.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
		cancel()
	}()

	go func() {
		g.l.Info(fmt.Sprintf("running web server at %s", g.srv.Addr), nil)
		g.srv.Handler = handlers.ProxyHeaders(g)
		if err := g.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			g.l.Error(err.Error(), nil)
		}
	}()

	<-g.ctx.Done()
	return g.Shutdown()
}

// Shutdown shutdowns the web server.
func (g *Guide) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	g.l.Info("shutting down web server", nil)
	err := g.srv.Shutdown(shutdownCtx)
	if err == http.ErrServerClosed {
		g.l.Info("web server shutdown successfully", nil)
		return nil
	}

	if err != nil {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	g.l.Info("web server shutdown successfully", nil)
	return nil
}

// newRequest converts an inbound *http.Request into the [*message.Request]
// the dispatch App consumes, slurping the body.
func newRequest(rx *http.Request) (*message.Request, error) {
	var body []byte
	if rx.Body != nil {
		defer rx.Body.Close()

		var err error
		body, err = io.ReadAll(rx.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: could not read body: %s", switchback.ErrMissingData, err)
		}
	}

	req := &message.Request{
		Method: message.Method(rx.Method),
		URL:    rx.URL,
		Header: make(message.Header),
		Body:   body,
	}
	for key, vals := range rx.Header {
		for _, val := range vals {
			req.Header.Add(key, val)
		}
	}

	req.SetContext(rx.Context())
	return req, nil
}
