package dispatch

import (
	"fmt"
	"net/http"
	"time"

	"github.com/trailhead-labs/switchback"
	"github.com/trailhead-labs/switchback/http/message"
	"github.com/trailhead-labs/switchback/http/middleware"
	"github.com/trailhead-labs/switchback/logger"
)

// A Router is the route-lookup capability an App consumes.
//
// Route returns the extracted path variables and the matched handler,
// or ok == false when nothing matches.
type Router interface {
	Route(r *message.Request) (params map[string]string, h middleware.Responder, ok bool)
}

// An AssetResolver is the static-file fallback capability an App consumes.
type AssetResolver interface {
	Resolve(requestPath string) (middleware.Responder, bool)
}

// An App dispatches requests:
// it selects a terminal responder through its Router,
// its AssetResolver, or a built-in 404,
// wraps it in the registered middleware chain, executes it,
// and normalizes every outcome into a well-formed Response.
type App struct {
	env    switchback.Environment
	l      logger.Logger
	router Router
	assets AssetResolver
	mws    []middleware.Middleware
	server string
}

// NewApp constructs an *App from the provided options.
//
// Absent options, an App runs in Development
// with a default logger, no routes, and no static assets.
func NewApp(opts ...AppOptFn) *App {
	app := &App{
		env:    switchback.Development,
		server: "switchback/" + switchback.Version,
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.l == nil {
		app.l = logger.NewLogger(logger.WithEnv(app.env.String()))
	}

	return app
}

// OnEveryRequest appends the middlewares to the existing stack
// that the App will apply to every request.
//
// OnEveryRequest belongs to the boot phase;
// a dispatch already in flight keeps the stack it saw at entry.
func (app *App) OnEveryRequest(mws ...middleware.Middleware) {
	app.mws = append(app.mws, mws...)
}

// Env returns the Environment the App operates in.
func (app *App) Env() switchback.Environment { return app.env }

// Respond executes the full dispatch pipeline for the request,
// always producing a Response:
//
//  1. the request's one-shot data parse runs,
//  2. a terminal responder is selected: route match, static file, or 404,
//  3. the middleware chain wraps the terminal responder,
//  4. the composed responder executes; any failure is caught here
//     and converted into an error Response,
//  5. the "Date" and "Server" headers are finalized.
//
// Failures are never retried.
func (app *App) Respond(r *message.Request) *message.Response {
	if err := r.ParseData(); err != nil {
		app.l.Warn("could not parse request data", &logger.LogContext{Error: err, Request: r})
	}

	responder := middleware.Chain(app.selectResponder(r), app.mws...)

	resp, err := app.execute(responder, r)
	if err != nil {
		resp = app.errResponse(err, r)
	}

	app.finalize(resp)
	return resp
}

// selectResponder picks the single terminal responder for the request:
// the matched route's handler, a static-file handler, or the built-in 404.
//
// On a route match the extracted params are attached to the request
// and no static-file lookup is performed.
func (app *App) selectResponder(r *message.Request) middleware.Responder {
	if app.router != nil {
		if params, h, ok := app.router.Route(r); ok {
			r.Params = params
			return h
		}
	}

	if app.assets != nil && r.URL != nil {
		if h, ok := app.assets.Resolve(r.URL.Path); ok {
			return h
		}
	}

	return middleware.ResponderFunc(notFound)
}

// notFound responds 404 regardless of the request.
func notFound(*message.Request) (*message.Response, error) {
	return message.Text(http.StatusNotFound, "Page not found"), nil
}

// execute invokes the composed responder,
// converting a panic into an error so the caller sees a single failure path.
//
// This is the sole mandatory recovery point in the pipeline;
// middlewares may recover failures below it, but never must.
func (app *App) execute(responder middleware.Responder, r *message.Request) (resp *message.Response, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			resp = nil
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	resp, err = responder.Respond(r)
	if err == nil && resp == nil {
		err = fmt.Errorf("%w: responder produced no response", switchback.ErrMissingData)
	}

	return resp, err
}

// errResponse converts a failure into a 500 Response.
//
// Outside Production the body carries the failure's description;
// in Production it is a fixed generic message
// so internal detail never reaches the client.
func (app *App) errResponse(err error, r *message.Request) *message.Response {
	app.l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})

	if app.env.IsProduction() {
		return message.Text(http.StatusInternalServerError, "Something went wrong")
	}

	return message.Text(http.StatusInternalServerError, err.Error())
}

// finalize stamps the standard response headers,
// overwriting whatever inner layers set.
//
// A response leaving without a Content-Type is worth a warning,
// but never blocks the response.
func (app *App) finalize(resp *message.Response) {
	if resp.Header.Get("Content-Type") == "" {
		app.l.Warn("response has no Content-Type header", nil)
	}

	resp.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	resp.Header.Set("Server", app.server)
}
