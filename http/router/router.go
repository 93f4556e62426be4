package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/trailhead-labs/switchback/http/message"
	"github.com/trailhead-labs/switchback/http/middleware"
)

// A Route is an immutable binding of a method and path pattern
// to the terminal [middleware.Responder] serving it.
type Route struct {
	Method  message.Method
	Path    string
	Handler middleware.Responder
}

// Router stores registered Routes and resolves requests against them.
//
// The matching discipline belongs to the underlying [mux.Router]:
// patterns may carry {name} variables, matching is case-sensitive,
// and no path normalization is performed.
//
// Register all Routes during boot; once serving begins
// Route is safe for concurrent use while Register is not.
type Router struct {
	m *mux.Router
}

// New constructs an empty *Router.
func New() *Router {
	return &Router{m: mux.NewRouter()}
}

// Register adds the Route to the table.
//
// Duplicate patterns are a caller error and are not validated;
// the earlier registration wins.
func (rt *Router) Register(route Route) {
	rt.m.Handle(route.Path, carrier{route.Handler}).Methods(route.Method.String())
}

// RegisterAll adds the set of Routes to the table.
func (rt *Router) RegisterAll(routes []Route) {
	for _, route := range routes {
		rt.Register(route)
	}
}

// Route finds the best match for the request,
// returning the extracted path variables and the Route's handler.
//
// Route never mutates r; attaching params to the request
// is the dispatcher's responsibility.
func (rt *Router) Route(r *message.Request) (map[string]string, middleware.Responder, bool) {
	probe := &http.Request{
		Method: r.Method.String(),
		URL:    r.URL,
		Header: http.Header(r.Header),
	}

	var match mux.RouteMatch
	if !rt.m.Match(probe, &match) {
		return nil, nil, false
	}

	c, ok := match.Handler.(carrier)
	if !ok {
		return nil, nil, false
	}

	params := match.Vars
	if params == nil {
		params = make(map[string]string)
	}

	return params, c.responder, true
}

// carrier smuggles a Responder through mux's http.Handler-typed route storage.
type carrier struct {
	responder middleware.Responder
}

func (carrier) ServeHTTP(http.ResponseWriter, *http.Request) {}
