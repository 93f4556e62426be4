package middleware

import (
	"github.com/trailhead-labs/switchback/http/message"
)

// A Responder converts a Request into a Response, possibly failing.
type Responder interface {
	Respond(r *message.Request) (*message.Response, error)
}

// ResponderFunc adapts an ordinary function to the Responder interface.
type ResponderFunc func(r *message.Request) (*message.Response, error)

func (f ResponderFunc) Respond(r *message.Request) (*message.Response, error) { return f(r) }

// A Middleware wraps a Responder, producing a new Responder
// and thereby allowing middlewares to be chained together.
type Middleware func(Responder) Responder

// NoopMiddleware returns the wrapped Responder unchanged.
func NoopMiddleware(next Responder) Responder { return next }

// Chain glues the set of middlewares to the responder.
//
// The first middleware forms the outermost wrap:
// its pre-logic runs before all others and its post-logic after.
// With no middlewares the responder returns unchanged.
//
// Chain never recovers a failure raised by an inner Responder;
// each middleware decides for itself whether to catch, transform, or rethrow.
func Chain(responder Responder, mws ...Middleware) Responder {
	//NOTE: Loop in reverse to preserve middleware order
	for i := len(mws) - 1; i >= 0; i-- {
		responder = mws[i](responder)
	}

	return responder
}
