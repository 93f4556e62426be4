package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/trailhead-labs/switchback"
	"github.com/trailhead-labs/switchback/http/message"
)

// RequestID adds a uuid to the request context.
//
// If key is zero-valued, then NoopMiddleware returns and this middleware does nothing.
func RequestID(key switchback.Key) Middleware {
	if key == "" {
		return NoopMiddleware
	}

	return func(next Responder) Responder {
		return ResponderFunc(func(r *message.Request) (*message.Response, error) {
			r.SetContext(context.WithValue(r.Context(), key, uuid.NewString()))
			return next.Respond(r)
		})
	}
}
