package middleware

import (
	"strings"

	"github.com/trailhead-labs/switchback"
	"github.com/trailhead-labs/switchback/http/message"
	"github.com/trailhead-labs/switchback/logger"
)

// LogRequest logs the request's method, requested URL, and originating IP address
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
// - password
//
// if logger.Logger is nil, NoopMiddleware returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Middleware {
	if ls == nil {
		return NoopMiddleware
	}

	return func(next Responder) Responder {
		return ResponderFunc(func(r *message.Request) (*message.Response, error) {
			uri := r.URL.Path
			q := r.URL.Query()
			switchback.Mask(q, "password")

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method.String(), uri}
			val := r.Context().Value(switchback.IpAddrKey)
			if val != nil {
				strs = append([]string{val.(string)}, strs...)
			}

			ls.Info(strings.Join(strs, " "), nil)
			return next.Respond(r)
		})
	}
}
