package logger

import (
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/trailhead-labs/switchback"
	"github.com/trailhead-labs/switchback/http/message"
)

var (
	_ encoding.TextMarshaler = LogContext{}
)

// A LogContext provides additional information and configuration
// for a [Logger] method that cannot be tersely captured in the message itself.
type LogContext struct {
	// Caller overrides the caller file and line number with the provided value.
	//
	// Caller is not logged in the text of a LogContext.
	//
	// Caller helps goroutines identify the callers of the process that spawned it.
	Caller string

	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the [*message.Request] that may or may not have been open during the logging event.
	Request *message.Request
}

// MarshalText converts LogContext into a JSON representation,
// eliminating zero-value fields or fields not requiring logging.
//
// Values in LogContext.Data that cannot be represented in JSON will cause an error to be thrown.
//
// MarshalText implements [encoding.TextMarshaler].
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]any)
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()
	}

	if lc.Request != nil {
		r := make(map[string]any)
		r["method"] = lc.Request.Method.String()

		u := *lc.Request.URL
		q := u.Query()
		switchback.Mask(q, "password")
		u.RawQuery = q.Encode()
		r["url"] = u.String()

		r["header"] = lc.Request.Header
		if len(lc.Request.Params) > 0 {
			r["params"] = lc.Request.Params
		}

		m["request"] = r
	}

	return json.Marshal(m)
}

// String renders the JSON representation of LogContext.
func (lc LogContext) String() string {
	b, err := lc.MarshalText()
	if err != nil {
		return fmt.Sprintf("could not marshal LogContext: %s", err)
	}

	return string(b)
}
