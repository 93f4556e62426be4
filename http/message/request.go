package message

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/trailhead-labs/switchback"
)

// A Method is an HTTP verb a [Request] can be made with.
type Method string

const (
	MethodDelete  Method = http.MethodDelete
	MethodGet     Method = http.MethodGet
	MethodHead    Method = http.MethodHead
	MethodOptions Method = http.MethodOptions
	MethodPatch   Method = http.MethodPatch
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
)

func (m Method) String() string { return string(m) }

func (m Method) Valid() error {
	switch m {
	case MethodDelete, MethodGet, MethodHead, MethodOptions, MethodPatch, MethodPost, MethodPut:
		return nil
	default:
		return switchback.ErrNotValid
	}
}

// A Request is one inbound HTTP request as delivered by the transport layer.
//
// A Request is owned exclusively by the dispatch handling it
// and must never be shared across concurrent dispatches.
type Request struct {
	Method Method
	URL    *url.URL
	Header Header
	Body   []byte

	// Params holds the path variables extracted by the router.
	//
	// Params is empty until a route match occurs;
	// the dispatcher attaches the extracted values before invoking the handler.
	Params map[string]string

	// ParseFunc overrides how ParseData derives the Request's form data.
	//
	// Transports delivering bodies in a shape the default parse does not
	// understand plug their own parse in here.
	ParseFunc func(*Request) (url.Values, error)

	ctx  context.Context
	form url.Values
}

// NewRequest constructs a Request for the method and target,
// where target is a path with an optional query string.
func NewRequest(method Method, target string) (*Request, error) {
	if err := method.Valid(); err != nil {
		return nil, fmt.Errorf("%w: method %q", err, method)
	}

	u, err := url.ParseRequestURI(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", switchback.ErrNotValid, err)
	}

	return &Request{Method: method, URL: u, Header: make(Header)}, nil
}

// Context returns the Request's context,
// defaulting to [context.Background] when none has been set.
func (r *Request) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}

	return r.ctx
}

// SetContext replaces the Request's context,
// most often with one deriving from the current one.
func (r *Request) SetContext(ctx context.Context) {
	r.ctx = ctx
}

// ParseData parses the Request's query string and, for form-encoded bodies,
// the body itself into the Request's form data.
//
// ParseData runs at most once per Request;
// calling it after a successful parse is a no-op
// and leaves the parsed state untouched.
func (r *Request) ParseData() error {
	if r.form != nil {
		return nil
	}

	if r.ParseFunc != nil {
		form, err := r.ParseFunc(r)
		if err != nil {
			return err
		}

		if form == nil {
			form = make(url.Values)
		}

		r.form = form
		return nil
	}

	var rawQuery string
	if r.URL != nil {
		rawQuery = r.URL.RawQuery
	}

	form, err := url.ParseQuery(rawQuery)
	if err != nil {
		return fmt.Errorf("%w: could not parse query: %s", switchback.ErrNotValid, err)
	}

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") && len(r.Body) > 0 {
		body, err := url.ParseQuery(string(r.Body))
		if err != nil {
			return fmt.Errorf("%w: could not parse form body: %s", switchback.ErrNotValid, err)
		}

		for key, vals := range body {
			form[key] = append(form[key], vals...)
		}
	}

	r.form = form
	return nil
}

// Form returns the data parsed by ParseData,
// or nil when ParseData has not run successfully.
func (r *Request) Form() url.Values { return r.form }
