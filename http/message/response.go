package message

// A Response is the outcome of dispatching a [Request].
//
// A Response is mutable until returned to the transport layer;
// after that point the transport owns it.
type Response struct {
	Status int
	Header Header
	Body   []byte
}

// NewResponse constructs an empty Response with the given status.
func NewResponse(status int) *Response {
	return &Response{Status: status, Header: make(Header)}
}

// Text constructs a plain-text Response with the given status and body.
func Text(status int, body string) *Response {
	resp := NewResponse(status)
	resp.Header.Set("Content-Type", "text/plain; charset=utf-8")
	resp.Body = []byte(body)

	return resp
}
