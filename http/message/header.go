package message

import "net/textproto"

// A Header maps a header name to an ordered list of values.
//
// Names are canonicalized following MIME convention,
// so lookups are case-insensitive.
type Header map[string][]string

// Add appends value to the list of values stored under key.
func (h Header) Add(key, value string) {
	key = textproto.CanonicalMIMEHeaderKey(key)
	h[key] = append(h[key], value)
}

// Del removes all values stored under key.
func (h Header) Del(key string) {
	delete(h, textproto.CanonicalMIMEHeaderKey(key))
}

// Get retrieves the first value stored under key,
// or "" when no value is set.
func (h Header) Get(key string) string {
	vals := h[textproto.CanonicalMIMEHeaderKey(key)]
	if len(vals) == 0 {
		return ""
	}

	return vals[0]
}

// Set replaces any values stored under key with value.
func (h Header) Set(key, value string) {
	h[textproto.CanonicalMIMEHeaderKey(key)] = []string{value}
}

// Values retrieves all values stored under key in the order they were added.
func (h Header) Values(key string) []string {
	return h[textproto.CanonicalMIMEHeaderKey(key)]
}

// Clone copies the Header and all its values.
func (h Header) Clone() Header {
	if h == nil {
		return nil
	}

	clone := make(Header, len(h))
	for key, vals := range h {
		clone[key] = append([]string(nil), vals...)
	}

	return clone
}
