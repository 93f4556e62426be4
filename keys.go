package switchback

import "net/url"

type Key string

const (
	// ClaimsKey stashes the verified token claims for an authenticated request.
	ClaimsKey Key = "ClaimsKey"

	// IpAddrKey stashes the IP address of a request being handled by switchback.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "switchback context key: " + string(k)
}

// LogMaskVal hides sensitive data from log messages.
const LogMaskVal = "xxxxxx"

// Mask replaces all values for key in vals with [LogMaskVal].
// Keys not present in vals are left untouched.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals[key] = []string{LogMaskVal}
}
