package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/trailhead-labs/switchback"
	"github.com/trailhead-labs/switchback/http/message"
)

// BearerAuth validates the HMAC-signed JWT in a request's
// "Authorization: Bearer" header against key.
//
// Requests carrying a valid token proceed with the verified claims
// stashed in the request context under switchback.ClaimsKey.
// All other requests short-circuit with a 401.
//
// If key is empty, NoopMiddleware returns and this middleware does nothing.
func BearerAuth(key []byte) Middleware {
	if len(key) == 0 {
		return NoopMiddleware
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))

	return func(next Responder) Responder {
		return ResponderFunc(func(r *message.Request) (*message.Response, error) {
			reqToken, ok := bearerToken(r.Header)
			if !ok {
				return message.Text(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized)), nil
			}

			token, err := parser.ParseWithClaims(reqToken, jwt.MapClaims{}, func(*jwt.Token) (any, error) {
				return key, nil
			})
			if err != nil || !token.Valid {
				return message.Text(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized)), nil
			}

			r.SetContext(context.WithValue(r.Context(), switchback.ClaimsKey, token.Claims))
			return next.Respond(r)
		})
	}
}

// NewBearerToken mints an HMAC-signed JWT for the given claims,
// suitable for later validation by BearerAuth.
func NewBearerToken(key []byte, claims jwt.MapClaims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("%w: could not sign token: %s", switchback.ErrNotValid, err)
	}

	return token, nil
}

// bearerToken pulls the token out of an "Authorization: Bearer" header.
func bearerToken(hm message.Header) (string, bool) {
	val := hm.Get("Authorization")
	if !strings.HasPrefix(val, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(val, "Bearer "))
	return token, token != ""
}
