// Package common contains shared constants and sentinel errors used across
// Brainly client components.
package common

// AuthHeaderName is the HTTP header that carries the raw session token on
// authenticated API calls. The token is passed through without a scheme.
const AuthHeaderName = "Authorization"

// RequestIDHeaderName tags every outbound API call for log correlation.
const RequestIDHeaderName = "X-Request-ID"

// Keys of the client-side persisted session.
const (
	SessionTokenKey    = "token"
	SessionUsernameKey = "username"
)
