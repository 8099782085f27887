package adapter

import "errors"

// Sentinel transport errors. Callers match them with [errors.Is]; everything
// else from the adapter is a wrapped request or HTTP status error.
var (
	// ErrUnauthorized is returned when the server rejects the device's
	// credential (HTTP 401/403), typically a revoked or mistyped auth token.
	ErrUnauthorized = errors.New("server rejected device credential")

	// ErrNotFound is returned when the requested resource does not exist on
	// the server (HTTP 404).
	ErrNotFound = errors.New("resource not found on server")
)
