package http

import "errors"

// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
// Malformed headers carry the error from [utils.ParseBearerToken] instead;
// both shapes map to the same externally visible 401 message.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

// Externally visible messages of the uniform failure envelopes. Kept as
// constants so the handlers and their tests agree on the exact byte
// sequences the client contract depends on.
const (
	msgNoTokenProvided     = "No token provided"
	msgInvalidToken        = "Invalid or expired token"
	msgInternalServerError = "Internal server error"
	msgRouteNotFound       = "Route not found"
)
