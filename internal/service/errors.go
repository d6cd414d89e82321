package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing a
	// required field. Maps to HTTP 400 at the transport layer.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password. One sentinel for both cases keeps the externally
	// visible message identical and prevents account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenCreationFailed is returned when signing a new JWT fails,
	// e.g. due to signer misconfiguration. Maps to HTTP 500.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every token verification
	// failure (forged signature, malformed structure, expired claim)
	// into a single value so the middleware cannot leak the cause.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTranslationUpstream is returned when the translation API is
	// unreachable or replies with an unusable payload.
	ErrTranslationUpstream = errors.New("translation service failed")

	// ErrPredictionUpstream is returned when the ML prediction service is
	// unreachable or replies with an error.
	ErrPredictionUpstream = errors.New("prediction service failed")
)
