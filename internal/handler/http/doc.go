// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and CORS concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
//
// Every response carries a JSON envelope with a boolean "success" field.
// Failure envelopes use deliberately generic messages for authentication
// errors so that callers cannot distinguish the failure causes.
package http
