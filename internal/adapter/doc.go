// Package adapter provides a typed client for the movie API.
//
// The primary abstraction is [ServerAdapter], which hides request building,
// bearer token handling and status code mapping behind plain Go calls. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on
// [utils.HTTPClient].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] on them
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter
