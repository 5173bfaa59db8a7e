// Package http implements the HTTP transport layer of the movie API.
//
// It exposes the route policy table, request handlers, and middleware used
// by the REST API. Cross-cutting concerns such as panic recovery, request
// tracing, access logging with metrics, the CORS origin gate and bearer
// authentication are handled in this package before requests are delegated
// to the service layer.
package http
