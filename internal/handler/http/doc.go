// Package http implements the HTTP transport layer of service02.
//
// It exposes the /service02 routes, their handlers, and the middleware that
// plays the role of the hosting framework: panic recovery, request tracing,
// access logging, request timeouts, required-header checks and JSON error
// bodies for rejected requests. Handlers delegate to the service layer.
package http
