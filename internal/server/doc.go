// Package server binds the HTTP listener and runs the HTTP server.
//
// It owns startup, signal handling, and graceful shutdown. The listener is
// bound separately from the server so that the port it actually got can be
// handed to the configuration before any request is served.
package server
