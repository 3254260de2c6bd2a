package models

import "net/http"

// InboundRequest is the read-only view of an HTTP request that the
// diagnostics service dumps.
type InboundRequest struct {
	// Host is the request Host, which net/http keeps out of Header.
	Host string

	// Header holds every received header; values keep their received order.
	Header http.Header

	// ServerPort is the port the request was addressed to.
	ServerPort int
}
