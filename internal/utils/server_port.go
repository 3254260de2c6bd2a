package utils

import (
	"net"
	"net/http"
	"strconv"
)

// ServerPort returns the port a request was addressed to.
//
// The port is taken from the Host header when it carries one. A Host without
// a port falls back to the scheme default (80 or 443). A request without any
// Host falls back to the local port of the accepting connection, and 0 is
// returned when none of these is known.
func ServerPort(r *http.Request) int {
	if r.Host != "" {
		if _, rawPort, err := net.SplitHostPort(r.Host); err == nil {
			if port, err := strconv.Atoi(rawPort); err == nil {
				return port
			}
		}

		if r.TLS != nil {
			return 443
		}
		return 80
	}

	return LocalPort(r)
}

// LocalPort returns the port of the local end of the connection that
// accepted r, or 0 if the request did not come through a net/http server.
func LocalPort(r *http.Request) int {
	addr, ok := r.Context().Value(http.LocalAddrContextKey).(net.Addr)
	if !ok {
		return 0
	}

	if tcpAddr, ok := addr.(*net.TCPAddr); ok {
		return tcpAddr.Port
	}

	_, rawPort, err := net.SplitHostPort(addr.String())
	if err != nil {
		return 0
	}
	port, _ := strconv.Atoi(rawPort)
	return port
}
