package server

import (
	"fmt"
	"net"

	"github.com/octopus-msa/service02/internal/config"
)

// Listener is the bound TCP listener of the HTTP server. It is created
// before the handlers so that the kernel-assigned port can be published as
// local.server.port.
type Listener struct {
	net.Listener
}

// Listen binds cfg.HTTPAddress. Port 0 asks the kernel for a free port.
func Listen(cfg config.Server) (*Listener, error) {
	l, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %q: %w", cfg.HTTPAddress, err)
	}

	return &Listener{Listener: l}, nil
}

// Port returns the bound port, or 0 for a non-TCP listener.
func (l *Listener) Port() int {
	if addr, ok := l.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
