package service

import (
	"io"

	"github.com/octopus-msa/service02/internal/logger"
)

// Greeting is the body returned by every endpoint.
const Greeting = "Service #02 입니다."

type Services struct {
	GreetingService    GreetingService
	DiagnosticsService DiagnosticsService
}

// NewServices wires the endpoint services. Header dumps of /check go to out.
func NewServices(properties PropertySource, out io.Writer, logger *logger.Logger) *Services {
	return &Services{
		GreetingService:    NewGreetingService(logger),
		DiagnosticsService: NewDiagnosticsService(properties, out, logger),
	}
}
