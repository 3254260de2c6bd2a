package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/octopus-msa/service02/models"
)

// PropertySource is the read-only configuration accessor the services read
// from. [config.Environment] implements it.
type PropertySource interface {
	Property(key string) (string, bool)
}

type GreetingService interface {
	// Welcome returns the fixed greeting.
	Welcome(ctx context.Context) string
	// Message logs the value of the second-request header and returns the
	// fixed greeting.
	Message(ctx context.Context, header string) string
}

type DiagnosticsService interface {
	// Check dumps the request headers, logs the server port and the cloud
	// client identity, and returns the greeting with the local server port.
	Check(ctx context.Context, request models.InboundRequest) string
}
