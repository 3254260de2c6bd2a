package handler

import (
	"github.com/octopus-msa/service02/internal/config"
	"github.com/octopus-msa/service02/internal/handler/http"
	"github.com/octopus-msa/service02/internal/logger"
	"github.com/octopus-msa/service02/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
