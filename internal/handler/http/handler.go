package http

import (
	"time"

	"github.com/octopus-msa/service02/internal/config"
	"github.com/octopus-msa/service02/internal/logger"
	"github.com/octopus-msa/service02/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
