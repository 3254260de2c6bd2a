package service

import (
	"context"

	"github.com/octopus-msa/service02/internal/logger"
)

type greetingService struct {
	logger *logger.Logger
}

func NewGreetingService(logger *logger.Logger) GreetingService {
	return &greetingService{
		logger: logger,
	}
}

func (s *greetingService) Welcome(ctx context.Context) string {
	return Greeting
}

func (s *greetingService) Message(ctx context.Context, header string) string {
	logger.FromContextOr(ctx, s.logger).Info().
		Str("header", header).
		Msg("RequestHeader message")

	return Greeting
}
