package main

import (
	"fmt"
	"os"

	"github.com/octopus-msa/service02/internal/config"
	"github.com/octopus-msa/service02/internal/handler"
	"github.com/octopus-msa/service02/internal/logger"
	"github.com/octopus-msa/service02/internal/server"
	"github.com/octopus-msa/service02/internal/service"
	"github.com/octopus-msa/service02/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("service02")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	listener, err := server.Listen(cfg.Server)
	if err != nil {
		log.Fatal().Err(err).Msg("error binding listener")
	}

	env := config.NewEnvironment(cfg, listener.Port())
	for _, key := range env.Keys() {
		log.Debug().Str("key", key).Str("value", env.PropertyOrAbsent(key)).Msg("environment property")
	}

	services := service.NewServices(env, os.Stdout, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, listener, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("application", env.PropertyOrAbsent(config.KeyApplicationName)).
		Str("port", env.PropertyOrAbsent(config.KeyLocalServerPort)).
		Msg("service started")

	srv.RunServer()
}
