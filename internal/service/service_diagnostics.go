package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"sync"

	"github.com/octopus-msa/service02/internal/config"
	"github.com/octopus-msa/service02/internal/logger"
	"github.com/octopus-msa/service02/models"
)

type diagnosticsService struct {
	properties PropertySource

	// mu keeps the lines of one dump together in out.
	mu  sync.Mutex
	out io.Writer

	logger *logger.Logger
}

func NewDiagnosticsService(properties PropertySource, out io.Writer, logger *logger.Logger) DiagnosticsService {
	return &diagnosticsService{
		properties: properties,
		out:        out,
		logger:     logger,
	}
}

func (s *diagnosticsService) Check(ctx context.Context, request models.InboundRequest) string {
	log := logger.FromContextOr(ctx, s.logger)

	// A lost dump does not fail the request.
	if err := s.dumpHeaders(request); err != nil {
		log.Warn().Err(err).Msg("error writing request headers")
	}

	log.Info().Msgf("Server port=%d", request.ServerPort)
	log.Info().Msgf("%s=%s", config.KeyCloudClientHostname, s.property(config.KeyCloudClientHostname))
	log.Info().Msgf("%s=%s", config.KeyCloudClientIPAddress, s.property(config.KeyCloudClientIPAddress))

	return fmt.Sprintf("%s PORT %s", Greeting, s.property(config.KeyLocalServerPort))
}

// dumpHeaders writes one name=value line per header value. Host goes with
// the other headers because net/http keeps it out of the header map.
func (s *diagnosticsService) dumpHeaders(request models.InboundRequest) error {
	headers := make(http.Header, len(request.Header)+1)
	for name, values := range request.Header {
		headers[name] = values
	}
	if request.Host != "" && len(headers.Values("Host")) == 0 {
		headers.Set("Host", request.Host)
	}

	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	var buf bytes.Buffer
	for _, name := range names {
		for _, value := range headers[name] {
			fmt.Fprintf(&buf, "%s=%s\n", name, value)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("error writing diagnostics output: %w", err)
	}

	return nil
}

func (s *diagnosticsService) property(key string) string {
	if value, ok := s.properties.Property(key); ok {
		return value
	}
	return config.AbsentValue
}
