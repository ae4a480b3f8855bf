package doctor

import (
	"context"
	"errors"

	"github.com/doeshing/hey-go/internal/domain"
	"github.com/doeshing/hey-go/internal/ports"
)

// Service probes the configured endpoint.
type Service struct {
	Client ports.LLMClient
	Logger ports.Logger
}

// Run sends a minimal request and reports latency and the model the server answered with.
func (s *Service) Run(ctx context.Context, endpoint, model string) (domain.PingResult, error) {
	if s.Client == nil {
		return domain.PingResult{}, errors.New("doctor.Service dependencies not satisfied")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	result := s.Client.Ping(ctx, endpoint, model)
	if s.Logger != nil {
		s.Logger.Debug("endpoint probe finished", map[string]interface{}{
			"endpoint":   endpoint,
			"ok":         result.OK,
			"elapsed_ms": result.ElapsedMS,
		})
	}
	return result, nil
}
