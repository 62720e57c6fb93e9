package feedback

import (
	"context"
	"fmt"

	"github.com/egfinancefx/exam/internal/llm"
	"github.com/egfinancefx/exam/internal/logging"
)

// Service performs the single outbound analysis call for a finished quiz.
type Service struct {
	provider llm.Provider
	cfg      llm.Config
}

// NewService creates a Service around a configured provider.
func NewService(provider llm.Provider, cfg llm.Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Analyze sends the transcript to the model and parses its reply into
// tagged sections. One call per session; the caller decides what to do
// when it fails.
func (s *Service) Analyze(ctx context.Context, t Transcript) (*Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	req := BuildRequest(t, s.cfg.Temperature, s.cfg.TopP)

	log := logging.FromContext(ctx)
	log.Debug().
		Str("model", s.provider.ModelID()).
		Int("parts", len(req.Parts)).
		Msg("requesting analysis")

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}

	log.Info().
		Str("model", resp.Model).
		Int("input_tokens", resp.Usage.InputTokens).
		Int("output_tokens", resp.Usage.OutputTokens).
		Msg("analysis received")

	return Parse(resp.Text), nil
}
