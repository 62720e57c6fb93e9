package llm

import (
	"context"
	"time"

	"github.com/egfinancefx/exam/internal/logging"
	"github.com/egfinancefx/exam/internal/store"
)

// LoggingProvider is a decorator that records every model request in the
// request log and the structured logger.
type LoggingProvider struct {
	inner   Provider
	logRepo store.RequestLogRepo
}

// WithLogging wraps a Provider with request logging. A nil repo skips the
// durable log but keeps the structured logger.
func WithLogging(p Provider, repo store.RequestLogRepo) Provider {
	return &LoggingProvider{inner: p, logRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	logger := logging.FromContext(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.RequestLogData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		LatencyMs: latencyMs,
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	ev := logger.Info()
	if err != nil {
		ev = logger.Error().Err(err)
	}
	ev.Str("model", data.Model).
		Int64("latency_ms", latencyMs).
		Int("input_tokens", data.InputTokens).
		Int("output_tokens", data.OutputTokens).
		Msg("model request")

	// Log the event but don't fail the request if logging fails.
	if l.logRepo != nil {
		if logErr := l.logRepo.Append(ctx, data); logErr != nil {
			logger.Warn().Err(logErr).Msg("failed to append model request log")
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
