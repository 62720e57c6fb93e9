package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RequestLogData captures one model API call for the append-only log.
type RequestLogData struct {
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestLogRepo provides append access to the model request log.
type RequestLogRepo interface {
	Append(ctx context.Context, data RequestLogData) error
}

type requestLogRepo struct {
	db *sql.DB
}

func (r *requestLogRepo) Append(ctx context.Context, data RequestLogData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO model_requests
		 (timestamp, provider, model, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.Provider, data.Model,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append model request: %w", err)
	}
	return nil
}
