package llm

import (
	"context"
)

// Provider is the core abstraction for generative-model interaction.
// Consumers build a Request with one or more parts and receive plain text.
type Provider interface {
	// Generate sends the request to the model and returns its text response.
	// The response is unstructured at this layer; any sectioning convention
	// is a contract between the prompt and its parser.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Parts is the ordered request content: text and inline binary parts.
	// The first part is conventionally the text prompt.
	Parts []Part

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// TopP is the nucleus sampling cutoff. Zero leaves the provider default.
	TopP float64
}

// Part is one unit of request content: either text or an inline binary
// payload with its media type. Exactly one of the two forms is set.
type Part struct {
	Text      string
	MediaType string
	Data      []byte
}

// IsText reports whether the part carries text rather than binary data.
func (p Part) IsText() bool {
	return len(p.Data) == 0
}

// TextPart builds a text part.
func TextPart(s string) Part {
	return Part{Text: s}
}

// DataPart builds an inline binary part.
func DataPart(mediaType string, data []byte) Part {
	return Part{MediaType: mediaType, Data: data}
}

// Response holds the model's output.
type Response struct {
	// Text is the raw generated text.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly model name to a concrete model ID,
// passing unknown names through unchanged.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
