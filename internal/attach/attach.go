package attach

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// Attachment is an image payload decoded from its self-describing
// data-URL form. It is the only representation passed beyond the boundary;
// the combined string never travels past the decode step.
type Attachment struct {
	MediaType string
	Data      []byte
}

// ErrMalformed indicates a string that does not match the
// data:<mediatype>;base64,<payload> shape.
type ErrMalformed struct {
	Reason string
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed data URL: %s", e.Reason)
}

// ParseDataURL decodes a data:<mediatype>;base64,<payload> string.
func ParseDataURL(s string) (*Attachment, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, &ErrMalformed{Reason: "missing data: prefix"}
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, &ErrMalformed{Reason: "missing payload separator"}
	}

	mediaType, enc, ok := strings.Cut(meta, ";")
	if !ok || enc != "base64" {
		return nil, &ErrMalformed{Reason: "not base64 encoded"}
	}
	if mediaType == "" {
		return nil, &ErrMalformed{Reason: "missing media type"}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &ErrMalformed{Reason: "invalid base64 payload"}
	}

	return &Attachment{MediaType: mediaType, Data: data}, nil
}

// Encode returns the attachment in its self-describing data-URL form.
func (a *Attachment) Encode() string {
	return "data:" + a.MediaType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// FromFile reads a local image file and sniffs its media type.
func FromFile(path string) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("read attachment: %s is empty", path)
	}

	mediaType := http.DetectContentType(data)
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("attachment %s is not an image (%s)", path, mediaType)
	}

	return &Attachment{MediaType: mediaType, Data: data}, nil
}
