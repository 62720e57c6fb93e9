package attach

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func TestParseDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))

	a, err := ParseDataURL("data:image/png;base64," + payload)
	if err != nil {
		t.Fatalf("ParseDataURL returned error: %v", err)
	}
	if a.MediaType != "image/png" {
		t.Errorf("MediaType = %q, want %q", a.MediaType, "image/png")
	}
	if !bytes.Equal(a.Data, []byte("fake-png-bytes")) {
		t.Errorf("Data = %q, want %q", a.Data, "fake-png-bytes")
	}
}

func TestParseDataURL_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no prefix", "image/png;base64,aGk="},
		{"no separator", "data:image/png;base64"},
		{"not base64", "data:image/png;utf8,hello"},
		{"empty media type", "data:;base64,aGk="},
		{"bad payload", "data:image/png;base64,!!!!"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDataURL(tt.input)
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			var malformed *ErrMalformed
			if !errors.As(err, &malformed) {
				t.Errorf("expected *ErrMalformed, got %T", err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	a := &Attachment{MediaType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}

	parsed, err := ParseDataURL(a.Encode())
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if parsed.MediaType != a.MediaType {
		t.Errorf("MediaType = %q, want %q", parsed.MediaType, a.MediaType)
	}
	if !bytes.Equal(parsed.Data, a.Data) {
		t.Errorf("Data mismatch after round trip")
	}
}
