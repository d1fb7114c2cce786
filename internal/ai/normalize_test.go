package ai

import (
	"errors"
	"testing"
)

type fixedText struct{ text string }

func (f fixedText) Text() string { return f.text }

func TestCoerceText(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		expect string
	}{
		{"plain string", "  hello  ", "hello"},
		{"text accessor", fixedText{text: "from sdk"}, "from sdk"},
		{"content mapping", map[string]any{"content": "mapped"}, "mapped"},
		{"opaque value", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceText(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestCoerceTextEmptyResponses(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"nil", nil},
		{"blank string", "   "},
		{"blank text accessor", fixedText{}},
		{"mapping without content", map[string]any{"model": "x"}},
		{"blank content", map[string]any{"content": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CoerceText(tt.raw); !errors.Is(err, ErrEmptyResponse) {
				t.Fatalf("expected ErrEmptyResponse, got %v", err)
			}
		})
	}
}
