package ai

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResponse signals that the model produced no usable text. Callers
// treat it exactly like a timeout or an invocation error: fall back to the
// rule-based path.
var ErrEmptyResponse = errors.New("model returned an empty response")

// textProvider matches SDK response types exposing a textual payload, such as
// the genai GenerateContentResponse.
type textProvider interface {
	Text() string
}

// CoerceText normalizes the varying response shapes of generative-model
// collaborators into plain text: a response object with a Text accessor, a
// mapping with a content key, a plain string, or an opaque value stringified
// as a last resort.
func CoerceText(raw any) (string, error) {
	var text string

	switch value := raw.(type) {
	case nil:
		return "", ErrEmptyResponse
	case string:
		text = value
	case textProvider:
		text = value.Text()
	case map[string]any:
		content, ok := value["content"]
		if !ok {
			return "", fmt.Errorf("%w: response mapping has no content key", ErrEmptyResponse)
		}
		text = fmt.Sprint(content)
	case fmt.Stringer:
		text = value.String()
	default:
		text = fmt.Sprint(value)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
