// Package extract provides the text-extraction collaborator boundary used by
// resume parsing.
package extract

import (
	"fmt"
	"os"
)

// TextExtractor turns a document path into plain text. Implementations return
// an error when the document cannot be read or yields no text.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// PlainText reads a document as UTF-8 text. It covers .txt and .md resumes;
// richer formats plug in behind the same interface.
type PlainText struct{}

func (PlainText) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	return string(data), nil
}
