package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/specfold/internal/options"
	"github.com/erraggy/specfold/node"
)

// docInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// load parses the document from whichever input was provided and reports
// the base directory for resolving relative references (the file's
// directory for file input, the configured default otherwise).
func (d docInput) load() (*node.Node, string, error) {
	if err := options.ValidateSingleInputSource(
		"one of file or content must be provided",
		"only one of file or content may be provided",
		d.File != "", d.Content != "",
	); err != nil {
		return nil, "", err
	}

	if d.Content != "" {
		if len(d.Content) > cfg.MaxInlineSize {
			return nil, "", fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SPECFOLD_MAX_INLINE_SIZE to increase",
				len(d.Content), cfg.MaxInlineSize)
		}
		doc, err := node.FromYAML([]byte(d.Content))
		if err != nil {
			return nil, "", fmt.Errorf("parsing inline content: %w", err)
		}
		return doc, cfg.BaseDir, nil
	}

	data, err := os.ReadFile(d.File)
	if err != nil {
		return nil, "", fmt.Errorf("reading document: %w", err)
	}
	doc, err := node.FromYAML(data)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", filepath.Base(d.File), err)
	}
	return doc, filepath.Dir(d.File), nil
}
