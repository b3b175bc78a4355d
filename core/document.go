package core

import "strings"

// Document is a knowledge snippet returned by a KnowledgeStore search or
// supplied for ingestion. Documents are read-only to agents: once retrieved
// they are passed through the pipeline stages unmodified.
type Document struct {
	// Content is the raw text of the snippet.
	Content string `json:"content"`
	// Metadata carries arbitrary provenance data. By convention the
	// "source" key identifies where the snippet came from.
	Metadata map[string]any `json:"metadata,omitempty"`
	// Score is the similarity score assigned by the store. Higher means
	// more relevant; the exact scale is store-defined.
	Score float64 `json:"score"`
}

// Source returns the document's "source" metadata entry or the empty string
// when the document carries no usable provenance.
func (d Document) Source() string {
	if d.Metadata == nil {
		return ""
	}
	if s, ok := d.Metadata["source"].(string); ok {
		return s
	}
	return ""
}

// JoinContents concatenates document contents in input order separated by
// blank lines, producing the context block fed to generation prompts.
func JoinContents(docs []Document) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, d.Content)
	}
	return strings.Join(parts, "\n\n")
}
