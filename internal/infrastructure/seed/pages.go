// Package seed holds the default CMS pages loaded by cmd/seedpages.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/njrexim/cms-api/internal/core/ports"
)

//go:embed pages.json
var defaultPages []byte

type pageDoc struct {
	Title    string         `json:"title"`
	Slug     string         `json:"slug"`
	Content  map[string]any `json:"content"`
	IsActive *bool          `json:"isActive"`
}

// DefaultPages returns the built-in page set.
func DefaultPages() ([]ports.PageInput, error) {
	return ReadPages(bytes.NewReader(defaultPages))
}

// ReadPages decodes a JSON array of pages. Every entry needs a slug.
func ReadPages(r io.Reader) ([]ports.PageInput, error) {
	var docs []pageDoc
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode pages: %w", err)
	}

	out := make([]ports.PageInput, 0, len(docs))
	for i, d := range docs {
		if strings.TrimSpace(d.Slug) == "" {
			return nil, fmt.Errorf("decode pages: entry %d has no slug", i)
		}
		title := d.Title
		out = append(out, ports.PageInput{
			Title:    &title,
			Slug:     d.Slug,
			Content:  d.Content,
			IsActive: d.IsActive,
		})
	}
	return out, nil
}
