// Package knowledge loads the reference labour-law material that is attached
// to assistant prompts.
package knowledge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Base is read-only after Load.
type Base struct {
	Sections         []json.RawMessage `json:"sections"`
	ContractTemplate Template          `json:"contract_template"`
	KeyArticles      []json.RawMessage `json:"key_labor_law_articles"`
	Regulations      []json.RawMessage `json:"executive_regulations"`
	Glossary         json.RawMessage   `json:"glossary,omitempty"`
}

type Template struct {
	Sections []json.RawMessage `json:"sections"`
}

func Load(path string) (*Base, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge base: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Base, error) {
	var base Base
	if err := json.NewDecoder(r).Decode(&base); err != nil {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}
	return &base, nil
}

// Excerpt pretty-prints the first limit items as a JSON array. Non-ASCII text
// is kept verbatim. A negative limit keeps every item.
func Excerpt(items []json.RawMessage, limit int, indent string) string {
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	if items == nil {
		items = []json.RawMessage{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(items); err != nil {
		return ""
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
