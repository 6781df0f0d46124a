package gitmoji

import (
	"encoding/json"
	"fmt"
)

// Record is a single gitmoji as published in the upstream catalog.
type Record struct {
	Emoji       string `json:"emoji"`
	Entity      string `json:"entity,omitempty"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Name        string `json:"name"`
	Semver      string `json:"semver,omitempty"`
}

// Document is the top-level shape of the catalog and of the local cache file.
type Document struct {
	Gitmojis []Record `json:"gitmojis"`
}

// Find returns the record whose code matches exactly.
func (d *Document) Find(code string) (Record, bool) {
	for _, r := range d.Gitmojis {
		if r.Code == code {
			return r, true
		}
	}
	return Record{}, false
}

// Snapshot is a fetched catalog: the raw JSON as served, plus its parsed form.
// Raw is what gets cached so fields this package does not model survive.
type Snapshot struct {
	Raw      json.RawMessage
	Document *Document
}

// ParseDocument decodes a catalog document. A document without a
// "gitmojis" list is rejected.
func ParseDocument(data []byte) (*Document, error) {
	var probe struct {
		Gitmojis *[]Record `json:"gitmojis"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if probe.Gitmojis == nil {
		return nil, fmt.Errorf("%w: missing \"gitmojis\" list", ErrInvalidDocument)
	}
	return &Document{Gitmojis: *probe.Gitmojis}, nil
}
