// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/pubengine/pkg/types"
)

// Source yields a shaped publication corpus. Implementations report an
// error when their backing data is unavailable so the caller can fall
// through to the next candidate.
type Source interface {
	Name() string
	Load() ([]types.PublicationRecord, error)
}

// FileSource reads a JSON array of raw crawler records and shapes each one.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "json:" + s.Path }

func (s FileSource) Load() ([]types.PublicationRecord, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Path, err)
	}

	records := make([]types.PublicationRecord, len(raw))
	for i, r := range raw {
		records[i] = Shape(r)
	}
	return records, nil
}

// StoreSource reads the corpus from a SQLite database built by
// `pubengine corpus import`.
type StoreSource struct {
	Path string
}

func (s StoreSource) Name() string { return "sqlite:" + s.Path }

func (s StoreSource) Load() ([]types.PublicationRecord, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, err
	}

	store, err := Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.LoadAll(context.Background())
}

// LoadFirst tries each source in order and returns the records from the
// first one that loads. A source that fails produces a warning on w and the
// next candidate is tried. When every source fails the corpus is empty —
// missing data is recovered locally, never surfaced as an error.
func LoadFirst(w io.Writer, sources ...Source) ([]types.PublicationRecord, string) {
	for _, src := range sources {
		records, err := src.Load()
		if err != nil {
			fmt.Fprintf(w, "warning: corpus source %s unavailable: %v\n", src.Name(), err)
			continue
		}
		return records, src.Name()
	}
	return nil, ""
}
