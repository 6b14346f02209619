// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus loads publication records from crawler output and shapes
// them into the canonical form the ranker indexes. Sources are tried in a
// fixed primary-to-fallback order; malformed fields degrade to safe empty
// values rather than erroring.
package corpus

import (
	"strings"

	"github.com/pdiddy/pubengine/pkg/types"
)

// Shape coerces one raw record, as decoded from crawler JSON, into a
// PublicationRecord. Authors may arrive as a list of objects, a list of
// strings, a single string, or be absent entirely; the date may live under
// "date" or "published_date". Unknown shapes degrade to the safest empty or
// wrapped form — Shape never fails.
func Shape(raw map[string]any) types.PublicationRecord {
	rec := types.PublicationRecord{
		Title:    stringField(raw, "title"),
		Link:     stringField(raw, "link"),
		Abstract: stringField(raw, "abstract"),
		Authors:  shapeAuthors(raw["authors"]),
	}

	// The newer crawler writes "date", the older one "published_date".
	rec.PublishedDate = stringField(raw, "date")
	if rec.PublishedDate == "" {
		rec.PublishedDate = stringField(raw, "published_date")
	}
	return rec
}

// AuthorNames returns the author display names in record order, for
// building the searchable document string.
func AuthorNames(rec types.PublicationRecord) []string {
	names := make([]string, 0, len(rec.Authors))
	for _, a := range rec.Authors {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return names
}

func shapeAuthors(v any) []types.Author {
	switch val := v.(type) {
	case nil:
		return []types.Author{}
	case string:
		name := strings.TrimSpace(val)
		if name == "" {
			return []types.Author{}
		}
		return []types.Author{{Name: name}}
	case []any:
		authors := make([]types.Author, 0, len(val))
		for _, item := range val {
			switch a := item.(type) {
			case string:
				if name := strings.TrimSpace(a); name != "" {
					authors = append(authors, types.Author{Name: name})
				}
			case map[string]any:
				name := strings.TrimSpace(stringField(a, "name"))
				if name != "" {
					authors = append(authors, types.Author{
						Name:    name,
						Profile: stringField(a, "profile"),
					})
				}
			}
		}
		return authors
	default:
		return []types.Author{}
	}
}

// stringField reads a string value from a decoded JSON object, returning ""
// for missing keys, nulls, and non-string values.
func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
