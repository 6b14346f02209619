// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubengine/pkg/types"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "publications.db")
	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func sampleRecords() []types.PublicationRecord {
	return []types.PublicationRecord{
		{
			Title:         "Deep learning for finance",
			Link:          "https://example.org/finance",
			Authors:       []types.Author{{Name: "Jane Smith", Profile: "https://example.org/jane"}},
			PublishedDate: "2024-01-15",
			Abstract:      "Applying neural networks to market prediction.",
		},
		{
			Title:    "Climate policy report",
			Link:     "https://example.org/climate",
			Authors:  []types.Author{{Name: "Ada Doe"}, {Name: "Bob Roe"}},
			Abstract: "A survey of emission reduction policies.",
		},
	}
}

func TestImportAndLoadAll(t *testing.T) {
	store, _ := testStore(t)

	var buf strings.Builder
	summary, err := store.Import(context.Background(), sampleRecords(), &buf)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if summary.Imported != 2 || summary.Skipped != 0 {
		t.Errorf("summary = %+v, want 2 imported, 0 skipped", summary)
	}

	records, err := store.LoadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Insertion order is preserved.
	if records[0].Title != "Deep learning for finance" {
		t.Errorf("records[0].Title = %q", records[0].Title)
	}
	if len(records[1].Authors) != 2 || records[1].Authors[0].Name != "Ada Doe" {
		t.Errorf("records[1].Authors = %#v", records[1].Authors)
	}
	if records[0].Authors[0].Profile != "https://example.org/jane" {
		t.Errorf("profile not round-tripped: %#v", records[0].Authors[0])
	}
}

func TestImportSkipsDuplicateLinks(t *testing.T) {
	store, _ := testStore(t)

	var buf strings.Builder
	if _, err := store.Import(context.Background(), sampleRecords(), &buf); err != nil {
		t.Fatal(err)
	}
	summary, err := store.Import(context.Background(), sampleRecords(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Imported != 0 || summary.Skipped != 2 {
		t.Errorf("summary = %+v, want 0 imported, 2 skipped", summary)
	}

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}

func TestStoreReopen(t *testing.T) {
	store, path := testStore(t)

	var buf strings.Builder
	if _, err := store.Import(context.Background(), sampleRecords(), &buf); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	records, err := reopened.LoadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records after reopen, want 2", len(records))
	}
}

func TestExportYAML(t *testing.T) {
	store, _ := testStore(t)
	var buf strings.Builder
	if _, err := store.Import(context.Background(), sampleRecords(), &buf); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "export.yaml")
	if err := store.ExportYAML(context.Background(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var records []types.PublicationRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d exported records, want 2", len(records))
	}
}

func TestExportJSON(t *testing.T) {
	store, _ := testStore(t)
	var buf strings.Builder
	if _, err := store.Import(context.Background(), sampleRecords(), &buf); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "export.json")
	if err := store.ExportJSON(context.Background(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var records []types.PublicationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d exported records, want 2", len(records))
	}
}
