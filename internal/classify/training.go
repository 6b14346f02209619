// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/pubengine/pkg/types"
)

const (
	categoriesFile        = "categories.csv"
	trainingDocumentsFile = "training_documents.csv"
)

// fallbackCategories keeps the system operable when no category file is
// present.
var fallbackCategories = []string{"politics", "business", "health"}

// fallbackTrainingDocuments is the built-in labeled set used when no
// training file is present. Four documents per fallback category, enough
// for a held-out evaluation split.
var fallbackTrainingDocuments = []types.TrainingDocument{
	{Text: "The government announced new policies to tackle climate change and economic issues", Category: "politics"},
	{Text: "Parliament voted on controversial legislation affecting immigration and social services", Category: "politics"},
	{Text: "Senators debated immigration legislation before the parliament session closed", Category: "politics"},
	{Text: "Election campaign focused on government policies, voting reform and public services", Category: "politics"},
	{Text: "The company reported strong quarterly earnings with increased revenue and market expansion", Category: "business"},
	{Text: "Tech startup secured funding for innovative product development and market growth", Category: "business"},
	{Text: "Quarterly revenue growth pushed the stock price higher after the earnings report", Category: "business"},
	{Text: "Investors backed the merger deal expecting stronger market share and profit growth", Category: "business"},
	{Text: "Medical researchers discovered breakthrough treatment for chronic disease management", Category: "health"},
	{Text: "Healthcare system implemented new patient safety protocols and quality improvements", Category: "health"},
	{Text: "Hospital clinicians trialed a new vaccine improving patient outcomes for chronic illness", Category: "health"},
	{Text: "Public health officials expanded disease screening and preventive care programs", Category: "health"},
}

// LoadCategories reads the ordered category list from categories.csv under
// dir. A missing or unreadable file falls back to the built-in categories;
// the warning goes to w.
func LoadCategories(dir string, w io.Writer) []string {
	path := filepath.Join(dir, categoriesFile)
	rows, err := readCSV(path)
	if err != nil {
		fmt.Fprintf(w, "warning: %v, using built-in categories\n", err)
		return append([]string(nil), fallbackCategories...)
	}
	var categories []string
	for _, row := range rows {
		if cat := row["category"]; cat != "" {
			categories = append(categories, cat)
		}
	}
	if len(categories) == 0 {
		fmt.Fprintf(w, "warning: %s has no categories, using built-in categories\n", path)
		return append([]string(nil), fallbackCategories...)
	}
	return categories
}

// LoadTrainingDocuments reads labeled examples from training_documents.csv
// under dir, falling back to the built-in set when the file is missing or
// unreadable.
func LoadTrainingDocuments(dir string, w io.Writer) []types.TrainingDocument {
	path := filepath.Join(dir, trainingDocumentsFile)
	rows, err := readCSV(path)
	if err != nil {
		fmt.Fprintf(w, "warning: %v, using built-in training documents\n", err)
		return append([]types.TrainingDocument(nil), fallbackTrainingDocuments...)
	}
	var docs []types.TrainingDocument
	for _, row := range rows {
		if row["text"] == "" || row["category"] == "" {
			continue
		}
		docs = append(docs, types.TrainingDocument{
			Text:     row["text"],
			Category: row["category"],
		})
	}
	if len(docs) == 0 {
		fmt.Fprintf(w, "warning: %s has no training documents, using built-in training documents\n", path)
		return append([]types.TrainingDocument(nil), fallbackTrainingDocuments...)
	}
	fmt.Fprintf(w, "loaded %d training documents from %s\n", len(docs), path)
	return docs
}

// readCSV reads a headed CSV file into one map per data row.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
