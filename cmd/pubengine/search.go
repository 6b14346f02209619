// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubengine/internal/corpus"
	"github.com/pdiddy/pubengine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the publication corpus",
	Long: `Search indexes the configured corpus and ranks records against the
query by TF-IDF cosine similarity. An empty query lists every record.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	query := strings.Join(args, " ")

	ranker := buildRanker(cfg, os.Stderr)
	if ranker.Len() == 0 {
		return fmt.Errorf("no corpus available under %s", cfg.Data.Dir)
	}

	var results []types.RankedResult
	if strings.TrimSpace(query) == "" {
		results = ranker.All()
	} else {
		results = ranker.Search(query)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []types.RankedResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-6s  %-50s  %-30s  %s\n",
		"Rank", "Score", "Title", "Authors", "Date")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, r := range results {
		title := r.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		authors := strings.Join(corpus.AuthorNames(r.PublicationRecord), ", ")
		if len(authors) > 30 {
			authors = authors[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-6.2f  %-50s  %-30s  %s\n",
			i+1, r.Score, title, authors, r.PublishedDate)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
