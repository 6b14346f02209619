// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubengine/internal/classify"
	"github.com/pdiddy/pubengine/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Classify text into a topical category",
	Long: `Classify trains the configured model on the training data under the
data directory (or the built-in fallback set) and classifies the given text,
printing the predicted category, per-category probabilities and an
explanation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	if modelType, _ := cmd.Flags().GetString("model"); modelType != "" {
		cfg.Classifier.ModelType = modelType
	}
	text := strings.Join(args, " ")

	registry := classify.NewRegistry(cfg.Classifier, cfg.Data.Dir, os.Stderr)
	c, err := registry.Get(cfg.Classifier.ModelType)
	if err != nil {
		return err
	}

	result, err := c.Classify(text)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatClassifyOutput(result, jsonOutput)
}

func formatClassifyOutput(result types.ClassificationResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(os.Stdout, "Predicted: %s (%.3f)\n", result.PredictedCategory, result.Confidence)
	fmt.Fprintf(os.Stdout, "Model:     %s\n\n", result.ModelUsed)

	categories := make([]string, 0, len(result.Probabilities))
	for cat := range result.Probabilities {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		return result.Probabilities[categories[i]] > result.Probabilities[categories[j]]
	})
	for _, cat := range categories {
		fmt.Fprintf(os.Stdout, "  %-20s %6.1f%%\n", cat, result.Probabilities[cat]*100)
	}

	fmt.Fprintf(os.Stdout, "\n%s\n", result.Explanation)
	return nil
}

func init() {
	classifyCmd.Flags().String("model", "", "model type: naive_bayes or logistic_regression")
	classifyCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(classifyCmd)
}
