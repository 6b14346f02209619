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

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Train, inspect and persist classification models",
}

// --- train subcommand ---

var modelTrainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the classification models and print the reports",
	RunE:  runModelTrain,
}

func runModelTrain(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	registry := classify.NewRegistry(cfg.Classifier, cfg.Data.Dir, os.Stderr)
	modelTypes := requestedModelTypes(cmd, cfg)
	outcomes := registry.TrainAll(modelTypes...)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outcomesView(outcomes)); err != nil {
			return err
		}
	} else {
		for _, mt := range modelTypes {
			printTrainOutcome(mt, outcomes[mt])
		}
	}

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			return fmt.Errorf("some models failed to train")
		}
	}
	return nil
}

func printTrainOutcome(modelType string, outcome classify.TrainOutcome) {
	fmt.Fprintf(os.Stdout, "=== %s ===\n", modelType)
	if outcome.Err != nil {
		fmt.Fprintf(os.Stdout, "  error: %v\n\n", outcome.Err)
		return
	}

	report := outcome.Report
	fmt.Fprintf(os.Stdout, "  training size: %d, test size: %d\n", report.TrainingSize, report.TestSize)
	if report.Accuracy != nil {
		fmt.Fprintf(os.Stdout, "  accuracy: %.3f\n", *report.Accuracy)
	} else {
		fmt.Fprintln(os.Stdout, "  accuracy: n/a (too few documents for a held-out split)")
	}
	if report.Report != nil {
		fmt.Fprintf(os.Stdout, "  %-12s  %9s  %9s  %9s  %s\n", "category", "precision", "recall", "f1", "support")
		categories := make([]string, 0, len(report.Report))
		for cat := range report.Report {
			categories = append(categories, cat)
		}
		sort.Strings(categories)
		for _, cat := range categories {
			m := report.Report[cat]
			fmt.Fprintf(os.Stdout, "  %-12s  %9.3f  %9.3f  %9.3f  %7d\n",
				cat, m.Precision, m.Recall, m.F1, m.Support)
		}
	}
	fmt.Fprintln(os.Stdout)
}

type modelTrainView struct {
	Report *types.TrainingReport `json:"report,omitempty"`
	Error  string                `json:"error,omitempty"`
}

func outcomesView(outcomes map[string]classify.TrainOutcome) map[string]modelTrainView {
	views := make(map[string]modelTrainView, len(outcomes))
	for mt, outcome := range outcomes {
		if outcome.Err != nil {
			views[mt] = modelTrainView{Error: outcome.Err.Error()}
			continue
		}
		report := outcome.Report
		views[mt] = modelTrainView{Report: &report}
	}
	return views
}

// --- info subcommand ---

var modelInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print model configuration and training-data statistics",
	RunE:  runModelInfo,
}

func runModelInfo(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	registry := classify.NewRegistry(cfg.Classifier, cfg.Data.Dir, os.Stderr)
	c, err := registry.Get(modelTypeFlag(cmd, cfg))
	if err != nil {
		return err
	}
	info := c.ModelInfo()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(os.Stdout, "Model:      %s\n", info.ModelType)
	fmt.Fprintf(os.Stdout, "Trained:    %t\n", info.IsTrained)
	fmt.Fprintf(os.Stdout, "Documents:  %d\n", info.TotalDocuments)
	fmt.Fprintf(os.Stdout, "Categories: %s\n", strings.Join(info.Categories, ", "))
	for _, cat := range info.Categories {
		fmt.Fprintf(os.Stdout, "  %-20s %d\n", cat, info.TrainingStats[cat])
	}
	return nil
}

// --- save / load subcommands ---

var modelSaveCmd = &cobra.Command{
	Use:   "save <path>",
	Short: "Train the configured model and save a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runModelSave,
}

func runModelSave(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	registry := classify.NewRegistry(cfg.Classifier, cfg.Data.Dir, os.Stderr)
	c, err := registry.Get(modelTypeFlag(cmd, cfg))
	if err != nil {
		return err
	}
	if err := c.Save(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Model saved to %s\n", args[0])
	return nil
}

var modelLoadCmd = &cobra.Command{
	Use:   "load <path> [text...]",
	Short: "Load a model snapshot and optionally classify text with it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runModelLoad,
}

func runModelLoad(cmd *cobra.Command, args []string) error {
	c, err := classify.Load(args[0])
	if err != nil {
		return err
	}

	info := c.ModelInfo()
	fmt.Fprintf(os.Stdout, "Loaded %s model (%d training documents, categories: %s)\n",
		info.ModelType, info.TotalDocuments, strings.Join(info.Categories, ", "))

	if len(args) > 1 {
		result, err := c.Classify(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return formatClassifyOutput(result, jsonOutput)
	}
	return nil
}

// --- shared helpers ---

func modelTypeFlag(cmd *cobra.Command, cfg types.Config) string {
	if modelType, _ := cmd.Flags().GetString("model"); modelType != "" {
		return modelType
	}
	return cfg.Classifier.ModelType
}

func requestedModelTypes(cmd *cobra.Command, cfg types.Config) []string {
	if modelType, _ := cmd.Flags().GetString("model"); modelType != "" {
		return []string{modelType}
	}
	return []string{
		string(types.ModelNaiveBayes),
		string(types.ModelLogisticRegression),
	}
}

func init() {
	modelCmd.PersistentFlags().String("model", "", "model type: naive_bayes or logistic_regression")
	modelCmd.PersistentFlags().Bool("json", false, "output as JSON")

	modelCmd.AddCommand(modelTrainCmd)
	modelCmd.AddCommand(modelInfoCmd)
	modelCmd.AddCommand(modelSaveCmd)
	modelCmd.AddCommand(modelLoadCmd)
	rootCmd.AddCommand(modelCmd)
}
