// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubengine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pubengine CLI.
var rootCmd = &cobra.Command{
	Use:   "pubengine",
	Short: "Publication search and classification engine",
	Long: `pubengine indexes bibliographic records for TF-IDF vector-space search
and classifies arbitrary text into topical categories with a trained
probabilistic model.

Run the HTTP API with "serve", or use "search", "classify", "model" and
"corpus" for one-shot operations against the configured data directory.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubengine.yaml or ~/.config/pubengine/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "data directory (overrides config)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubengine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubengine"))
		}
	}

	viper.SetEnvPrefix("PUBENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
