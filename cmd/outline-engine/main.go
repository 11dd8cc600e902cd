// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the outline-engine CLI. It wires the
// parse, render, unwrap, and index stages to the terminal; the stage logic
// lives under internal/.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/outline-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the outline-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "outline-engine",
	Short: "Parse, render, reflow, and index plain-text outline documents",
	Long: `outline-engine transforms plain-text outline documents (headlines marked by
leading asterisks, property drawers, lists, tables, and fenced blocks).

Each transformation is a subcommand: parse builds and filters the headline
tree, render emits HTML or Markdown, unwrap merges hard-wrapped lines back
into logical lines, and index maintains a searchable SQLite database of
parsed headlines.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./outline-engine.yaml or ~/.config/outline-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("outline-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "outline-engine"))
		}
	}

	viper.SetEnvPrefix("OUTLINE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// renderModeFromFlags resolves the active render mode. Requesting HTML and
// Markdown together is a configuration conflict, rejected before any
// processing starts.
func renderModeFromFlags(cmd *cobra.Command) (types.RenderMode, error) {
	html, _ := cmd.Flags().GetBool("html")
	markdown, _ := cmd.Flags().GetBool("markdown")

	switch {
	case html && markdown:
		return "", fmt.Errorf("--html and --markdown are mutually exclusive")
	case html:
		return types.RenderHTML, nil
	case markdown:
		return types.RenderMarkdown, nil
	default:
		return types.RenderPlain, nil
	}
}

// fetchConfig assembles remote-fetch settings from the config file.
func fetchConfig() types.FetchConfig {
	cfg := types.FetchConfig{}
	cfg.Timeout = viper.GetDuration("fetch.timeout")
	cfg.UserAgent = viper.GetString("fetch.user_agent")
	cfg.MaxRetries = viper.GetInt("fetch.max_retries")
	if cfg.UserAgent == "" {
		cfg.UserAgent = "outline-engine/" + version
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
