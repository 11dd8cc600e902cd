// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outline-engine/internal/docio"
	"github.com/pdiddy/outline-engine/internal/outline"
	"github.com/pdiddy/outline-engine/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <document>",
	Short: "Parse a document into headline records and filter them",
	Long: `Parse builds the headline tree of an outline document: one record per
headline with its level, title, content, property-drawer entries, and
section path. Records can be filtered by level range, title, custom id,
or section, and printed as a table, JSON, or YAML.

The document may be a local file or an http(s) URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	mode, err := renderModeFromFlags(cmd)
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	yamlOut, _ := cmd.Flags().GetBool("yaml")
	if jsonOut && yamlOut {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}

	filter, err := outline.NewFilter(filterFromFlags(cmd))
	if err != nil {
		return err
	}

	text, err := docio.ReadDocument(context.Background(), args[0], fetchConfig())
	if err != nil {
		return err
	}

	headlines := outline.Parse(docio.SplitLines(text), mode)
	headlines = filter.Apply(headlines)

	switch {
	case jsonOut:
		return outline.FormatJSON(headlines, os.Stdout)
	case yamlOut:
		return outline.FormatYAML(headlines, os.Stdout)
	default:
		outline.FormatTable(headlines, os.Stdout)
		return nil
	}
}

// filterFromFlags collects the parse filter flags into a FilterConfig.
func filterFromFlags(cmd *cobra.Command) types.FilterConfig {
	minLevel, _ := cmd.Flags().GetInt("min-level")
	maxLevel, _ := cmd.Flags().GetInt("max-level")
	title, _ := cmd.Flags().GetString("title")
	customID, _ := cmd.Flags().GetString("custom-id")
	sectionTitle, _ := cmd.Flags().GetString("section-title")
	sectionCustomID, _ := cmd.Flags().GetString("section-custom-id")

	return types.FilterConfig{
		MinLevel:        minLevel,
		MaxLevel:        maxLevel,
		Title:           title,
		CustomID:        customID,
		SectionTitle:    sectionTitle,
		SectionCustomID: sectionCustomID,
	}
}

func init() {
	parseCmd.Flags().Bool("html", false, "render titles and content as HTML")
	parseCmd.Flags().Bool("markdown", false, "render titles and content as Markdown")
	parseCmd.Flags().Bool("json", false, "output records as JSON")
	parseCmd.Flags().Bool("yaml", false, "output records as YAML")
	parseCmd.Flags().Int("min-level", 0, "minimum headline level, inclusive (0 = unbounded)")
	parseCmd.Flags().Int("max-level", 0, "maximum headline level, inclusive (0 = unbounded)")
	parseCmd.Flags().String("title", "", "filter by title regular expression")
	parseCmd.Flags().String("custom-id", "", "filter by custom_id property regular expression")
	parseCmd.Flags().String("section-title", "", "filter by ancestor title regular expression")
	parseCmd.Flags().String("section-custom-id", "", "filter by ancestor custom_id regular expression")

	rootCmd.AddCommand(parseCmd)
}
