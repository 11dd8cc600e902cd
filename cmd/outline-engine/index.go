// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/outline-engine/internal/index"
	"github.com/pdiddy/outline-engine/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Maintain a searchable SQLite index of parsed headlines",
	Long: `Index manages a local SQLite database of headline records. Use
subcommands to ingest documents, query headlines with full-text search
and structured filters, or export the index.`,
}

// --- store subcommand ---

var indexStoreCmd = &cobra.Command{
	Use:   "store <documents...>",
	Short: "Parse documents and ingest their headlines into the index",
	Long: `Store parses each document and writes its headline records to the index
database with FTS5 full-text search over titles and content. Documents
whose files are unchanged since the last run are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndexStore,
}

func runIndexStore(cmd *cobra.Command, args []string) error {
	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), args, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d document(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- query subcommand ---

var indexQueryCmd = &cobra.Command{
	Use:   "query [terms]",
	Short: "Search indexed headlines",
	Long: `Query searches the index using FTS5 full-text search over headline
titles and content, structured filters (level range, document, custom
id), or a combination of both.`,
	RunE: runIndexQuery,
}

func runIndexQuery(cmd *cobra.Command, args []string) error {
	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search terms, --min-level, --max-level, --document, or --id")
	}

	results, err := store.Query(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []index.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-5s  %-40s  %-15s  %s\n",
		"Rank", "Level", "Title", "Document", "Section")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for i, r := range results {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		doc := r.DocumentID
		if len(doc) > 15 {
			doc = doc[:12] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-5d  %-40s  %-15s  %s\n",
			i+1, r.Level, title, doc, strings.Join(r.Path, " / "))
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var indexExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the index to YAML or JSON",
	Long: `Export writes the full index (or a filtered subset) to export.yaml or
export.json in the index directory. Supports the same filter flags as
query.`,
	RunE: runIndexExport,
}

func runIndexExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := indexConfig(cmd)
	store, err := index.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.yaml\n", cfg.IndexDir)
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.json\n", cfg.IndexDir)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func indexConfig(cmd *cobra.Command) types.IndexConfig {
	indexDir, _ := cmd.Flags().GetString("index-dir")
	if indexDir == "" {
		indexDir = viper.GetString("index.index_dir")
	}
	if indexDir == "" {
		indexDir = "index"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.IndexConfig{
		IndexDir:   indexDir,
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) index.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	document, _ := cmd.Flags().GetString("document")
	minLevel, _ := cmd.Flags().GetInt("min-level")
	maxLevel, _ := cmd.Flags().GetInt("max-level")
	customID, _ := cmd.Flags().GetString("id")
	limit, _ := cmd.Flags().GetInt("limit")

	return index.QueryOptions{
		Query:      queryText,
		Document:   document,
		MinLevel:   minLevel,
		MaxLevel:   maxLevel,
		CustomID:   customID,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	indexCmd.PersistentFlags().String("index-dir", "", "directory for the index database (default: index)")
	indexCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Query flags.
	indexQueryCmd.Flags().String("query", "", "full-text search query")
	indexQueryCmd.Flags().String("document", "", "filter by document identifier")
	indexQueryCmd.Flags().Int("min-level", 0, "minimum headline level (0 = unbounded)")
	indexQueryCmd.Flags().Int("max-level", 0, "maximum headline level (0 = unbounded)")
	indexQueryCmd.Flags().String("id", "", "filter by exact custom_id value")
	indexQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	indexQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	indexExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	indexExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	indexExportCmd.Flags().String("document", "", "filter by document identifier")
	indexExportCmd.Flags().Int("min-level", 0, "minimum headline level (0 = unbounded)")
	indexExportCmd.Flags().Int("max-level", 0, "maximum headline level (0 = unbounded)")
	indexExportCmd.Flags().String("id", "", "filter by exact custom_id value")
	indexExportCmd.Flags().Int("limit", 0, "maximum headlines to export (0 = all)")

	// Wire subcommands.
	indexCmd.AddCommand(indexStoreCmd)
	indexCmd.AddCommand(indexQueryCmd)
	indexCmd.AddCommand(indexExportCmd)

	rootCmd.AddCommand(indexCmd)
}
