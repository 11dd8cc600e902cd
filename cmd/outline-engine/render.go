// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outline-engine/internal/docio"
	"github.com/pdiddy/outline-engine/internal/outline"
	"github.com/pdiddy/outline-engine/internal/preview"
	"github.com/pdiddy/outline-engine/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render <document>",
	Short: "Render a document to HTML or Markdown",
	Long: `Render parses an outline document and emits it as a single HTML or
Markdown document: headings from headlines, plus rendered lists, tables,
quotes, and fenced code blocks from each headline's content.

With --preview the Markdown result is rendered for the terminal instead
of written out.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	mode, err := renderModeFromFlags(cmd)
	if err != nil {
		return err
	}
	if mode == types.RenderPlain {
		// Render without a target format would re-emit the input.
		mode = types.RenderMarkdown
	}

	previewOut, _ := cmd.Flags().GetBool("preview")
	if previewOut && mode != types.RenderMarkdown {
		return fmt.Errorf("--preview requires Markdown output")
	}

	text, err := docio.ReadDocument(context.Background(), args[0], fetchConfig())
	if err != nil {
		return err
	}

	headlines := outline.Parse(docio.SplitLines(text), mode)
	doc := outline.RenderDocument(headlines, mode)

	if previewOut {
		style, _ := cmd.Flags().GetString("style")
		width, _ := cmd.Flags().GetInt("width")
		r := preview.Renderer{Style: style, Width: width}
		fmt.Fprint(os.Stdout, r.Render(doc))
		return nil
	}

	output, _ := cmd.Flags().GetString("output")
	return docio.WriteOutput(output, doc, os.Stdout)
}

func init() {
	renderCmd.Flags().Bool("html", false, "emit HTML")
	renderCmd.Flags().Bool("markdown", false, "emit Markdown (default)")
	renderCmd.Flags().String("output", "", "output file (default: stdout)")
	renderCmd.Flags().Bool("preview", false, "render Markdown output for the terminal")
	renderCmd.Flags().String("style", "auto", "preview style: auto, dark, light, notty, or a style file path")
	renderCmd.Flags().Int("width", 0, "preview wrap width (0 = auto)")

	rootCmd.AddCommand(renderCmd)
}
