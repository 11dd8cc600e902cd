// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outline-engine/internal/docio"
	"github.com/pdiddy/outline-engine/internal/reflow"
)

var unwrapCmd = &cobra.Command{
	Use:   "unwrap <document>",
	Short: "Merge hard-wrapped lines into logical lines",
	Long: `Unwrap joins physical lines that belong to the same logical paragraph or
list item into single lines. Headlines, comments, tables, property
drawers, and fenced block interiors are never merged, and blank-line
positions are preserved exactly.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnwrap,
}

func runUnwrap(cmd *cobra.Command, args []string) error {
	text, err := docio.ReadDocument(context.Background(), args[0], fetchConfig())
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	return docio.WriteOutput(output, reflow.Unwrap(text), os.Stdout)
}

func init() {
	unwrapCmd.Flags().String("output", "", "output file (default: stdout)")

	rootCmd.AddCommand(unwrapCmd)
}
