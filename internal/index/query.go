// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/outline-engine/pkg/types"
)

// QueryOptions holds parameters for index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over titles and content.
	Query string

	// Document filters by document identifier.
	Document string

	// MinLevel and MaxLevel bound the headline level (0 = unbounded).
	MinLevel int
	MaxLevel int

	// CustomID filters by exact custom_id property value.
	CustomID string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Document == "" && q.MinLevel == 0 &&
		q.MaxLevel == 0 && q.CustomID == ""
}

// QueryResult is an indexed headline with its document identifier.
type QueryResult struct {
	types.Headline `yaml:",inline"`
	DocumentID     string `json:"document_id" yaml:"document_id"`
}

// Query retrieves headlines matching full-text search and structured
// filters. Full-text queries rank by relevance; structured-only queries
// sort by document, then level, then insertion order.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT h.document_id, h.level, h.title, h.content, h.properties, h.section_path
			FROM headlines_fts
			JOIN headlines h ON h.rowid = headlines_fts.rowid
			WHERE headlines_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT h.document_id, h.level, h.title, h.content, h.properties, h.section_path
			FROM headlines h
			WHERE 1=1`)
	}

	if opts.Document != "" {
		qb.WriteString(` AND h.document_id = ?`)
		args = append(args, opts.Document)
	}
	if opts.MinLevel > 0 {
		qb.WriteString(` AND h.level >= ?`)
		args = append(args, opts.MinLevel)
	}
	if opts.MaxLevel > 0 {
		qb.WriteString(` AND h.level <= ?`)
		args = append(args, opts.MaxLevel)
	}
	if opts.CustomID != "" {
		qb.WriteString(` AND h.custom_id = ?`)
		args = append(args, opts.CustomID)
	}

	if useFTS {
		qb.WriteString(` ORDER BY headlines_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY h.document_id, h.level, h.rowid`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			r         QueryResult
			content   string
			propsJSON string
			pathJSON  string
		)
		if err := rows.Scan(&r.DocumentID, &r.Level, &r.Title, &content, &propsJSON, &pathJSON); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if content != "" {
			r.Content = strings.Split(content, "\n")
		}
		if err := json.Unmarshal([]byte(propsJSON), &r.Properties); err != nil {
			r.Properties = map[string]string{}
		}
		if err := json.Unmarshal([]byte(pathJSON), &r.Path); err != nil {
			r.Path = nil
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
