// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index persists parsed headline records in a local SQLite database
// with full-text retrieval over titles and content.
package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/outline-engine/internal/docio"
	"github.com/pdiddy/outline-engine/internal/outline"
	"github.com/pdiddy/outline-engine/pkg/types"
)

const dbFile = "outline.db"

// Store manages the document index SQLite database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
}

// NewStore opens or creates the index database at indexDir/outline.db,
// creating the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	indexDir := cfg.IndexDir
	if indexDir == "" {
		indexDir = "index"
	}
	if err := os.MkdirAll(indexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(indexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		indexDir:   indexDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			path TEXT,
			headline_count INTEGER,
			indexed_at TEXT,
			file_mod_time TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS headlines (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			document_id TEXT NOT NULL REFERENCES documents(id),
			level INTEGER NOT NULL,
			title TEXT NOT NULL,
			content TEXT,
			properties TEXT,
			section_path TEXT,
			custom_id TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_headlines_document_id ON headlines(document_id)`,
		`CREATE INDEX IF NOT EXISTS idx_headlines_level ON headlines(level)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='headlines_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE headlines_fts USING fts5(title, content, content=headlines, content_rowid=rowid)`,
			`CREATE TRIGGER headlines_ai AFTER INSERT ON headlines BEGIN
				INSERT INTO headlines_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
			`CREATE TRIGGER headlines_ad AFTER DELETE ON headlines BEGIN
				INSERT INTO headlines_fts(headlines_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
			END`,
			`CREATE TRIGGER headlines_au AFTER UPDATE ON headlines BEGIN
				INSERT INTO headlines_fts(headlines_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
				INSERT INTO headlines_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of documents processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// documentID derives a stable identifier from the document's base filename.
func documentID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Ingest parses each document and populates the index. Unchanged files
// (same modification time as last indexing) are skipped; changed files are
// re-indexed. Progress is written to w.
func (s *Store) Ingest(ctx context.Context, paths []string, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		docID := documentID(path)

		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", docID, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM documents WHERE id = ?`, docID,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", docID)
			summary.Skipped++
			continue
		}
		isUpdate := err == nil

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", docID, err)
			summary.Failed++
			continue
		}

		headlines := outline.Parse(docio.SplitLines(string(data)), types.RenderPlain)

		if err := s.ingestDocument(ctx, docID, path, headlines, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", docID, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d headlines)\n", docID, len(headlines))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d headlines)\n", docID, len(headlines))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestDocument(ctx context.Context, docID, path string, headlines []types.Headline, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Remove old headlines if updating.
	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM headlines WHERE document_id = ?`, docID); err != nil {
			return fmt.Errorf("deleting old headlines: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, path, headline_count, indexed_at, file_mod_time)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			path=excluded.path, headline_count=excluded.headline_count,
			indexed_at=excluded.indexed_at, file_mod_time=excluded.file_mod_time`,
		docID, path, len(headlines), time.Now().UTC().Format(time.RFC3339), modTime,
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO headlines (document_id, level, title, content, properties, section_path, custom_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, h := range headlines {
		propsJSON, _ := json.Marshal(h.Properties)
		pathJSON, _ := json.Marshal(h.Path)
		_, err := stmt.ExecContext(ctx,
			docID, h.Level, h.Title, strings.Join(h.Content, "\n"),
			string(propsJSON), string(pathJSON), h.CustomID(),
		)
		if err != nil {
			return fmt.Errorf("inserting headline %q: %w", h.Title, err)
		}
	}

	return tx.Commit()
}
