// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubengine/pkg/types"
)

// Store manages the SQLite corpus database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the corpus database at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS publications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			link TEXT,
			authors TEXT NOT NULL,
			published_date TEXT,
			abstract TEXT
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_publications_link
			ON publications(link) WHERE link != ''`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary holds counts from a corpus import run.
type ImportSummary struct {
	Imported int
	Skipped  int
}

// Import inserts records into the store inside one transaction. Records
// whose link duplicates an already-stored publication are skipped. Progress
// is written to w.
func (s *Store) Import(ctx context.Context, records []types.PublicationRecord, w io.Writer) (ImportSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO publications (title, link, authors, published_date, abstract)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var summary ImportSummary
	for _, rec := range records {
		authorsJSON, _ := json.Marshal(rec.Authors)
		res, err := stmt.ExecContext(ctx,
			rec.Title, rec.Link, string(authorsJSON), rec.PublishedDate, rec.Abstract)
		if err != nil {
			return summary, fmt.Errorf("inserting %q: %w", rec.Title, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			summary.Skipped++
		} else {
			summary.Imported++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing import: %w", err)
	}

	fmt.Fprintf(w, "imported: %d, skipped: %d\n", summary.Imported, summary.Skipped)
	return summary, nil
}

// LoadAll returns every stored publication in insertion order.
func (s *Store) LoadAll(ctx context.Context) ([]types.PublicationRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, link, authors, published_date, abstract
		 FROM publications ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying publications: %w", err)
	}
	defer rows.Close()

	var records []types.PublicationRecord
	for rows.Next() {
		var (
			rec         types.PublicationRecord
			authorsJSON string
			link        sql.NullString
			date        sql.NullString
			abstract    sql.NullString
		)
		if err := rows.Scan(&rec.Title, &link, &authorsJSON, &date, &abstract); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		rec.Link = link.String
		rec.PublishedDate = date.String
		rec.Abstract = abstract.String
		if err := json.Unmarshal([]byte(authorsJSON), &rec.Authors); err != nil {
			rec.Authors = []types.Author{}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the number of stored publications.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM publications`).Scan(&n)
	return n, err
}
