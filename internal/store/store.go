// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store exports converted quiz tables into a SQLite database.
//
// Each export replaces the questions table with one TEXT column per quiz
// column (nulls stay NULL) and appends a row to the conversions log.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/quizconv/pkg/types"
)

const (
	questionsTable = "questions"

	// Bookkeeping columns are prefixed so they cannot collide with quiz columns.
	positionColumn = "_position"
	lineColumn     = "_line"
)

// Conversion is one entry of the conversions log.
type Conversion struct {
	RunID       string `db:"run_id"`
	Source      string `db:"source"`
	Output      string `db:"output"`
	Rows        int    `db:"row_count"`
	Warnings    int    `db:"warnings"`
	ConvertedAt string `db:"converted_at"`
}

// Store wraps the export database.
type Store struct {
	db *sqlx.DB
}

// Open opens or creates the SQLite database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		run_id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		output TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		warnings INTEGER NOT NULL,
		converted_at TEXT NOT NULL
	)`)
	return err
}

// Export replaces the questions table with t and logs the run in one transaction.
func (s *Store) Export(ctx context.Context, conv Conversion, t *types.Table) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning export: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+quoteIdent(questionsTable)); err != nil {
		return fmt.Errorf("dropping previous export: %w", err)
	}

	cols := make([]string, 0, len(t.Columns)+2)
	defs := make([]string, 0, len(t.Columns)+2)
	cols = append(cols, quoteIdent(positionColumn), quoteIdent(lineColumn))
	defs = append(defs, quoteIdent(positionColumn)+" INTEGER PRIMARY KEY", quoteIdent(lineColumn)+" INTEGER NOT NULL")
	for _, c := range t.Columns {
		cols = append(cols, quoteIdent(c))
		defs = append(defs, quoteIdent(c)+" TEXT")
	}

	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(questionsTable), strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("creating questions table: %w", err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(questionsTable), strings.Join(cols, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))
	stmt, err := tx.PreparexContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		args := make([]any, 0, len(cols))
		args = append(args, i+1, row.Line)
		for _, cell := range row.Cells {
			args = append(args, sql.NullString{String: cell.Value, Valid: cell.Valid})
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting line %d: %w", row.Line, err)
		}
	}

	if conv.ConvertedAt == "" {
		conv.ConvertedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if _, err := tx.NamedExecContext(ctx, `INSERT INTO conversions
		(run_id, source, output, row_count, warnings, converted_at)
		VALUES (:run_id, :source, :output, :row_count, :warnings, :converted_at)`, conv); err != nil {
		return fmt.Errorf("logging conversion: %w", err)
	}

	return tx.Commit()
}

// Count returns the number of exported questions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT count(*) FROM `+quoteIdent(questionsTable)); err != nil {
		return 0, fmt.Errorf("counting questions: %w", err)
	}
	return n, nil
}

// Conversions returns the conversions log, oldest first.
func (s *Store) Conversions(ctx context.Context) ([]Conversion, error) {
	var out []Conversion
	if err := s.db.SelectContext(ctx, &out,
		`SELECT run_id, source, output, row_count, warnings, converted_at FROM conversions ORDER BY converted_at, rowid`); err != nil {
		return nil, fmt.Errorf("listing conversions: %w", err)
	}
	return out, nil
}

// Column returns the values of one exported column in row order.
func (s *Store) Column(ctx context.Context, name string) ([]sql.NullString, error) {
	var out []sql.NullString
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		quoteIdent(name), quoteIdent(questionsTable), quoteIdent(positionColumn))
	if err := s.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("reading column %q: %w", name, err)
	}
	return out, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
