package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// SetupSchema initializes the corpus table in the provided database. It is
// idempotent and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schemaCorpora = `
CREATE TABLE IF NOT EXISTS corpora (
    corpus_id INTEGER PRIMARY KEY,
    corpus_name TEXT NOT NULL UNIQUE,
    added_at TEXT NOT NULL DEFAULT (datetime('now')),
    content BLOB NOT NULL
);
`

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	// If the transaction succeeds, tx.Commit() will be called first, and the rollback will do nothing. If it fails, this will clean up.
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaCorpora); err != nil {
		return fmt.Errorf("could not create schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	return nil
}

// CorpusInfo holds the metadata for a stored corpus.
type CorpusInfo struct {
	Id      int
	Name    string
	AddedAt string
	Size    int
}

// CorpusStore manages named training corpora in a SQLite database, so a
// corpus can be ingested once and trained on repeatedly. It holds the
// database connection and prepared SQL statements for efficient access.
type CorpusStore struct {
	db               *sql.DB
	stmtAddCorpus    *sql.Stmt
	stmtGetCorpus    *sql.Stmt
	stmtListCorpora  *sql.Stmt
	stmtRemoveCorpus *sql.Stmt
	logger           *slog.Logger
}

// NewCorpusStore creates and returns a new CorpusStore. It pre-compiles all
// necessary SQL statements, returning an error if any preparation fails.
func NewCorpusStore(db *sql.DB) (*CorpusStore, error) {
	stmtAddCorpus, err := db.Prepare(`INSERT INTO corpora (corpus_name, content) VALUES (?, ?);`)
	if err != nil {
		return nil, err
	}

	stmtGetCorpus, err := db.Prepare(`SELECT content FROM corpora WHERE corpus_name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtListCorpora, err := db.Prepare(`SELECT corpus_id, corpus_name, added_at, length(content) FROM corpora ORDER BY corpus_name;`)
	if err != nil {
		return nil, err
	}

	stmtRemoveCorpus, err := db.Prepare(`DELETE FROM corpora WHERE corpus_name = ?;`)
	if err != nil {
		return nil, err
	}

	return &CorpusStore{
		db:               db,
		stmtAddCorpus:    stmtAddCorpus,
		stmtGetCorpus:    stmtGetCorpus,
		stmtListCorpora:  stmtListCorpora,
		stmtRemoveCorpus: stmtRemoveCorpus,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases all prepared SQL statements held by the CorpusStore.
func (s *CorpusStore) Close() {
	_ = s.stmtAddCorpus.Close()
	_ = s.stmtGetCorpus.Close()
	_ = s.stmtListCorpora.Close()
	_ = s.stmtRemoveCorpus.Close()
}

// SetLogger sets the logger for the CorpusStore. By default, all logs are discarded.
func (s *CorpusStore) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Add reads the full corpus text from r and stores it under the given name.
// It returns an error if the name is already taken.
func (s *CorpusStore) Add(ctx context.Context, name string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read corpus '%s': %w", name, err)
	}

	if _, err = s.stmtAddCorpus.ExecContext(ctx, name, content); err != nil {
		return fmt.Errorf("could not store corpus '%s': %w", name, err)
	}

	s.logger.InfoContext(ctx, "Corpus stored",
		slog.String("corpus_name", name),
		slog.Int("size_bytes", len(content)),
	)

	return nil
}

// Get retrieves the text of a stored corpus by name.
func (s *CorpusStore) Get(ctx context.Context, name string) (string, error) {
	var content []byte
	err := s.stmtGetCorpus.QueryRowContext(ctx, name).Scan(&content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("corpus '%s' not found", name)
		}
		return "", fmt.Errorf("could not load corpus '%s': %w", name, err)
	}
	return string(content), nil
}

// List retrieves metadata for all stored corpora, ordered by name.
func (s *CorpusStore) List(ctx context.Context) ([]CorpusInfo, error) {
	rows, err := s.stmtListCorpora.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var corpora []CorpusInfo
	for rows.Next() {
		var info CorpusInfo
		if err = rows.Scan(&info.Id, &info.Name, &info.AddedAt, &info.Size); err != nil {
			return nil, err
		}
		corpora = append(corpora, info)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return corpora, nil
}

// Remove deletes a stored corpus by name. Removing a corpus that does not
// exist is an error.
func (s *CorpusStore) Remove(ctx context.Context, name string) error {
	res, err := s.stmtRemoveCorpus.ExecContext(ctx, name)
	if err != nil {
		return fmt.Errorf("could not remove corpus '%s': %w", name, err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("corpus '%s' not found", name)
	}

	s.logger.InfoContext(ctx, "Corpus removed",
		slog.String("corpus_name", name),
	)

	return nil
}
