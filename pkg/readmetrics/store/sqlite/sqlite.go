package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/readmetrics/pkg/readmetrics/analytics"
	"github.com/cognicore/readmetrics/pkg/readmetrics/internalerr"
	"github.com/cognicore/readmetrics/pkg/readmetrics/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	documents INTEGER NOT NULL DEFAULT 0,
	skipped INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS records (
	run_id TEXT NOT NULL,
	doc_id TEXT NOT NULL,
	url TEXT,
	positive_score INTEGER NOT NULL,
	negative_score INTEGER NOT NULL,
	polarity_score REAL NOT NULL,
	subjectivity_score REAL NOT NULL,
	avg_sentence_length REAL NOT NULL,
	percentage_of_complex_words REAL NOT NULL,
	fog_index REAL NOT NULL,
	avg_word_length REAL NOT NULL,
	complex_word_count INTEGER NOT NULL,
	word_count INTEGER NOT NULL,
	syllables_per_word REAL NOT NULL,
	personal_pronouns INTEGER NOT NULL,
	PRIMARY KEY(run_id, doc_id),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// CreateRun inserts a run row
func (s *sqliteStore) CreateRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("%w: run id required", internalerr.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, documents, skipped) VALUES (?, ?, ?, ?)`,
		r.ID, r.StartedAt.UTC().Format(time.RFC3339Nano), r.Documents, r.Skipped,
	)
	return err
}

// GetRun retrieves a run by ID
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, documents, skipped FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return r, err
}

// ListRuns returns runs newest first. ULIDs sort by creation time.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, documents, skipped FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (store.Run, error) {
	var r store.Run
	var started string
	if err := sc.Scan(&r.ID, &started, &r.Documents, &r.Skipped); err != nil {
		return store.Run{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse started_at %q: %w", started, err)
	}
	r.StartedAt = t
	return r, nil
}

// SaveRecords upserts records for a run in one transaction
func (s *sqliteStore) SaveRecords(ctx context.Context, runID string, rows []store.DocRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}
	if err != nil {
		return err
	}

	const q = `
INSERT INTO records (
	run_id, doc_id, url,
	positive_score, negative_score, polarity_score, subjectivity_score,
	avg_sentence_length, percentage_of_complex_words, fog_index, avg_word_length,
	complex_word_count, word_count, syllables_per_word, personal_pronouns
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(run_id, doc_id) DO UPDATE SET
	url=excluded.url,
	positive_score=excluded.positive_score,
	negative_score=excluded.negative_score,
	polarity_score=excluded.polarity_score,
	subjectivity_score=excluded.subjectivity_score,
	avg_sentence_length=excluded.avg_sentence_length,
	percentage_of_complex_words=excluded.percentage_of_complex_words,
	fog_index=excluded.fog_index,
	avg_word_length=excluded.avg_word_length,
	complex_word_count=excluded.complex_word_count,
	word_count=excluded.word_count,
	syllables_per_word=excluded.syllables_per_word,
	personal_pronouns=excluded.personal_pronouns;
`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		r := row.Record
		if _, err := stmt.ExecContext(ctx,
			runID, row.DocID, row.URL,
			r.PositiveScore, r.NegativeScore, r.PolarityScore, r.SubjectivityScore,
			r.AvgSentenceLength, r.PercentageComplexWords, r.FogIndex, r.AvgWordLength,
			r.ComplexWordCount, r.WordCount, r.SyllablesPerWord, r.PersonalPronouns,
		); err != nil {
			return fmt.Errorf("save record %s: %w", row.DocID, err)
		}
	}
	return tx.Commit()
}

const recordColumns = `doc_id, url,
	positive_score, negative_score, polarity_score, subjectivity_score,
	avg_sentence_length, percentage_of_complex_words, fog_index, avg_word_length,
	complex_word_count, word_count, syllables_per_word, personal_pronouns`

func scanRecord(sc scanner) (store.DocRecord, error) {
	var dr store.DocRecord
	var url sql.NullString
	r := &dr.Record
	err := sc.Scan(&dr.DocID, &url,
		&r.PositiveScore, &r.NegativeScore, &r.PolarityScore, &r.SubjectivityScore,
		&r.AvgSentenceLength, &r.PercentageComplexWords, &r.FogIndex, &r.AvgWordLength,
		&r.ComplexWordCount, &r.WordCount, &r.SyllablesPerWord, &r.PersonalPronouns,
	)
	dr.URL = url.String
	return dr, err
}

// GetRecord retrieves one document's record from a run
func (s *sqliteStore) GetRecord(ctx context.Context, runID, docID string) (analytics.Record, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM records WHERE run_id = ? AND doc_id = ?`, runID, docID)
	dr, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return analytics.Record{}, false, nil
	}
	if err != nil {
		return analytics.Record{}, false, err
	}
	return dr.Record, true, nil
}

// ListRecords returns a run's records in insertion order
func (s *sqliteStore) ListRecords(ctx context.Context, runID string) ([]store.DocRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM records WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.DocRecord
	for rows.Next() {
		dr, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, dr)
	}
	return out, rows.Err()
}
