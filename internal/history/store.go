// Package history persists analysis runs to a local SQLite archive so past
// results can be listed and re-inspected without re-running the tools.
package history

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"omnilint/internal/diag"
	"omnilint/internal/errors"
	"omnilint/internal/logging"
)

// Store is a SQLite-backed archive of analysis runs. Diagnostics are stored
// as a gzip-compressed JSON blob per run; the summary columns stay queryable.
type Store struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// Run is one archived analysis run.
type Run struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Path          string    `json:"path"`
	Language      string    `json:"language"`
	FilesAnalyzed int       `json:"files_analyzed"`
	Errors        int       `json:"errors"`
	Warnings      int       `json:"warnings"`
	Infos         int       `json:"infos"`
	Hints         int       `json:"hints"`
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             TEXT PRIMARY KEY,
	created_at     INTEGER NOT NULL,
	path           TEXT NOT NULL,
	language       TEXT NOT NULL,
	files_analyzed INTEGER NOT NULL,
	errors         INTEGER NOT NULL,
	warnings       INTEGER NOT NULL,
	infos          INTEGER NOT NULL,
	hints          INTEGER NOT NULL,
	diagnostics    BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
`

// Open opens or creates the archive database at dbPath, creating parent
// directories as needed. Failures carry the HistoryUnavailable error code.
func Open(dbPath string, logger *logging.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, errors.NewHistoryError("failed to create history directory", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewHistoryError("failed to open history database", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, errors.NewHistoryError("failed to set pragma", err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, errors.NewHistoryError("failed to initialize history schema", err)
	}

	logger.Debug("history archive opened", map[string]interface{}{"path": dbPath})
	return &Store{conn: conn, logger: logger, dbPath: dbPath}, nil
}

// Close closes the archive.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Save archives one analysis result and returns the new run's ID.
func (s *Store) Save(path string, result diag.Result) (string, error) {
	blob, err := compressDiagnostics(result.Diagnostics)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	_, err = s.conn.Exec(
		`INSERT INTO runs (id, created_at, path, language, files_analyzed,
			errors, warnings, infos, hints, diagnostics)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		time.Now().Unix(),
		path,
		result.Language,
		result.FilesAnalyzed,
		result.Summary[diag.SeverityError.String()],
		result.Summary[diag.SeverityWarning.String()],
		result.Summary[diag.SeverityInfo.String()],
		result.Summary[diag.SeverityHint.String()],
		blob,
	)
	if err != nil {
		return "", fmt.Errorf("failed to archive run: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.conn.Query(
		`SELECT id, created_at, path, language, files_analyzed,
			errors, warnings, infos, hints
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt int64
		if err := rows.Scan(&run.ID, &createdAt, &run.Path, &run.Language,
			&run.FilesAnalyzed, &run.Errors, &run.Warnings, &run.Infos, &run.Hints); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns one archived run with its diagnostics decompressed.
func (s *Store) Get(id string) (Run, []diag.Diagnostic, error) {
	var run Run
	var createdAt int64
	var blob []byte
	err := s.conn.QueryRow(
		`SELECT id, created_at, path, language, files_analyzed,
			errors, warnings, infos, hints, diagnostics
		 FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &createdAt, &run.Path, &run.Language, &run.FilesAnalyzed,
			&run.Errors, &run.Warnings, &run.Infos, &run.Hints, &blob)
	if err == sql.ErrNoRows {
		return Run{}, nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return Run{}, nil, fmt.Errorf("failed to load run: %w", err)
	}
	run.CreatedAt = time.Unix(createdAt, 0)

	diagnostics, err := decompressDiagnostics(blob)
	if err != nil {
		return Run{}, nil, err
	}
	return run, diagnostics, nil
}

func compressDiagnostics(diagnostics []diag.Diagnostic) ([]byte, error) {
	if diagnostics == nil {
		diagnostics = []diag.Diagnostic{}
	}
	encoded, err := json.Marshal(diagnostics)
	if err != nil {
		return nil, fmt.Errorf("failed to encode diagnostics: %w", err)
	}

	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	if _, err := writer.Write(encoded); err != nil {
		return nil, fmt.Errorf("failed to compress diagnostics: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress diagnostics: %w", err)
	}
	return buf.Bytes(), nil
}

func decompressDiagnostics(blob []byte) ([]diag.Diagnostic, error) {
	reader, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress diagnostics: %w", err)
	}
	defer reader.Close()

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress diagnostics: %w", err)
	}

	var diagnostics []diag.Diagnostic
	if err := json.Unmarshal(decoded, &diagnostics); err != nil {
		return nil, fmt.Errorf("failed to decode diagnostics: %w", err)
	}
	return diagnostics, nil
}
