package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"speech2text/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcripts (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	filename        TEXT NOT NULL,
	transcript_text TEXT NOT NULL,
	status          TEXT NOT NULL,
	sentiment       TEXT NOT NULL DEFAULT 'N/A',
	created_at      TIMESTAMP NOT NULL
)`

// SQLiteDAO stores transcripts in a local SQLite database file.
type SQLiteDAO struct {
	db *sql.DB
}

// New opens (and creates if absent) the database file behind the given DSN.
// Both plain file paths and sqlite:// DSNs are accepted.
func New(dsn string) (*SQLiteDAO, error) {
	path := strings.TrimPrefix(dsn, "sqlite://")
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return &SQLiteDAO{db: db}, nil
}

func (d *SQLiteDAO) InitSchema(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create transcripts table: %w", err)
	}
	return nil
}

func (d *SQLiteDAO) Insert(ctx context.Context, t *model.Transcript) error {
	const insertSQL = `
		INSERT INTO transcripts (filename, transcript_text, status, sentiment, created_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := d.db.ExecContext(ctx, insertSQL,
		t.Filename, t.TranscriptText, t.Status, t.Sentiment, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transcript: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	t.ID = id
	return nil
}

func (d *SQLiteDAO) ListAll(ctx context.Context) ([]model.Transcript, error) {
	const listSQL = `
		SELECT id, filename, transcript_text, status, sentiment, created_at
		FROM transcripts
		ORDER BY id`
	rows, err := d.db.QueryContext(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	transcripts := make([]model.Transcript, 0)
	for rows.Next() {
		var t model.Transcript
		if err := rows.Scan(&t.ID, &t.Filename, &t.TranscriptText, &t.Status, &t.Sentiment, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		transcripts = append(transcripts, t)
	}
	return transcripts, rows.Err()
}

func (d *SQLiteDAO) GetByID(ctx context.Context, id int64) (*model.Transcript, error) {
	const getSQL = `
		SELECT id, filename, transcript_text, status, sentiment, created_at
		FROM transcripts
		WHERE id = ?`
	var t model.Transcript
	err := d.db.QueryRowContext(ctx, getSQL, id).
		Scan(&t.ID, &t.Filename, &t.TranscriptText, &t.Status, &t.Sentiment, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (d *SQLiteDAO) Close() error {
	return d.db.Close()
}
