package pg

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"speech2text/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcripts (
	id              SERIAL PRIMARY KEY,
	filename        TEXT NOT NULL,
	transcript_text TEXT NOT NULL,
	status          TEXT NOT NULL,
	sentiment       TEXT NOT NULL DEFAULT 'N/A',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresDAO stores transcripts in PostgreSQL.
type PostgresDAO struct {
	db *sql.DB
}

// New opens a connection pool for the given DSN and verifies it with a ping.
func New(dsn string) (*PostgresDAO, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres database: %w", err)
	}
	return &PostgresDAO{db: db}, nil
}

// NewWithDB wraps an existing connection, used by tests.
func NewWithDB(db *sql.DB) *PostgresDAO {
	return &PostgresDAO{db: db}
}

func (d *PostgresDAO) InitSchema(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create transcripts table: %w", err)
	}
	return nil
}

func (d *PostgresDAO) Insert(ctx context.Context, t *model.Transcript) error {
	const insertSQL = `
		INSERT INTO transcripts (filename, transcript_text, status, sentiment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := d.db.QueryRowContext(ctx, insertSQL,
		t.Filename, t.TranscriptText, t.Status, t.Sentiment, t.CreatedAt).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to insert transcript: %w", err)
	}
	return nil
}

func (d *PostgresDAO) ListAll(ctx context.Context) ([]model.Transcript, error) {
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

func (d *PostgresDAO) GetByID(ctx context.Context, id int64) (*model.Transcript, error) {
	const getSQL = `
		SELECT id, filename, transcript_text, status, sentiment, created_at
		FROM transcripts
		WHERE id = $1`
	var t model.Transcript
	err := d.db.QueryRowContext(ctx, getSQL, id).
		Scan(&t.ID, &t.Filename, &t.TranscriptText, &t.Status, &t.Sentiment, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (d *PostgresDAO) Close() error {
	return d.db.Close()
}
