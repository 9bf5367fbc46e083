package repository

import (
	"context"

	"speech2text/internal/app/model"
)

// TranscriptDAO is the persistence contract for transcript records. Rows
// are insert-only; there is no update or delete path.
type TranscriptDAO interface {
	// InitSchema creates the transcripts table if it does not exist.
	// Safe to call repeatedly.
	InitSchema(ctx context.Context) error

	// Insert stores a new record and assigns its ID.
	Insert(ctx context.Context, t *model.Transcript) error

	// ListAll returns every stored record in id order.
	ListAll(ctx context.Context) ([]model.Transcript, error)

	// GetByID returns the record with the given id, or sql.ErrNoRows.
	GetByID(ctx context.Context, id int64) (*model.Transcript, error)

	Close() error
}
