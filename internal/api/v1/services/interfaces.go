package services

import (
	"context"
	"io"

	"speech2text/internal/api/v1/dto"
)

// TranscriptService drives the transcription request lifecycle and the read
// accessors over persisted transcripts.
type TranscriptService interface {
	// Transcribe runs the full upload-to-persisted-record lifecycle for one
	// audio stream and returns the response for a completed transcription.
	// A provider-side failure is persisted first and then returned as an
	// error.
	Transcribe(ctx context.Context, filename, language string, audio io.Reader) (*dto.TranscribeResponse, error)

	// ListTranscripts returns every persisted record.
	ListTranscripts(ctx context.Context) ([]dto.TranscriptResponse, error)

	// GetTranscript returns one record by id.
	GetTranscript(ctx context.Context, id int64) (*dto.TranscriptResponse, error)
}
