package dto

import (
	"time"

	"speech2text/internal/app/model"
)

// TranscribeForm carries the optional non-file fields of the upload form.
type TranscribeForm struct {
	Language string `form:"language" binding:"omitempty,oneof=en_us en es fr de it pt nl hi ja zh"`
}

// TranscribeResponse is returned by POST /transcribe/ on success.
type TranscribeResponse struct {
	Text         string `json:"text"`
	Status       string `json:"status"`
	TranscriptID int64  `json:"transcript_id"`
	Sentiment    string `json:"sentiment"`
}

// TranscriptResponse mirrors one persisted transcript record.
type TranscriptResponse struct {
	ID             int64     `json:"id"`
	Filename       string    `json:"filename"`
	TranscriptText string    `json:"transcript_text"`
	Status         string    `json:"status"`
	Sentiment      string    `json:"sentiment"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToTranscriptResponse converts a model record to its API representation.
func ToTranscriptResponse(t *model.Transcript) TranscriptResponse {
	return TranscriptResponse{
		ID:             t.ID,
		Filename:       t.Filename,
		TranscriptText: t.TranscriptText,
		Status:         t.Status,
		Sentiment:      t.Sentiment,
		CreatedAt:      t.CreatedAt,
	}
}
