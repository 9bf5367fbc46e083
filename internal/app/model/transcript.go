package model

import "time"

// Transcript is the persisted outcome of one upload-and-transcribe attempt.
// A row is written whether or not the provider succeeded and is never
// updated afterwards.
type Transcript struct {
	ID             int64
	Filename       string
	TranscriptText string
	Status         string
	Sentiment      string
	CreatedAt      time.Time
}
