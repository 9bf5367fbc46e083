package stt

import "context"

// Terminal statuses reported by transcription providers. Providers may
// report their own failure statuses (e.g. AssemblyAI reports "error");
// StatusFailed is the fallback when a provider returns none.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Request holds parameters for a transcription call.
type Request struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string
	// Language is the expected language of the audio (e.g. "en_us").
	Language string
}

// Result is the terminal outcome of a transcription call. A non-completed
// Status with an ErrorMessage is a provider-level failure, distinct from a
// transport error returned alongside a nil Result.
type Result struct {
	Text         string
	Status       string
	ErrorMessage string
}

// Completed reports whether the provider finished the transcription.
func (r *Result) Completed() bool {
	return r.Status == StatusCompleted
}

// Transcriber defines a transcription interface for converting audio files
// to text.
type Transcriber interface {
	// Name identifies the backend, used for metrics and logging.
	Name() string

	// Transcribe sends the audio file for transcription and blocks until
	// the provider returns a terminal result or an error.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
