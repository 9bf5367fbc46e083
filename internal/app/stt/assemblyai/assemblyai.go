package assemblyai

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"speech2text/internal/app/stt"
)

// Provider implements transcription against the AssemblyAI API.
type Provider struct {
	client *aai.Client
}

// New creates a Provider authenticated with the given API key.
func New(apiKey string) *Provider {
	return &Provider{client: aai.NewClient(apiKey)}
}

// Name implements stt.Transcriber.
func (p *Provider) Name() string {
	return "assemblyai"
}

// Transcribe uploads the audio file and blocks until AssemblyAI reports a
// terminal transcript status. Provider-side failures come back as a Result
// with the provider's status string; only transport/IO problems return an
// error.
func (p *Provider) Transcribe(ctx context.Context, req stt.Request) (*stt.Result, error) {
	f, err := os.Open(req.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	params := &aai.TranscriptOptionalParams{}
	if req.Language != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(req.Language)
	}

	transcript, err := p.client.Transcripts.TranscribeFromReader(ctx, f, params)
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription failed: %w", err)
	}

	result := &stt.Result{Status: string(transcript.Status)}
	if result.Status == "" {
		result.Status = stt.StatusFailed
	}

	if transcript.Status == aai.TranscriptStatusCompleted {
		result.Text = deref(transcript.Text)
	} else {
		result.ErrorMessage = deref(transcript.Error)
	}
	return result, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
