package whisper

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"

	"speech2text/internal/app/stt"
)

// Provider implements remote transcription using the OpenAI Whisper API.
type Provider struct {
	client *openai.Client
}

// New creates a Provider authenticated with the given API key.
func New(apiKey string) *Provider {
	return &Provider{client: openai.NewClient(apiKey)}
}

// Name implements stt.Transcriber.
func (p *Provider) Name() string {
	return "openai/whisper"
}

// Transcribe uses the OpenAI API for remote transcription. Whisper has no
// asynchronous status model, so an API error is reported as a failed Result
// rather than a transport error: the attempt reached the provider and its
// refusal is the terminal outcome to record.
func (p *Provider) Transcribe(ctx context.Context, req stt.Request) (*stt.Result, error) {
	audioReq := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: req.AudioPath,
		Language: shortCode(req.Language),
	}

	resp, err := p.client.CreateTranscription(ctx, audioReq)
	if err != nil {
		return &stt.Result{
			Status:       stt.StatusFailed,
			ErrorMessage: err.Error(),
		}, nil
	}

	return &stt.Result{
		Status: stt.StatusCompleted,
		Text:   resp.Text,
	}, nil
}

// shortCode reduces a locale-style code like "en_us" to the ISO-639-1 form
// Whisper expects.
func shortCode(language string) string {
	if i := strings.IndexByte(language, '_'); i > 0 {
		return language[:i]
	}
	return language
}
