package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"speech2text/internal/api/errors"
	"speech2text/internal/api/v1/dto"
	"speech2text/internal/app/model"
	"speech2text/internal/app/repository"
	"speech2text/internal/app/sentiment"
	"speech2text/internal/app/stt"
)

const fallbackErrorText = "Transcription failed"

// TranscriptServiceImpl implements TranscriptService.
type TranscriptServiceImpl struct {
	dao             repository.TranscriptDAO
	transcriber     stt.Transcriber
	classifier      sentiment.Classifier
	tempDir         string
	defaultLanguage string
	logger          *slog.Logger
}

// NewTranscriptService creates a new transcript service. tempDir is the
// scratch directory for uploads in flight; defaultLanguage is used when the
// caller supplies none.
func NewTranscriptService(
	dao repository.TranscriptDAO,
	transcriber stt.Transcriber,
	classifier sentiment.Classifier,
	tempDir string,
	defaultLanguage string,
	logger *slog.Logger,
) *TranscriptServiceImpl {
	return &TranscriptServiceImpl{
		dao:             dao,
		transcriber:     transcriber,
		classifier:      classifier,
		tempDir:         tempDir,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// Transcribe writes the upload to a temp file, runs the provider call, and
// persists exactly one record whether or not the provider succeeded. The
// temp path is derived from the original filename with no uniqueness
// suffix, so concurrent uploads of identically named files race on it.
func (s *TranscriptServiceImpl) Transcribe(ctx context.Context, filename, language string, audio io.Reader) (*dto.TranscribeResponse, error) {
	if language == "" {
		language = s.defaultLanguage
	}

	tempPath := filepath.Join(s.tempDir, "temp_"+filepath.Base(filename))
	// The temp file must not outlive the request regardless of exit path.
	defer os.Remove(tempPath)
	if err := writeTempFile(tempPath, audio); err != nil {
		return nil, errors.NewInternalError("An internal server error occurred: " + err.Error())
	}

	start := time.Now()
	result, err := s.transcriber.Transcribe(ctx, stt.Request{
		AudioPath: tempPath,
		Language:  language,
	})
	os.Remove(tempPath)
	if err != nil {
		stt.ObserveRequest(s.transcriber.Name(), "error", time.Since(start))
		s.logger.Error("transcription call failed",
			"provider", s.transcriber.Name(),
			"filename", filename,
			"error", err,
		)
		return nil, errors.NewInternalError("An internal server error occurred: " + err.Error())
	}
	stt.ObserveRequest(s.transcriber.Name(), result.Status, time.Since(start))

	text, status, label := classifyResult(result, s.classifier)

	record := &model.Transcript{
		Filename:       filename,
		TranscriptText: text,
		Status:         status,
		Sentiment:      label,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.dao.Insert(ctx, record); err != nil {
		return nil, errors.NewInternalError("An internal server error occurred: " + err.Error())
	}

	s.logger.Info("transcript saved",
		"transcript_id", record.ID,
		"filename", filename,
		"status", status,
		"sentiment", label,
	)

	// The failed attempt is durably recorded above, and still surfaced to
	// the caller as an error.
	if status != stt.StatusCompleted {
		return nil, errors.NewInternalError("Transcription failed: " + text)
	}

	return &dto.TranscribeResponse{
		Text:         text,
		Status:       status,
		TranscriptID: record.ID,
		Sentiment:    label,
	}, nil
}

// ListTranscripts implements TranscriptService.
func (s *TranscriptServiceImpl) ListTranscripts(ctx context.Context) ([]dto.TranscriptResponse, error) {
	transcripts, err := s.dao.ListAll(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list transcripts")
	}

	responses := make([]dto.TranscriptResponse, len(transcripts))
	for i := range transcripts {
		responses[i] = dto.ToTranscriptResponse(&transcripts[i])
	}
	return responses, nil
}

// GetTranscript implements TranscriptService.
func (s *TranscriptServiceImpl) GetTranscript(ctx context.Context, id int64) (*dto.TranscriptResponse, error) {
	transcript, err := s.dao.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("Transcript")
		}
		return nil, errors.NewInternalError("Failed to retrieve transcript")
	}

	resp := dto.ToTranscriptResponse(transcript)
	return &resp, nil
}

func writeTempFile(path string, audio io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, audio); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// classifyResult derives the persisted text, status and sentiment label
// from a terminal provider result. Sentiment is only computed for completed
// transcriptions; every other status is forced to N/A.
func classifyResult(result *stt.Result, classifier sentiment.Classifier) (text, status, label string) {
	if result.Completed() {
		return result.Text, stt.StatusCompleted, classifier.Classify(result.Text)
	}

	text = result.ErrorMessage
	if text == "" {
		text = fallbackErrorText
	}
	status = result.Status
	if status == "" {
		status = stt.StatusFailed
	}
	return text, status, sentiment.LabelNA
}
