package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"speech2text/internal/api/errors"
	"speech2text/internal/api/v1/dto"
	"speech2text/internal/api/v1/handlers"
)

// MockTranscriptService mocks services.TranscriptService.
type MockTranscriptService struct {
	mock.Mock
}

func (m *MockTranscriptService) Transcribe(ctx context.Context, filename, language string, audio io.Reader) (*dto.TranscribeResponse, error) {
	args := m.Called(ctx, filename, language, audio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscribeResponse), args.Error(1)
}

func (m *MockTranscriptService) ListTranscripts(ctx context.Context) ([]dto.TranscriptResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TranscriptResponse), args.Error(1)
}

func (m *MockTranscriptService) GetTranscript(ctx context.Context, id int64) (*dto.TranscriptResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptResponse), args.Error(1)
}

func setupTestRouter(t *testing.T) (*gin.Engine, *MockTranscriptService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	service := &MockTranscriptService{}

	handler := handlers.NewTranscriptHandler(service)
	router.POST("/transcribe/", handler.Transcribe)
	router.GET("/transcripts/", handler.List)
	router.GET("/transcripts/:id", handler.Get)

	return router, service
}

func multipartBody(t *testing.T, fieldName, filename string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if fieldName != "" {
		part, err := writer.CreateFormFile(fieldName, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake audio bytes"))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestTranscriptHandler_Transcribe(t *testing.T) {
	tests := []struct {
		name           string
		fileField      string
		filename       string
		formFields     map[string]string
		setupMock      func(*MockTranscriptService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:      "successful transcription",
			fileField: "file",
			filename:  "review.mp3",
			setupMock: func(ms *MockTranscriptService) {
				ms.On("Transcribe", mock.Anything, "review.mp3", "", mock.Anything).
					Return(&dto.TranscribeResponse{
						Text:         "I love this product",
						Status:       "completed",
						TranscriptID: 7,
						Sentiment:    "Positive",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "I love this product", body["text"])
				assert.Equal(t, "completed", body["status"])
				assert.Equal(t, float64(7), body["transcript_id"])
				assert.Equal(t, "Positive", body["sentiment"])
			},
		},
		{
			name:      "legacy audio_file field name",
			fileField: "audio_file",
			filename:  "legacy.wav",
			setupMock: func(ms *MockTranscriptService) {
				ms.On("Transcribe", mock.Anything, "legacy.wav", "", mock.Anything).
					Return(&dto.TranscribeResponse{
						Text:         "ok",
						Status:       "completed",
						TranscriptID: 1,
						Sentiment:    "Neutral",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "completed", body["status"])
			},
		},
		{
			name:      "language form field forwarded",
			fileField: "file",
			filename:  "fr.mp3",
			formFields: map[string]string{
				"language": "fr",
			},
			setupMock: func(ms *MockTranscriptService) {
				ms.On("Transcribe", mock.Anything, "fr.mp3", "fr", mock.Anything).
					Return(&dto.TranscribeResponse{
						Text:         "bonjour",
						Status:       "completed",
						TranscriptID: 2,
						Sentiment:    "Neutral",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "bonjour", body["text"])
			},
		},
		{
			name:      "unknown language rejected",
			fileField: "file",
			filename:  "x.mp3",
			formFields: map[string]string{
				"language": "tlh",
			},
			setupMock:      func(ms *MockTranscriptService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
			},
		},
		{
			name:           "missing file",
			fileField:      "",
			setupMock:      func(ms *MockTranscriptService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "bad_request", body["kind"])
			},
		},
		{
			name:      "transcription failure surfaces as internal error",
			fileField: "file",
			filename:  "bad.mp3",
			setupMock: func(ms *MockTranscriptService) {
				ms.On("Transcribe", mock.Anything, "bad.mp3", "", mock.Anything).
					Return(nil, errors.NewInternalError("Transcription failed: audio file too short"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "internal", body["kind"])
				assert.Contains(t, body["message"], "audio file too short")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := setupTestRouter(t)
			tt.setupMock(service)

			body, contentType := multipartBody(t, tt.fileField, tt.filename, tt.formFields)
			req := httptest.NewRequest("POST", "/transcribe/", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &responseBody))
			tt.validateBody(t, responseBody)

			service.AssertExpectations(t)
		})
	}
}

func TestTranscriptHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		transcriptID   string
		setupMock      func(*MockTranscriptService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:         "successful get",
			transcriptID: "123",
			setupMock: func(ms *MockTranscriptService) {
				ms.On("GetTranscript", mock.Anything, int64(123)).
					Return(&dto.TranscriptResponse{
						ID:             123,
						Filename:       "review.mp3",
						TranscriptText: "Hello world",
						Status:         "completed",
						Sentiment:      "Neutral",
						CreatedAt:      time.Now(),
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, float64(123), body["id"])
				assert.Equal(t, "Hello world", body["transcript_text"])
				assert.Equal(t, "completed", body["status"])
			},
		},
		{
			name:         "not found",
			transcriptID: "999",
			setupMock: func(ms *MockTranscriptService) {
				ms.On("GetTranscript", mock.Anything, int64(999)).
					Return(nil, errors.NewNotFoundError("Transcript"))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "not_found", body["kind"])
			},
		},
		{
			name:           "invalid ID",
			transcriptID:   "abc",
			setupMock:      func(ms *MockTranscriptService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "bad_request", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := setupTestRouter(t)
			tt.setupMock(service)

			req := httptest.NewRequest("GET", "/transcripts/"+tt.transcriptID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &responseBody))
			tt.validateBody(t, responseBody)
		})
	}
}

func TestTranscriptHandler_List(t *testing.T) {
	router, service := setupTestRouter(t)
	service.On("ListTranscripts", mock.Anything).
		Return([]dto.TranscriptResponse{
			{ID: 1, Filename: "a.mp3", Status: "completed", Sentiment: "Positive"},
			{ID: 2, Filename: "b.mp3", Status: "error", Sentiment: "N/A"},
		}, nil)

	req := httptest.NewRequest("GET", "/transcripts/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var responseBody []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &responseBody))
	require.Len(t, responseBody, 2)
	assert.Equal(t, float64(1), responseBody[0]["id"])
	assert.Equal(t, "N/A", responseBody[1]["sentiment"])
}

func TestTranscriptHandler_List_Empty(t *testing.T) {
	router, service := setupTestRouter(t)
	service.On("ListTranscripts", mock.Anything).
		Return([]dto.TranscriptResponse{}, nil)

	req := httptest.NewRequest("GET", "/transcripts/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
