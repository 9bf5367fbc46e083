package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"speech2text/internal/api/errors"
	"speech2text/internal/api/middleware"
	"speech2text/internal/api/v1/dto"
	"speech2text/internal/api/v1/services"
)

// TranscriptHandler handles transcript-related API endpoints
type TranscriptHandler struct {
	service services.TranscriptService
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(service services.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{
		service: service,
	}
}

// Transcribe handles POST /transcribe/
//
// @Summary Transcribe an uploaded audio file
// @Description Uploads an audio file, transcribes it and persists the transcript with a sentiment label
// @Tags transcripts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to transcribe"
// @Param language formData string false "Language code" default(en_us)
// @Success 200 {object} dto.TranscribeResponse "Transcription completed"
// @Failure 400 {object} errors.APIError "Bad request - no file uploaded"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Transcription failure or internal error"
// @Router /transcribe/ [post]
func (h *TranscriptHandler) Transcribe(c *gin.Context) {
	var form dto.TranscribeForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		// The original frontend posts the field as audio_file.
		file, header, err = c.Request.FormFile("audio_file")
	}
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No audio file uploaded"))
		return
	}
	defer file.Close()

	response, err := h.service.Transcribe(c.Request.Context(), header.Filename, form.Language, file)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /transcripts/
//
// @Summary List all transcripts
// @Description Retrieves every persisted transcript record
// @Tags transcripts
// @Produce json
// @Success 200 {array} dto.TranscriptResponse "List of transcripts"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcripts/ [get]
func (h *TranscriptHandler) List(c *gin.Context) {
	response, err := h.service.ListTranscripts(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /transcripts/:id
//
// @Summary Get transcript by ID
// @Description Retrieves a single persisted transcript record
// @Tags transcripts
// @Produce json
// @Param id path int true "Transcript ID" format(int64) minimum(1)
// @Success 200 {object} dto.TranscriptResponse "Transcript details"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Failure 404 {object} errors.APIError "Transcript not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcripts/{id} [get]
func (h *TranscriptHandler) Get(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid transcript ID"))
		return
	}

	response, err := h.service.GetTranscript(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
