package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kimdohyun-dev/actionlog/errors"
	"github.com/kimdohyun-dev/actionlog/internal/adapter/dto"
	httpmw "github.com/kimdohyun-dev/actionlog/internal/infrastructure/http/middleware"
	"github.com/kimdohyun-dev/actionlog/internal/usecase/summary"
)

// SummaryHandler handles the summarize pipeline and history endpoints
type SummaryHandler struct {
	svc    *summary.Service
	logger *zap.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(svc *summary.Service, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{svc: svc, logger: logger}
}

// Summarize uploads an audio file and returns the structured summary
// @Summary      Summarize audio (auth required)
// @Description  Transcribes the uploaded audio, extracts summary/decisions/action items and stores the result in the user's history
// @Tags         Summary
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file   formData  file    true  "Audio file to summarize"
// @Param        title  formData  string  true  "Title for the stored summary"
// @Success      200    {object}  dto.SummarizeResponse
// @Failure      400    {object}  map[string]interface{}  "Empty file or missing title"
// @Failure      401    {object}  map[string]interface{}  "Not authenticated"
// @Failure      500    {object}  map[string]interface{}  "Upstream or processing failure"
// @Router       /api/summarize [post]
func (h *SummaryHandler) Summarize(c echo.Context) error {
	principal, ok := httpmw.PrincipalFrom(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	title := c.FormValue("title")
	if title == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("title is required"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("file is required"))
	}
	if fileHeader.Size == 0 {
		return HandleError(h.logger, c, errors.ErrEmptyUpload())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	if len(audio) == 0 {
		return HandleError(h.logger, c, errors.ErrEmptyUpload())
	}

	result, err := h.svc.SummarizeAndStore(c.Request().Context(), principal, title, fileHeader.Filename, audio)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSummarizeResponse(result))
}

// History returns the authenticated user's summaries, newest first
// @Summary      My summary history (auth required)
// @Description  Lists all summaries owned by the authenticated user in descending creation order
// @Tags         Summary
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.HistoryItem
// @Failure      401  {object}  map[string]interface{}  "Not authenticated"
// @Router       /api/summaries/me [get]
func (h *SummaryHandler) History(c echo.Context) error {
	principal, ok := httpmw.PrincipalFrom(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	summaries, err := h.svc.ListHistory(c.Request().Context(), principal)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, dto.NewHistoryItems(summaries))
}

// Delete removes one summary owned by the authenticated user
// @Summary      Delete a summary (auth required)
// @Description  Deletes the summary with the given id if it belongs to the authenticated user
// @Tags         Summary
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Summary id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]interface{}  "Summary belongs to another user"
// @Failure      404  {object}  map[string]interface{}  "Summary not found"
// @Router       /api/summaries/{id} [delete]
func (h *SummaryHandler) Delete(c echo.Context) error {
	principal, ok := httpmw.PrincipalFrom(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	summaryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid summary id"))
	}

	if err := h.svc.Delete(c.Request().Context(), principal, summaryID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "summary deleted",
	})
}
