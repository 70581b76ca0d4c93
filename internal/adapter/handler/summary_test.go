package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kimdohyun-dev/actionlog/errors"
)

// The unauthenticated and upload-validation paths return before the service is
// touched, so these tests run the handler without one.
func newSummaryHandler() *SummaryHandler {
	return NewSummaryHandler(nil, zap.NewNop())
}

func multipartBody(t *testing.T, title string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if title != "" {
		require.NoError(t, w.WriteField("title", title))
	}
	fw, err := w.CreateFormFile("file", "rec.mp3")
	require.NoError(t, err)
	_, err = fw.Write(fileContent)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func summaryContext(t *testing.T, principal string, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != "" {
		c.Set("principal", principal)
	}
	return c, rec
}

func TestSummarizeHandler_Unauthenticated(t *testing.T) {
	h := newSummaryHandler()

	body, contentType := multipartBody(t, "standup", []byte("audio"))
	c, rec := summaryContext(t, "", body, contentType)

	require.NoError(t, h.Summarize(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSummarizeHandler_EmptyFile(t *testing.T) {
	h := newSummaryHandler()

	body, contentType := multipartBody(t, "standup", nil)
	c, rec := summaryContext(t, "alice", body, contentType)

	require.NoError(t, h.Summarize(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, errors.ErrorCode_EMPTY_UPLOAD, resp["code"])
}

func TestSummarizeHandler_MissingTitle(t *testing.T) {
	h := newSummaryHandler()

	body, contentType := multipartBody(t, "", []byte("audio"))
	c, rec := summaryContext(t, "alice", body, contentType)

	require.NoError(t, h.Summarize(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryHandler_Unauthenticated(t *testing.T) {
	h := newSummaryHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/summaries/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.History(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	h := newSummaryHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/summaries/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	c.Set("principal", "alice")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
