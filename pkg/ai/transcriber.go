package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/kimdohyun-dev/actionlog/errors"
	"github.com/kimdohyun-dev/actionlog/pkg/config"
)

// TranscriptionClient is a minimal client for the speech-to-text endpoint
// of an OpenAI-compatible provider.
type TranscriptionClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewTranscriptionClient creates a transcription client using the provided config.
// Pass a nil config to fall back to environment variables.
func NewTranscriptionClient(cfg *config.OpenAIConfig) *TranscriptionClient {
	var apiKey, base, model string
	var timeout = defaultTimeout
	if cfg != nil {
		apiKey = cfg.APIKey
		base = cfg.BaseURL
		model = cfg.WhisperModel
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if base == "" {
		base = defaultBaseURL
	}
	if model == "" {
		model = "whisper-1"
	}

	return &TranscriptionClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// Transcribe sends the raw audio bytes to the transcription endpoint and
// returns the transcript verbatim. Empty input fails before any network call.
func (c *TranscriptionClient) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", errors.ErrEmptyUpload()
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("failed to write audio part: %w", err)
	}
	if err := mw.WriteField("model", c.model); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}
	// plain text response, no JSON envelope to unwrap
	if err := mw.WriteField("response_format", "text"); err != nil {
		return "", fmt.Errorf("failed to write response_format field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	endpoint := c.baseURL + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.ErrUpstream("transcription", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.ErrUpstream("transcription", err)
	}
	if resp.StatusCode >= 400 {
		return "", errors.ErrUpstream("transcription",
			fmt.Errorf("transcription endpoint returned status %d", resp.StatusCode))
	}

	return string(raw), nil
}
