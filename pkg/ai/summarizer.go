package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kimdohyun-dev/actionlog/errors"
	"github.com/kimdohyun-dev/actionlog/pkg/config"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultTimeout = 60 * time.Second

	// ParseFailedMarker is placed in the summary field when the model returned
	// content that is not the requested JSON object. Callers must treat such a
	// result as successful but low quality, not as a failure.
	ParseFailedMarker = "parse failed"
)

const systemPrompt = "You are an AI assistant that professionally summarizes meeting transcripts. " +
	"Analyze the given text and clearly separate it into three parts: a core summary, key decisions, and action items per owner. " +
	"Respond only with a JSON object in exactly the following shape and nothing else.\n" +
	"{\n" +
	"  \"summary\": \"core summary of the meeting...\",\n" +
	"  \"decisions\": \"key decisions made...\",\n" +
	"  \"actionItems\": \"action items per owner...\"\n" +
	"}"

// SummaryResult is the structured output of one summarization call
type SummaryResult struct {
	Summary     string `json:"summary"`
	Decisions   string `json:"decisions"`
	ActionItems string `json:"actionItems"`

	// Provenance, not part of the model's JSON
	Model string          `json:"-"`
	Usage json.RawMessage `json:"-"`
}

// ChatClient is a minimal client for the chat-completion endpoint
// of an OpenAI-compatible provider.
type ChatClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewChatClient creates a chat-completion client using the provided config.
// Pass a nil config to fall back to environment variables.
func NewChatClient(cfg *config.OpenAIConfig) *ChatClient {
	var apiKey, base, model string
	var timeout = defaultTimeout
	if cfg != nil {
		apiKey = cfg.APIKey
		base = cfg.BaseURL
		model = cfg.ChatModel
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
		model = "gpt-3.5-turbo-1106"
	}

	return &ChatClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// chatRequest is the shape for chat completion requests
type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is a minimal response shape
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage json.RawMessage `json:"usage"`
}

// Summarize sends the transcript to the chat-completion endpoint and parses the
// returned message content into the three-field result. A content that is not
// valid JSON degrades to a marked placeholder result instead of an error.
func (c *ChatClient) Summarize(ctx context.Context, transcript string) (*SummaryResult, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: transcript},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.ErrUpstream("summarization", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errors.ErrUpstream("summarization",
			fmt.Errorf("chat endpoint returned status %d", resp.StatusCode))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, errors.ErrUpstream("summarization", err)
	}
	if len(cr.Choices) == 0 {
		return nil, errors.ErrUpstream("summarization", fmt.Errorf("empty choices in response"))
	}

	content := cr.Choices[0].Message.Content

	var result SummaryResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		// Degrade instead of failing: keep the raw content so nothing is lost.
		result = SummaryResult{
			Summary:   ParseFailedMarker,
			Decisions: content,
		}
	}
	result.Model = cr.Model
	result.Usage = cr.Usage

	return &result, nil
}
