package ai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kimdohyun-dev/actionlog/pkg/config"
)

func TestTranscribe_Success(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/audio/transcriptions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected authorization header %q", got)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("invalid multipart body: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Fatalf("unexpected model %q", got)
		}
		if got := r.FormValue("response_format"); got != "text" {
			t.Fatalf("unexpected response_format %q", got)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "standup.mp3" {
			t.Fatalf("unexpected filename %q", header.Filename)
		}
		body, _ := io.ReadAll(file)
		if string(body) != "fake-audio-bytes" {
			t.Fatalf("unexpected file content %q", body)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello from the meeting"))
	}))
	defer ts.Close()

	client := NewTranscriptionClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	text, err := client.Transcribe(context.Background(), []byte("fake-audio-bytes"), "standup.mp3")
	if err != nil {
		t.Fatalf("Transcribe error: %v", err)
	}
	if text != "hello from the meeting" {
		t.Fatalf("unexpected transcript %q", text)
	}
	if calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls)
	}
}

func TestTranscribe_EmptyInput_NoNetworkCall(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	client := NewTranscriptionClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.Transcribe(context.Background(), nil, "empty.mp3")
	if err == nil {
		t.Fatalf("expected error for empty input, got nil")
	}
	if calls != 0 {
		t.Fatalf("expected no upstream call for empty input, got %d", calls)
	}
}

func TestTranscribe_UpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer ts.Close()

	client := NewTranscriptionClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.Transcribe(context.Background(), []byte("audio"), "a.mp3")
	if err == nil {
		t.Fatalf("expected error for non-success response, got nil")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status in error, got %v", err)
	}
}
