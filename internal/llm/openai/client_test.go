package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-tailor/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.apiURL = server.URL
	return client, server
}

func chatReply(content string) string {
	body := map[string]any{
		"id":    "chatcmpl-1",
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
		"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
	}
	raw, _ := json.Marshal(body)
	return string(raw)
}

func TestImprove_Success(t *testing.T) {
	var gotReq chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q", auth)
		}
		w.Write([]byte(chatReply(`{"improvedResume":"# Ada","coverLetter":"Dear"}`)))
	})

	result, err := client.Improve(context.Background(), llm.ImproveInput{
		ResumeText:     "Managed a team of 5",
		JobDescription: "Seeking a team lead",
	})
	if err != nil {
		t.Fatalf("Improve: %v", err)
	}
	if result.ImprovedResume != "# Ada" || result.CoverLetter != "Dear" {
		t.Fatalf("unexpected result: %+v", result)
	}

	if gotReq.ResponseFormat.Type != "json_object" {
		t.Fatalf("response_format = %q", gotReq.ResponseFormat.Type)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[1].Content, "Managed a team of 5") ||
		!strings.Contains(gotReq.Messages[1].Content, "Seeking a team lead") {
		t.Fatalf("payload missing inputs: %q", gotReq.Messages[1].Content)
	}
}

func TestImprove_ProviderError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit_error"}}`))
	})

	_, err := client.Improve(context.Background(), llm.ImproveInput{ResumeText: "r", JobDescription: "j"})
	if !errors.Is(err, llm.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
}

func TestImprove_NonJSONContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply("here you go: better resume")))
	})

	_, err := client.Improve(context.Background(), llm.ImproveInput{ResumeText: "r", JobDescription: "j"})
	if !errors.Is(err, llm.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestImprove_MissingField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(`{"improvedResume":"# Ada"}`)))
	})

	_, err := client.Improve(context.Background(), llm.ImproveInput{ResumeText: "r", JobDescription: "j"})
	if !errors.Is(err, llm.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestImprove_TransportFailure(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.Improve(context.Background(), llm.ImproveInput{ResumeText: "r", JobDescription: "j"})
	if !errors.Is(err, llm.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini"); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("key", ""); err == nil {
		t.Fatal("expected error for missing model")
	}
}
