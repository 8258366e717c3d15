package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/electoscope/electoscope/internal/logger"
)

func answerResponse(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + jsonString(text) + `}]}}]}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *HTTPClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{WithEndpoint(server.URL), WithMaxRetries(2)}, opts...)
	return NewHTTPClient("test-key", logger.New(), opts...)
}

func TestAsk(t *testing.T) {
	var gotBody generateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, DefaultModel+":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing API key in query")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Write([]byte(answerResponse("BJP won 240 seats.")))
	})

	answer, err := client.Ask(context.Background(), "How many seats did BJP win?", nil, "KNOWLEDGE")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "BJP won 240 seats." {
		t.Errorf("unexpected answer: %q", answer)
	}

	// Knowledge context is prepended to the question turn
	if len(gotBody.Contents) != 1 {
		t.Fatalf("expected 1 content turn, got %d", len(gotBody.Contents))
	}
	text := gotBody.Contents[0].Parts[0].Text
	if !strings.HasPrefix(text, "KNOWLEDGE") || !strings.Contains(text, "QUESTION: How many seats did BJP win?") {
		t.Errorf("unexpected prompt: %q", text)
	}
}

func TestAsk_HistoryRolesPreserved(t *testing.T) {
	var gotBody generateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(answerResponse("ok")))
	})

	history := []Message{
		{Role: "user", Text: "Who won Varanasi?"},
		{Role: "model", Text: "Narendra Modi."},
	}
	if _, err := client.Ask(context.Background(), "By what margin?", history, ""); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	if len(gotBody.Contents) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(gotBody.Contents))
	}
	if gotBody.Contents[0].Role != "user" || gotBody.Contents[1].Role != "model" || gotBody.Contents[2].Role != "user" {
		t.Errorf("unexpected roles: %+v", gotBody.Contents)
	}
}

func TestAsk_RetriesTransientFailures(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(answerResponse("recovered")))
	})

	answer, err := client.Ask(context.Background(), "q", nil, "")
	if err != nil {
		t.Fatalf("Ask failed after retries: %v", err)
	}
	if answer != "recovered" || attempts != 3 {
		t.Errorf("expected recovery on attempt 3, got answer=%q attempts=%d", answer, attempts)
	}
}

func TestAsk_DoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"bad request"}}`))
	})

	if _, err := client.Ask(context.Background(), "q", nil, ""); err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("expected no retries on 4xx, got %d attempts", attempts)
	}
}

func TestAsk_NoAPIKey(t *testing.T) {
	client := NewHTTPClient("", logger.New())
	if _, err := client.Ask(context.Background(), "q", nil, ""); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestAsk_EmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	if _, err := client.Ask(context.Background(), "q", nil, ""); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestMockClient(t *testing.T) {
	mock := NewMock(WithAnswer("forty-two"))

	answer, err := mock.Ask(context.Background(), "the question", []Message{{Role: "user", Text: "hi"}}, "ctx")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "forty-two" {
		t.Errorf("unexpected answer: %q", answer)
	}
	if mock.LastQuestion() != "the question" || mock.LastContext() != "ctx" || mock.Calls() != 1 {
		t.Errorf("mock did not record call state")
	}
}
