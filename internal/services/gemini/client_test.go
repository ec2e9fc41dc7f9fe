package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func respondWithText(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	payload := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestDescribeImageRequestShape(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G'}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/gemini-2.5-flash:generateContent" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Fatalf("unexpected api key header %q", got)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		var req generateContentRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 2 {
			t.Fatalf("expected one content with two parts, got %+v", req.Contents)
		}
		data := req.Contents[0].Parts[0].InlineData
		if data == nil || data.MimeType != "image/png" {
			t.Fatalf("expected inline image part first, got %+v", req.Contents[0].Parts[0])
		}
		if data.Data != base64.StdEncoding.EncodeToString(image) {
			t.Fatal("image bytes not base64-encoded as expected")
		}
		if !strings.Contains(req.Contents[0].Parts[1].Text, "kitchen") {
			t.Fatalf("expected prompt text part, got %q", req.Contents[0].Parts[1].Text)
		}
		if req.GenerationConfig == nil || req.GenerationConfig.ThinkingConfig == nil {
			t.Fatal("expected thinking config present")
		}
		if req.GenerationConfig.ThinkingConfig.ThinkingBudget != 0 {
			t.Fatalf("expected thinking budget 0, got %d", req.GenerationConfig.ThinkingConfig.ThinkingBudget)
		}
		respondWithText(t, w, `[{"name":"pot","description":"a pot","x":0.3,"y":0.7}]`)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	text, err := client.DescribeImage(context.Background(), image, "image/png", "map the kitchen please")
	if err != nil {
		t.Fatalf("DescribeImage returned error: %v", err)
	}
	if !strings.HasPrefix(text, "[{") {
		t.Fatalf("unexpected response text %q", text)
	}
}

func TestDescribeImageJoinsParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{
							map[string]any{"text": "[{\"name\":\"pot\","},
							map[string]any{"text": "\"description\":\"d\",\"x\":0,\"y\":0}]"},
						},
					},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL})
	text, err := client.DescribeImage(context.Background(), []byte{1}, "", "prompt")
	if err != nil {
		t.Fatalf("DescribeImage returned error: %v", err)
	}
	if text != `[{"name":"pot","description":"d","x":0,"y":0}]` {
		t.Fatalf("parts not concatenated, got %q", text)
	}
}

func TestDescribeImageHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "API key not valid"}})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "bad", BaseURL: server.URL})
	_, err := client.DescribeImage(context.Background(), []byte{1}, "image/png", "prompt")
	if err == nil {
		t.Fatal("expected error for http 403")
	}
	if !strings.Contains(err.Error(), "http 403") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestDescribeImageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL})
	_, err := client.DescribeImage(context.Background(), []byte{1}, "image/png", "prompt")
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestDescribeImageEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL})
	if _, err := client.DescribeImage(context.Background(), []byte{1}, "image/png", "prompt"); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestDescribeImageRequiresKey(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.DescribeImage(context.Background(), []byte{1}, "image/png", "prompt"); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
