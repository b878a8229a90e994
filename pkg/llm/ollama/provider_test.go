package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-study-notebook-be/internal/pkg/apperror"
	"ai-study-notebook-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSuccess(t *testing.T) {
	var gotReq ollamaGenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{"model":"llama3","response":"  the answer  ","done":true}`))
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3")
	got, err := provider.Generate(context.Background(), "explain X")

	require.NoError(t, err)
	assert.Equal(t, "the answer", got, "surrounding whitespace should be trimmed")
	assert.Equal(t, "llama3", gotReq.Model)
	assert.Equal(t, "explain X", gotReq.Prompt)
	assert.False(t, gotReq.Stream)
}

func TestGenerateBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3")
	_, err := provider.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Equal(t, apperror.KindBackendError, apperror.KindOf(err))
}

func TestGenerateBackendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections from now on

	provider := NewOllamaProvider(server.URL, "llama3")
	_, err := provider.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Equal(t, apperror.KindBackendUnavailable, apperror.KindOf(err))
}

func TestGenerateBackendTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"response":"too late"}`))
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3")
	provider.Client.Timeout = 50 * time.Millisecond

	_, err := provider.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Equal(t, apperror.KindBackendUnavailable, apperror.KindOf(err))
}

func TestGenerateMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3")
	_, err := provider.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Equal(t, apperror.KindMalformedResponse, apperror.KindOf(err))
}

func TestGenerateMissingResponseField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model":"llama3","done":true}`))
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3")
	_, err := provider.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Equal(t, apperror.KindMalformedResponse, apperror.KindOf(err))
}

func TestGenerateEmptyResponseFieldIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model":"llama3","response":"","done":true}`))
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3")
	got, err := provider.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestGenerateModelOverride(t *testing.T) {
	var gotReq ollamaGenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{"response":"ok"}`))
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3")
	_, err := provider.Generate(context.Background(), "prompt", llm.WithModel("mistral"))

	require.NoError(t, err)
	assert.Equal(t, "mistral", gotReq.Model)
}
