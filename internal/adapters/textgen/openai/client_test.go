package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"medication-reminder/internal/platform/httpclient"
	"medication-reminder/internal/ports/textgen"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SendsChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-test", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" {\"refillDate\":\"2024-03-14\",\"recommendation\":\"ok\"} "}}]}`))
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL + "/v1", APIKey: "sk-test", Model: "gpt-test", Timeout: time.Second}, nil)
	require.NoError(t, err)

	out, err := c.Generate(context.Background(), textgen.Request{System: "sys", Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, `{"refillDate":"2024-03-14","recommendation":"ok"}`, out)
}

func TestGenerate_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL, Model: "m"}, nil)
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), textgen.Request{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestGenerate_BreakerOpensAfterFailures(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL, Model: "m", MaxFailures: 2, OpenTimeout: time.Minute}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.Generate(ctx, textgen.Request{Prompt: "hi"})
		var he *httpclient.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusServiceUnavailable, he.StatusCode)
	}

	_, err = c.Generate(ctx, textgen.Request{Prompt: "hi"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNew_RequiresBaseURLAndModel(t *testing.T) {
	_, err := New(Config{Model: "m"}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = New(Config{BaseURL: "http://x"}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
