package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"guytogo/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewGeminiClient("test-key", "test-model")
	require.NoError(t, err)
	c.baseURL = srv.URL
	return c
}

func TestGeminiClient_Generate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Subject: Mathematics")
		assert.Contains(t, req.SystemInstruction.Parts[0].Text, "8-column")

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"<h2>The Lesson"},{"text":" Plan Template</h2>"}]}}]}`))
	})

	got, err := c.Generate(context.Background(), interfaces.LessonPlanInput{
		Subject: "Mathematics", Grade: "Grade 7", Topic: "Fractions", Duration: "40 minutes",
	})
	require.NoError(t, err)
	assert.Equal(t, "<h2>The Lesson Plan Template</h2>", got)
}

func TestGeminiClient_Errors(t *testing.T) {
	t.Run("client error is not retried", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
		})

		_, err := c.Generate(context.Background(), interfaces.LessonPlanInput{Subject: "Science"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key not valid")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("empty candidates", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		})

		_, err := c.Generate(context.Background(), interfaces.LessonPlanInput{Subject: "Science"})
		assert.ErrorIs(t, err, ErrEmptyGeneration)
	})

	t.Run("server error retries", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
		})

		got, err := c.Generate(context.Background(), interfaces.LessonPlanInput{Subject: "Science"})
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestNewGeminiClient(t *testing.T) {
	_, err := NewGeminiClient("", "")
	assert.ErrorIs(t, err, ErrMissingGeminiAPIKey)

	c, err := NewGeminiClient("k", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultGeminiModel, c.model)
}
