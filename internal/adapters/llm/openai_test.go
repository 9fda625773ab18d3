package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAINarrate(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "Austin is cheaper."}}]}`))
	}))
	defer server.Close()

	c := NewOpenAI(server.URL+"/", "test-key", "")
	text, err := c.Narrate(context.Background(), "compare")
	require.NoError(t, err)
	assert.Equal(t, "Austin is cheaper.", text)

	assert.Equal(t, DefaultModel, got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "compare", got.Messages[0].Content)
	assert.Equal(t, 1000, got.MaxTokens)
	assert.Equal(t, 1.0, got.Temperature)
	assert.Equal(t, 1.0, got.TopP)
}

func TestOpenAINarrateErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{"server error", http.StatusInternalServerError, `boom`, func(t *testing.T, err error) {
			assert.ErrorContains(t, err, "status 500")
			assert.ErrorContains(t, err, "boom")
		}},
		{"no choices", http.StatusOK, `{"choices": []}`, func(t *testing.T, err error) {
			assert.True(t, errors.Is(err, ErrEmptyResponse))
		}},
		{"bad json", http.StatusOK, `{`, func(t *testing.T, err error) {
			assert.ErrorContains(t, err, "decode response")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := NewOpenAI(server.URL, "", "m").Narrate(context.Background(), "p")
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestDisabledNarrator(t *testing.T) {
	_, err := Disabled{}.Narrate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrDisabled)
}
