package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "")
	assert.ErrorContains(t, err, "api key is required")
}

func TestCandidateText(t *testing.T) {
	withParts := func(parts ...genai.Part) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: parts}},
		}}
	}

	text, err := candidateText(withParts(genai.Text("Austin "), genai.Blob{MIMEType: "image/png"}, genai.Text("is cheaper.")))
	require.NoError(t, err)
	assert.Equal(t, "Austin is cheaper.", text)

	for name, resp := range map[string]*genai.GenerateContentResponse{
		"nil response":  nil,
		"no candidates": {},
		"no content":    {Candidates: []*genai.Candidate{{}}},
		"blank text":    withParts(genai.Text("  \n")),
		"only blobs":    withParts(genai.Blob{MIMEType: "image/png"}),
	} {
		_, err := candidateText(resp)
		assert.ErrorIs(t, err, ErrEmptyResponse, name)
	}
}
