package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiGenerator_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "gemini-2.0-flash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestNewGeminiGenerator_DefaultsModel(t *testing.T) {
	g, err := NewGeminiGenerator(context.Background(), "test-key", "")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", g.model)
}

func TestNewGeminiGenerator_KeepsModel(t *testing.T) {
	g, err := NewGeminiGenerator(context.Background(), "test-key", "gemini-1.5-pro")
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-pro", g.model)
}
