package openai_test

import (
	"context"
	"testing"

	"github.com/ryderstorm/askdocs"
	"github.com/ryderstorm/askdocs/mock"
	"github.com/ryderstorm/askdocs/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask_ReturnsErrorWhenQueryEmpty(t *testing.T) {
	t.Parallel()

	asker := openai.NewAsker(nil, nil) // nil client ok for this test

	_, err := asker.Ask(context.Background(), "   ")

	require.Error(t, err)
	assert.Equal(t, askdocs.EINVALID, askdocs.ErrorCode(err))
	assert.Contains(t, askdocs.ErrorMessage(err), "query required")
}

func TestAsker_Ask_PropagatesDocumentSourceError(t *testing.T) {
	t.Parallel()

	expectedErr := askdocs.Errorf(askdocs.EINTERNAL, "disk error")
	docs := &mock.DocumentSource{
		DocumentsFn: func(context.Context) ([]*askdocs.Document, error) {
			return nil, expectedErr
		},
	}

	asker := openai.NewAsker(nil, docs)

	_, err := asker.Ask(context.Background(), "what is this?")

	require.Error(t, err)
	assert.Equal(t, askdocs.EINTERNAL, askdocs.ErrorCode(err))
	assert.Contains(t, askdocs.ErrorMessage(err), "disk error")
}

func TestAsker_Ask_EmptyKnowledgeBaseSkipsTheAPI(t *testing.T) {
	t.Parallel()

	docs := &mock.DocumentSource{
		DocumentsFn: func(context.Context) ([]*askdocs.Document, error) {
			return []*askdocs.Document{}, nil
		},
	}

	t.Run("structured mode", func(t *testing.T) {
		t.Parallel()

		asker := openai.NewAsker(nil, docs) // nil client: the API must not be reached

		result, err := asker.Ask(context.Background(), "anything?")

		require.NoError(t, err)
		structured, ok := result.(askdocs.StructuredResult)
		require.True(t, ok)
		assert.False(t, structured.FoundRelevantSources)
		assert.Empty(t, structured.CitedSources)
		assert.Contains(t, structured.AnswerText, "No relevant information")
	})

	t.Run("heuristic mode", func(t *testing.T) {
		t.Parallel()

		asker := openai.NewAsker(nil, docs, openai.WithMode(askdocs.ModeHeuristic))

		result, err := asker.Ask(context.Background(), "anything?")

		require.NoError(t, err)
		raw, ok := result.(askdocs.RawTextResult)
		require.True(t, ok)
		assert.Contains(t, raw.Text, "No relevant information")
	})
}
