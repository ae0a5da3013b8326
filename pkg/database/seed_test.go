package database

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLessonStagesValid(t *testing.T) {
	require.NotEmpty(t, defaultLessonStages)
	for _, stage := range defaultLessonStages {
		assert.NotEmpty(t, stage.Language)
		assert.NotEmpty(t, stage.Title)
		assert.Greater(t, stage.StageID, 0)
		assert.True(t, json.Valid(stage.Contents), "lesson %q contents must be valid JSON", stage.Title)
	}
}

func TestDefaultVocabularyStagesValid(t *testing.T) {
	require.NotEmpty(t, defaultVocabularyStages)
	for _, stage := range defaultVocabularyStages {
		assert.True(t, json.Valid(stage.Words), "vocabulary stage %d words must be valid JSON", stage.StageID)

		var words []map[string]interface{}
		require.NoError(t, json.Unmarshal(stage.Words, &words))
		assert.NotEmpty(t, words)
	}
}

func TestDefaultQuizStagesValid(t *testing.T) {
	require.NotEmpty(t, defaultQuizStages)
	for _, stage := range defaultQuizStages {
		assert.NotEmpty(t, stage.Name)
		assert.True(t, json.Valid(stage.Questions), "quiz %q questions must be valid JSON", stage.Name)
	}
}
