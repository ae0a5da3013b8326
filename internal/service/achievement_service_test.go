package service

import (
	"testing"

	"lingo_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestQualifiedCodes_Empty(t *testing.T) {
	p := &model.UserProgress{Level: 1}
	assert.Empty(t, QualifiedCodes(p))
}

func TestQualifiedCodes_FirstLesson(t *testing.T) {
	p := &model.UserProgress{Level: 1, XP: 10, LessonsCompleted: 1}
	assert.Equal(t, []string{"first_steps"}, QualifiedCodes(p))
}

func TestQualifiedCodes_Thresholds(t *testing.T) {
	p := &model.UserProgress{Level: 2, XP: 100, Streak: 2, LessonsCompleted: 5}
	codes := QualifiedCodes(p)

	assert.Contains(t, codes, "first_steps")
	assert.Contains(t, codes, "point_collector")
	assert.Contains(t, codes, "level_up")
	assert.NotContains(t, codes, "dedicated")
}

func TestQualifiedCodes_ThreeDayStreak(t *testing.T) {
	p := &model.UserProgress{Level: 1, Streak: 3}
	assert.Equal(t, []string{"dedicated"}, QualifiedCodes(p))
}

func TestQualifiedCodes_All(t *testing.T) {
	p := &model.UserProgress{Level: 5, XP: 420, Streak: 30, LessonsCompleted: 40}
	assert.Len(t, QualifiedCodes(p), 4)
}
