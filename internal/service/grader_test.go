package service

import (
	"testing"

	"nura_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestGradeMultipleChoice(t *testing.T) {
	q := &model.QuizQuestion{Type: model.MultipleChoice, CorrectAnswer: "B"}

	correct, feedback := Grade(q, "B")
	assert.True(t, correct)
	assert.Equal(t, "Correct!", feedback)

	correct, _ = Grade(q, "  b  ")
	assert.True(t, correct, "comparison ignores case and surrounding whitespace")

	correct, feedback = Grade(q, "A")
	assert.False(t, correct)
	assert.Contains(t, feedback, "The correct answer is: B")
}

func TestGradeIncludesExplanation(t *testing.T) {
	q := &model.QuizQuestion{
		Type:          model.TrueFalse,
		CorrectAnswer: "true",
		Explanation:   "Goroutines are multiplexed onto OS threads.",
	}

	_, feedback := Grade(q, "false")
	assert.Contains(t, feedback, "The correct answer is: true")
	assert.Contains(t, feedback, "Goroutines are multiplexed onto OS threads.")
}

func TestGradeShortAnswerSubstring(t *testing.T) {
	q := &model.QuizQuestion{Type: model.ShortAnswer, CorrectAnswer: "Paris"}

	correct, _ := Grade(q, "The capital is Paris")
	assert.True(t, correct, "longer answers containing the expected text pass")

	correct, _ = Grade(q, "paris")
	assert.True(t, correct)

	correct, _ = Grade(q, "London")
	assert.False(t, correct)
}

func TestGradeEssayLength(t *testing.T) {
	q := &model.QuizQuestion{Type: model.Essay}

	correct, feedback := Grade(q, "ok")
	assert.False(t, correct)
	assert.Contains(t, feedback, "too short")

	correct, feedback = Grade(q, "Channels synchronize goroutines.")
	assert.True(t, correct)
	assert.Equal(t, "Answer recorded for review.", feedback)
}

func TestGradeEmptyAnswer(t *testing.T) {
	for _, qt := range []model.QuestionType{model.MultipleChoice, model.TrueFalse, model.ShortAnswer, model.Essay} {
		q := &model.QuizQuestion{Type: qt, CorrectAnswer: "x"}
		correct, feedback := Grade(q, "   ")
		assert.False(t, correct)
		assert.Equal(t, "No answer provided", feedback)
	}
}
