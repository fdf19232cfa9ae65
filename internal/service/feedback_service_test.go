package service

import (
	"testing"

	"nura_backend/internal/config"
	"nura_backend/internal/model"
	"nura_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackWorkerStoresFallback(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSubmissionRepository(db)
	s := NewFeedbackService(NewAIService(config.AIConfig{}), repo)

	answer := model.QuizAnswer{SubmissionID: 1, QuestionID: 1, AnswerText: "A", IsCorrect: false}
	require.NoError(t, db.Create(&answer).Error)

	question := model.QuizQuestion{
		Type:          model.MultipleChoice,
		Prompt:        "Pick B",
		CorrectAnswer: "B",
		Explanation:   "B is the only option consistent with the lesson.",
	}

	s.Start()
	s.Enqueue(answer.ID, question, "A")
	s.Stop()

	var stored model.QuizAnswer
	require.NoError(t, db.First(&stored, answer.ID).Error)
	assert.Contains(t, stored.AIFeedback, `"B"`)
	assert.Contains(t, stored.AIFeedback, "B is the only option consistent with the lesson.")
}

func TestFallbackFeedbackEssayUsesExplanation(t *testing.T) {
	q := &model.QuizQuestion{
		Type:          model.Essay,
		CorrectAnswer: "",
		Explanation:   "tradeoffs of eventual consistency",
	}
	feedback := fallbackFeedback(q)
	assert.Contains(t, feedback, "tradeoffs of eventual consistency")
	assert.Contains(t, feedback, "A strong answer would cover")
}

func TestFallbackFeedbackPerType(t *testing.T) {
	cases := map[model.QuestionType]string{
		model.MultipleChoice: "Re-read each option",
		model.TrueFalse:      "The statement is",
		model.ShortAnswer:    "The expected answer was",
	}
	for qt, want := range cases {
		q := &model.QuizQuestion{Type: qt, CorrectAnswer: "x"}
		assert.Contains(t, fallbackFeedback(q), want)
	}
}

func TestEnqueueDropsWhenQueueFull(t *testing.T) {
	db := newTestDB(t)
	s := NewFeedbackService(NewAIService(config.AIConfig{}), repository.NewSubmissionRepository(db))

	// Worker not started: fill the buffer, then one more must not block.
	q := model.QuizQuestion{Type: model.TrueFalse, CorrectAnswer: "true"}
	for i := 0; i < feedbackQueueSize+1; i++ {
		s.Enqueue(uint(i+1), q, "false")
	}
	assert.Len(t, s.jobs, feedbackQueueSize)
}

func TestStopIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	s := NewFeedbackService(NewAIService(config.AIConfig{}), repository.NewSubmissionRepository(db))
	s.Start()
	s.Stop()
	assert.NotPanics(t, s.Stop)
}
