package service

import (
	"testing"

	"nura_backend/internal/config"
	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuizTestService(t *testing.T) (*QuizService, *gorm.DB) {
	db := newTestDB(t)
	submissionRepo := repository.NewSubmissionRepository(db)
	s := NewQuizService(
		repository.NewQuizRepository(db),
		submissionRepo,
		repository.NewCourseRepository(db),
		NewFeedbackService(NewAIService(config.AIConfig{}), submissionRepo),
	)
	return s, db
}

func seedQuiz(t *testing.T, db *gorm.DB, passingScore, maxAttempts int) *model.Quiz {
	t.Helper()

	course := model.Course{Title: "Test course", Status: model.CoursePublished, OwnerID: 1}
	require.NoError(t, db.Create(&course).Error)

	quiz := model.Quiz{
		CourseID:     course.ID,
		Title:        "Checkpoint",
		PassingScore: passingScore,
		MaxAttempts:  maxAttempts,
		Questions: []model.QuizQuestion{
			{Type: model.MultipleChoice, Prompt: "Pick B", CorrectAnswer: "B", Points: 2, OrderIndex: 1},
			{Type: model.TrueFalse, Prompt: "True?", CorrectAnswer: "true", Points: 1, OrderIndex: 2},
			{Type: model.ShortAnswer, Prompt: "Capital of France?", CorrectAnswer: "Paris", Points: 3, OrderIndex: 3},
		},
	}
	require.NoError(t, db.Create(&quiz).Error)
	return &quiz
}

func TestSubmitQuizScoresAndPersists(t *testing.T) {
	s, db := newQuizTestService(t)
	quiz := seedQuiz(t, db, 3, 0)

	result, err := s.SubmitQuiz(quiz.ID, 42, []model.SubmittedAnswer{
		{QuestionID: quiz.Questions[0].ID, Answer: "B"},
		{QuestionID: quiz.Questions[1].ID, Answer: "false"},
		{QuestionID: quiz.Questions[2].ID, Answer: "paris"},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Score, "2 for the choice plus 3 for the short answer")
	assert.Equal(t, 6, result.MaxScore)
	assert.True(t, result.IsPassed)
	require.Len(t, result.WrongAnswers, 1)
	assert.Equal(t, quiz.Questions[1].ID, result.WrongAnswers[0].QuestionID)

	var stored model.QuizSubmission
	require.NoError(t, db.Preload("Answers").First(&stored, result.Submission.ID).Error)
	assert.Equal(t, 5, stored.Score)
	assert.Len(t, stored.Answers, 3)
	assert.NotEmpty(t, stored.RawAnswers)
}

func TestSubmitQuizComparesAbsoluteScore(t *testing.T) {
	s, db := newQuizTestService(t)
	// Default-style passing score far above the 6 points available: a perfect
	// run still fails because the sum is compared as-is, not as a percentage.
	quiz := seedQuiz(t, db, 70, 0)

	result, err := s.SubmitQuiz(quiz.ID, 42, []model.SubmittedAnswer{
		{QuestionID: quiz.Questions[0].ID, Answer: "B"},
		{QuestionID: quiz.Questions[1].ID, Answer: "true"},
		{QuestionID: quiz.Questions[2].ID, Answer: "Paris"},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, result.Score)
	assert.False(t, result.IsPassed)
}

func TestSubmitQuizMissingAnswersScoreZero(t *testing.T) {
	s, db := newQuizTestService(t)
	quiz := seedQuiz(t, db, 1, 0)

	result, err := s.SubmitQuiz(quiz.ID, 42, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 6, result.MaxScore)
	assert.Len(t, result.WrongAnswers, 3, "every unanswered question is graded wrong")
	for _, a := range result.WrongAnswers {
		assert.Equal(t, "No answer provided", a.Feedback)
	}
}

func TestSubmitQuizAttemptLimit(t *testing.T) {
	s, db := newQuizTestService(t)
	quiz := seedQuiz(t, db, 3, 1)

	answers := []model.SubmittedAnswer{{QuestionID: quiz.Questions[0].ID, Answer: "B"}}

	_, err := s.SubmitQuiz(quiz.ID, 42, answers)
	require.NoError(t, err)

	_, err = s.SubmitQuiz(quiz.ID, 42, answers)
	assert.ErrorIs(t, err, util.ErrAttemptsExceeded)

	// A different user is unaffected.
	_, err = s.SubmitQuiz(quiz.ID, 43, answers)
	assert.NoError(t, err)
}

func TestGetQuizStableOrderForAuthors(t *testing.T) {
	s, db := newQuizTestService(t)
	quiz := seedQuiz(t, db, 3, 0)
	require.NoError(t, db.Model(quiz).Update("randomize", true).Error)

	got, err := s.GetQuiz(quiz.ID, model.Mentor)
	require.NoError(t, err)
	require.Len(t, got.Questions, 3)
	for i, q := range got.Questions {
		assert.Equal(t, i+1, q.OrderIndex)
	}

	// Learners get the same question set even when the order is shuffled.
	got, err = s.GetQuiz(quiz.ID, model.Student)
	require.NoError(t, err)
	assert.Len(t, got.Questions, 3)
	seen := make(map[uint]bool, 3)
	for _, q := range got.Questions {
		seen[q.ID] = true
	}
	for _, q := range quiz.Questions {
		assert.True(t, seen[q.ID])
	}
}

func TestUpdateQuestionKeepsPlacement(t *testing.T) {
	s, db := newQuizTestService(t)
	quiz := seedQuiz(t, db, 3, 0)

	q := model.QuizQuestion{
		Type:          model.MultipleChoice,
		Prompt:        "Pick C",
		CorrectAnswer: "C",
	}
	q.ID = quiz.Questions[1].ID
	require.NoError(t, s.UpdateQuestion(1, &q))

	assert.Equal(t, quiz.ID, q.QuizID)
	assert.Equal(t, 2, q.OrderIndex, "unset order falls back to the stored one")
	assert.Equal(t, 1, q.Points, "unset points fall back to the stored ones")

	err := s.UpdateQuestion(99, &q)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestSubmitQuizUnknownQuiz(t *testing.T) {
	s, _ := newQuizTestService(t)
	_, err := s.SubmitQuiz(999, 42, nil)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestCreateQuizRequiresOwnership(t *testing.T) {
	s, db := newQuizTestService(t)

	course := model.Course{Title: "Owned", Status: model.CoursePublished, OwnerID: 7}
	require.NoError(t, db.Create(&course).Error)

	quiz := &model.Quiz{CourseID: course.ID, Title: "Q"}
	assert.ErrorIs(t, s.CreateQuiz(8, quiz), util.ErrPermissionDenied)
	assert.NoError(t, s.CreateQuiz(7, quiz))
}

func TestAddQuestionDefaults(t *testing.T) {
	s, db := newQuizTestService(t)
	quiz := seedQuiz(t, db, 3, 0)

	q := &model.QuizQuestion{QuizID: quiz.ID, Type: model.Essay, Prompt: "Discuss"}
	require.NoError(t, s.AddQuestion(1, q))
	assert.Equal(t, 4, q.OrderIndex, "appended after the existing three questions")
	assert.Equal(t, 1, q.Points)
}

func TestGetSubmissionOwnership(t *testing.T) {
	s, db := newQuizTestService(t)
	quiz := seedQuiz(t, db, 3, 0)

	result, err := s.SubmitQuiz(quiz.ID, 42, []model.SubmittedAnswer{
		{QuestionID: quiz.Questions[0].ID, Answer: "B"},
	})
	require.NoError(t, err)

	_, err = s.GetSubmission(result.Submission.ID, 99, model.Student)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	got, err := s.GetSubmission(result.Submission.ID, 42, model.Student)
	require.NoError(t, err)
	assert.Equal(t, result.Submission.ID, got.ID)

	_, err = s.GetSubmission(result.Submission.ID, 99, model.Mentor)
	assert.NoError(t, err)
}
