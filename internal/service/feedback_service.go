package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/pkg/logger"
	"nura_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const feedbackQueueSize = 256

type feedbackJob struct {
	AnswerID   uint
	Question   model.QuizQuestion
	AnswerText string
}

// FeedbackService enriches wrong quiz answers with generated explanations. It
// runs as an explicit background worker fed by a buffered channel, so the
// submission request never waits on the external call and failures stay
// observable in the logs instead of vanishing.
type FeedbackService struct {
	AI             *AIService
	SubmissionRepo *repository.SubmissionRepository

	jobs chan feedbackJob
	wg   sync.WaitGroup
	once sync.Once
}

func NewFeedbackService(ai *AIService, submissionRepo *repository.SubmissionRepository) *FeedbackService {
	return &FeedbackService{
		AI:             ai,
		SubmissionRepo: submissionRepo,
		jobs:           make(chan feedbackJob, feedbackQueueSize),
	}
}

// Start launches the worker goroutine. Safe to call once per process.
func (s *FeedbackService) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for job := range s.jobs {
			s.process(job)
		}
	}()
}

// Stop closes the queue and drains the remaining jobs.
func (s *FeedbackService) Stop() {
	s.once.Do(func() {
		close(s.jobs)
	})
	s.wg.Wait()
}

// Enqueue schedules feedback generation for one wrong answer. A full queue
// drops the job rather than blocking the submission path.
func (s *FeedbackService) Enqueue(answerID uint, question model.QuizQuestion, answerText string) {
	select {
	case s.jobs <- feedbackJob{AnswerID: answerID, Question: question, AnswerText: answerText}:
	default:
		logger.Log.Warn("feedback queue full, dropping job", zap.Uint("answerId", answerID))
		monitoring.AIFallbackCounter.Inc()
	}
}

func (s *FeedbackService) process(job feedbackJob) {
	feedback := s.generate(context.Background(), &job.Question, job.AnswerText)
	if err := s.SubmissionRepo.SetAIFeedback(job.AnswerID, feedback); err != nil {
		logger.Log.Error("failed to store answer feedback",
			zap.Uint("answerId", job.AnswerID), zap.Error(err))
	}
}

func (s *FeedbackService) generate(ctx context.Context, q *model.QuizQuestion, answerText string) string {
	if !s.AI.Enabled() {
		monitoring.AIFallbackCounter.Inc()
		return fallbackFeedback(q)
	}

	prompt := fmt.Sprintf(
		"A learner answered a quiz question incorrectly. Explain in 2-3 sentences what went wrong and how to think about it.\n"+
			"Question: %s\nLearner's answer: %s\nCorrect answer: %s",
		q.Prompt, answerText, q.CorrectAnswer,
	)
	if q.Explanation != "" {
		prompt += "\nInstructor's explanation: " + q.Explanation
	}

	text, err := s.AI.Generate(ctx, "You are a patient tutor helping a learner understand a mistake.", prompt)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Log.Warn("feedback generation failed, using template",
				zap.Uint("questionId", q.ID), zap.Error(err))
		}
		monitoring.AIFallbackCounter.Inc()
		return fallbackFeedback(q)
	}
	return text
}

// fallbackFeedback returns the fixed per-type template used when the external
// call is unavailable or fails.
func fallbackFeedback(q *model.QuizQuestion) string {
	var template string
	switch q.Type {
	case model.MultipleChoice:
		template = "The correct option was %q. Re-read each option and rule out the ones that contradict the lesson material."
	case model.TrueFalse:
		template = "The statement is %q. Check the lesson section this question refers to and look for the exact claim."
	case model.ShortAnswer:
		template = "The expected answer was %q. Compare it with what you wrote and note the key term you missed."
	case model.Essay:
		template = "A strong answer would cover: %s. Expand your response with concrete reasoning and examples."
	default:
		template = "The correct answer was %q. Review the related material and try again on your next attempt."
	}

	reference := q.CorrectAnswer
	if q.Type == model.Essay && q.Explanation != "" {
		reference = q.Explanation
	}
	feedback := fmt.Sprintf(template, reference)
	if q.Type != model.Essay && q.Explanation != "" {
		feedback += " " + q.Explanation
	}
	return feedback
}
