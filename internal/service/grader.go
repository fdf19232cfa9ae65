package service

import (
	"fmt"
	"strings"

	"nura_backend/internal/model"
)

// Grade compares a learner's answer against the stored correct answer and
// returns a correctness flag plus a rule-based feedback string. It is a pure
// comparison with no side effects.
func Grade(question *model.QuizQuestion, answerText string) (bool, string) {
	trimmed := strings.TrimSpace(answerText)
	if trimmed == "" {
		return false, "No answer provided"
	}

	switch question.Type {
	case model.MultipleChoice, model.TrueFalse:
		if normalizeAnswer(trimmed) == normalizeAnswer(question.CorrectAnswer) {
			return true, "Correct!"
		}
		return false, incorrectFeedback(question)

	case model.ShortAnswer:
		user := normalizeAnswer(trimmed)
		want := normalizeAnswer(question.CorrectAnswer)
		// Known-loose: a short correct answer matches inside any longer text
		// that happens to contain it, and vice versa.
		if want != "" && (strings.Contains(user, want) || strings.Contains(want, user)) {
			return true, "Correct!"
		}
		return false, incorrectFeedback(question)

	case model.Essay:
		// Length is an engagement check only. Substantive assessment happens
		// in the asynchronous feedback step.
		if len(trimmed) > 10 {
			return true, "Answer recorded for review."
		}
		return false, "Your answer is too short. Try to explain your reasoning in a few sentences."
	}

	return false, incorrectFeedback(question)
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func incorrectFeedback(q *model.QuizQuestion) string {
	feedback := fmt.Sprintf("Incorrect. The correct answer is: %s", q.CorrectAnswer)
	if q.Explanation != "" {
		feedback += ". " + q.Explanation
	}
	return feedback
}
