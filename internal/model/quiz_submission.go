package model

import (
	"encoding/json"
	"time"
)

// SubmittedAnswer is one question-id/answer-text pair from the client.
type SubmittedAnswer struct {
	QuestionID uint   `json:"questionId"`
	Answer     string `json:"answer"`
}

// swagger:model
type QuizSubmission struct {
	BaseModel
	QuizID      uint            `gorm:"index:idx_submission_user_quiz;type:bigint unsigned" json:"quizId"`
	UserID      uint            `gorm:"index:idx_submission_user_quiz;type:bigint unsigned" json:"userId"`
	User        *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RawAnswers  json.RawMessage `gorm:"type:json" json:"rawAnswers"`
	Score       int             `json:"score"`
	MaxScore    int             `json:"maxScore"`
	IsPassed    bool            `json:"isPassed"`
	SubmittedAt time.Time       `json:"submittedAt"`

	Answers []QuizAnswer `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}

// QuizAnswer is one graded line item of a submission. AIFeedback is filled
// asynchronously by the feedback worker and may remain empty.
type QuizAnswer struct {
	BaseModel
	SubmissionID uint          `gorm:"index;type:bigint unsigned" json:"submissionId"`
	QuestionID   uint          `gorm:"index;type:bigint unsigned" json:"questionId"`
	Question     *QuizQuestion `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	AnswerText   string        `gorm:"type:text" json:"answerText"`
	IsCorrect    bool          `json:"isCorrect"`
	Points       int           `json:"points"`
	Feedback     string        `gorm:"type:text" json:"feedback"`
	AIFeedback   string        `gorm:"type:text" json:"aiFeedback,omitempty"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}
