package model

import "encoding/json"

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
	Essay          QuestionType = "essay"
)

// swagger:model
type Quiz struct {
	BaseModel
	CourseID     uint    `gorm:"index;type:bigint unsigned" json:"courseId"`
	Course       *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Title        string  `gorm:"size:255;not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	TimeLimit    int     `json:"timeLimit"` // minutes, 0 means unlimited
	PassingScore int     `gorm:"default:70" json:"passingScore"`
	Randomize    bool    `gorm:"default:false" json:"randomize"`
	MaxAttempts  int     `gorm:"default:1" json:"maxAttempts"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model
type QuizQuestion struct {
	BaseModel
	QuizID        uint            `gorm:"uniqueIndex:idx_quiz_question_order;type:bigint unsigned" json:"quizId"`
	Type          QuestionType    `gorm:"size:20;not null" json:"type"`
	Prompt        string          `gorm:"type:text;not null" json:"prompt"`
	Options       json.RawMessage `gorm:"type:json" json:"options"` // ordered list, null for non-choice types
	CorrectAnswer string          `gorm:"type:text" json:"-"`
	Points        int             `gorm:"default:1" json:"points"`
	Explanation   string          `gorm:"type:text" json:"explanation,omitempty"`
	OrderIndex    int             `gorm:"uniqueIndex:idx_quiz_question_order" json:"orderIndex"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
