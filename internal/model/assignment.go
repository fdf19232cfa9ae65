package model

import "time"

// swagger:model
type Assignment struct {
	BaseModel
	CourseID    uint       `gorm:"index;type:bigint unsigned" json:"courseId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	MaxScore    int        `gorm:"default:100" json:"maxScore"`
}

func (Assignment) TableName() string {
	return "assignments"
}

type AssignmentStatus string

const (
	AssignmentSubmitted AssignmentStatus = "submitted"
	AssignmentGraded    AssignmentStatus = "graded"
)

// swagger:model
type AssignmentSubmission struct {
	BaseModel
	AssignmentID uint             `gorm:"index:idx_assignment_user;type:bigint unsigned" json:"assignmentId"`
	UserID       uint             `gorm:"index:idx_assignment_user;type:bigint unsigned" json:"userId"`
	User         *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content      string           `gorm:"type:longtext" json:"content"`
	FileURL      string           `gorm:"size:500" json:"fileUrl"`
	Score        *int             `json:"score"`
	Feedback     string           `gorm:"type:text" json:"feedback"`
	Status       AssignmentStatus `gorm:"size:20;default:'submitted'" json:"status"`
}

func (AssignmentSubmission) TableName() string {
	return "assignment_submissions"
}
