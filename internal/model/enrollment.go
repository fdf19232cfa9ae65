package model

import "time"

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// swagger:model
type Enrollment struct {
	BaseModel
	UserID      uint             `gorm:"index:idx_enrollment_user_course,unique;type:bigint unsigned" json:"userId"`
	User        *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CourseID    uint             `gorm:"index:idx_enrollment_user_course,unique;type:bigint unsigned" json:"courseId"`
	Course      *Course          `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Progress    float64          `gorm:"default:0" json:"progress"` // 0-100
	Status      EnrollmentStatus `gorm:"size:20;default:'active';index" json:"status"`
	EnrolledAt  time.Time        `json:"enrolledAt"`
	CompletedAt *time.Time       `json:"completedAt"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
