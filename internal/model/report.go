package model

import "encoding/json"

type ReportType string

const (
	ReportStudent      ReportType = "student"
	ReportCourse       ReportType = "course"
	ReportSystem       ReportType = "system"
	ReportQuizFeedback ReportType = "quiz_feedback"
)

// AIReport stores one generated analysis. Insights and recommendations are
// extracted from the content text after generation, not structured by the
// model itself.
type AIReport struct {
	BaseModel
	Type            ReportType      `gorm:"size:20;index" json:"type"`
	TargetID        uint            `gorm:"index" json:"targetId"`
	Content         string          `gorm:"type:longtext" json:"content"`
	Insights        json.RawMessage `gorm:"type:json" json:"insights"`
	Recommendations json.RawMessage `gorm:"type:json" json:"recommendations"`
	Confidence      float64         `json:"confidence"`
	Metadata        json.RawMessage `gorm:"type:json" json:"metadata"`
}

func (AIReport) TableName() string {
	return "ai_reports"
}
