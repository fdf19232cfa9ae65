package model

type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
	CourseArchived  CourseStatus = "archived"
)

// swagger:model
type Course struct {
	BaseModel
	Title          string       `gorm:"size:255;not null" json:"title"`
	Description    string       `gorm:"type:text" json:"description"`
	Content        string       `gorm:"type:longtext" json:"content"`
	Status         CourseStatus `gorm:"size:20;default:'draft';index" json:"status"`
	OwnerID        uint         `gorm:"index;type:bigint unsigned" json:"ownerId"`
	Owner          *User        `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	OrganizationID uint         `gorm:"index" json:"organizationId"`
	ThumbnailURL   string       `gorm:"size:500" json:"thumbnailUrl"`
	VideoURL       string       `gorm:"size:500" json:"videoUrl"`
	VideoDuration  float64      `json:"videoDuration"` // seconds, probed on upload

	Tags []CourseTag `gorm:"foreignKey:CourseID" json:"tags,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
