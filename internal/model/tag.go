package model

type TagCategory string

const (
	TagTechnology TagCategory = "technology"
	TagDomain     TagCategory = "domain"
	TagSkill      TagCategory = "skill"
	TagManual     TagCategory = "manual"
)

// swagger:model
type Tag struct {
	BaseModel
	Name        string      `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Category    TagCategory `gorm:"size:20;default:'manual'" json:"category"`
	Description string      `gorm:"type:text" json:"description"`
	Color       string      `gorm:"size:20" json:"color"`
}

func (Tag) TableName() string {
	return "tags"
}

// CourseTag links a course to a tag with a confidence score in [0,1].
// At most one link exists per (course, tag) pair.
type CourseTag struct {
	BaseModel
	CourseID   uint    `gorm:"uniqueIndex:idx_course_tag;type:bigint unsigned" json:"courseId"`
	TagID      uint    `gorm:"uniqueIndex:idx_course_tag;type:bigint unsigned" json:"tagId"`
	Tag        *Tag    `gorm:"foreignKey:TagID" json:"tag,omitempty"`
	Confidence float64 `gorm:"default:0" json:"confidence"`
}

func (CourseTag) TableName() string {
	return "course_tags"
}

// TagSuggestion is an unpersisted engine result, sorted by confidence.
type TagSuggestion struct {
	Name        string      `json:"name"`
	Category    TagCategory `json:"category"`
	Confidence  float64     `json:"confidence"`
	Description string      `json:"description"`
}
