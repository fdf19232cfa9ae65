package model

import "time"

// swagger:model
type Certification struct {
	BaseModel
	UserID          uint      `gorm:"index:idx_cert_user_course,unique;type:bigint unsigned" json:"userId"`
	User            *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CourseID        uint      `gorm:"index:idx_cert_user_course,unique;type:bigint unsigned" json:"courseId"`
	Course          *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	CertificateCode string    `gorm:"size:36;uniqueIndex" json:"certificateCode"`
	IssuedAt        time.Time `json:"issuedAt"`
}

func (Certification) TableName() string {
	return "certifications"
}
