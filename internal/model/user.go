package model

import "time"

type UserRole string

const (
	Student UserRole = "student"
	Mentor  UserRole = "mentor"
	Admin   UserRole = "admin"
)

// swagger:model
type User struct {
	BaseModel
	Name           string     `gorm:"size:100;not null" json:"name"`
	Email          string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"size:255;not null" json:"-"`
	Role           UserRole   `gorm:"size:20;default:'student'" json:"role"`
	AvatarURL      string     `gorm:"size:500" json:"avatarUrl"`
	OrganizationID uint       `gorm:"index" json:"organizationId"`
	LastSeenAt     *time.Time `json:"lastSeenAt"`
}

func (User) TableName() string {
	return "users"
}
