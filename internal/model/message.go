package model

// swagger:model
type Message struct {
	BaseModel
	SenderID    uint   `gorm:"index;type:bigint unsigned" json:"senderId"`
	RecipientID uint   `gorm:"index;type:bigint unsigned" json:"recipientId"`
	Body        string `gorm:"type:text;not null" json:"body"`
	IsRead      bool   `gorm:"default:false" json:"isRead"`
}

func (Message) TableName() string {
	return "messages"
}

// swagger:model
type Notification struct {
	BaseModel
	UserID uint   `gorm:"index;type:bigint unsigned" json:"userId"`
	Type   string `gorm:"size:50" json:"type"`
	Title  string `gorm:"size:255" json:"title"`
	Body   string `gorm:"type:text" json:"body"`
	IsRead bool   `gorm:"default:false" json:"isRead"`
}

func (Notification) TableName() string {
	return "notifications"
}
