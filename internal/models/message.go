package models

import (
	"time"
)

// Message represents a contact form submission
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"not null" json:"email"`
	Mobile     *string   `json:"mobile"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	ReadStatus bool      `gorm:"default:false" json:"read_status"`
}

func (Message) TableName() string {
	return "messages"
}
