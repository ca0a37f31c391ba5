package models

import (
	"time"
)

// Admin represents an admin account able to access the dashboard
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}

func (admin *Admin) ToAdminResponse() *AdminResponse {
	return &AdminResponse{
		ID:    admin.ID,
		Email: admin.Email,
	}
}
