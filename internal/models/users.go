package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email           *string   `gorm:"uniqueIndex" json:"email,omitempty"`
	Password        string    `gorm:"column:password_hash" json:"-"` // Not shown in JSON
	FirstName       *string   `json:"first_name,omitempty"`
	LastName        *string   `json:"last_name,omitempty"`
	ProfileImageURL *string   `gorm:"size:500" json:"profile_image_url,omitempty"`
	IsAdmin         bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
