package models

import "time"

type Forum struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty" gorm:"size:500"`
	IsPrivate   bool      `json:"is_private" gorm:"default:false"`
	CreatedBy   string    `json:"created_by" gorm:"type:varchar(36);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Creator User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}

func (Forum) TableName() string {
	return "forums"
}
