package models

import "time"

type Tag struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Color     string    `json:"color" gorm:"size:7;default:'#6366F1'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Tag) TableName() string {
	return "tags"
}
