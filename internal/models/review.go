package models

import "time"

type Review struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AnimePostID int64     `json:"anime_post_id" gorm:"not null;index"`
	AuthorID    string    `json:"author_id" gorm:"type:varchar(36);not null;index"`
	Rating      float64   `json:"rating" gorm:"type:decimal(2,1);not null;check:rating >= 0 AND rating <= 5"`
	Title       *string   `json:"title,omitempty" gorm:"size:255"`
	Content     string    `json:"content" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	AnimePost AnimePost `json:"anime_post,omitempty" gorm:"foreignKey:AnimePostID;constraint:OnDelete:CASCADE;"`
	Author    User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (Review) TableName() string {
	return "reviews"
}
