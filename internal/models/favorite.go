package models

import "time"

// Favorite is a pure membership row: existence of the (user, post) pair is
// the whole signal.
type Favorite struct {
	UserID      string    `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	AnimePostID int64     `json:"anime_post_id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorites"
}
