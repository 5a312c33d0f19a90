package models

import "time"

// Lifecycle states of an anime post. Transitions are one-directional:
// pending -> approved or pending -> rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type AnimePost struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"not null"`
	ImageURL    *string   `json:"image_url,omitempty" gorm:"size:500"`
	Year        *int      `json:"year,omitempty"`
	Type        string    `json:"type" gorm:"size:20;not null"` // TV, Movie, OVA, etc.
	Studio      *string   `json:"studio,omitempty" gorm:"size:100"`
	Status      string    `json:"status" gorm:"size:20;default:'pending';index"`
	AuthorID    string    `json:"author_id" gorm:"type:varchar(36);not null;index"`
	ApprovedBy  *string   `json:"approved_by,omitempty" gorm:"type:varchar(36)"`
	ViewCount   int       `json:"view_count" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Author User  `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Tags   []Tag `json:"tags,omitempty" gorm:"many2many:anime_post_tags;constraint:OnDelete:CASCADE;"`
}

func (AnimePost) TableName() string {
	return "anime_posts"
}
