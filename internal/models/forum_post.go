package models

import "time"

type ForumPost struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ForumID   int64      `json:"forum_id" gorm:"not null;index"`
	Title     string     `json:"title" gorm:"size:255;not null"`
	Content   string     `json:"content" gorm:"not null"`
	AuthorID  string     `json:"author_id" gorm:"type:varchar(36);not null"`
	IsPinned  bool       `json:"is_pinned" gorm:"default:false"`
	IsLocked  bool       `json:"is_locked" gorm:"default:false"`
	ViewCount int        `json:"view_count" gorm:"default:0"`
	// ReplyCount, LastReplyAt and LastReplyBy are denormalized and must be
	// updated in the same transaction as every reply insert.
	ReplyCount  int        `json:"reply_count" gorm:"default:0"`
	LastReplyAt *time.Time `json:"last_reply_at,omitempty"`
	LastReplyBy *string    `json:"last_reply_by,omitempty" gorm:"type:varchar(36)"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Forum  Forum `json:"forum,omitempty" gorm:"foreignKey:ForumID;constraint:OnDelete:CASCADE;"`
	Author User  `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (ForumPost) TableName() string {
	return "forum_posts"
}
