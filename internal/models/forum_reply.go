package models

import "time"

// ForumReply rows form a tree through ParentReplyID, but are stored and
// served flat; consumers rebuild the tree from the parent references.
type ForumReply struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PostID        int64     `json:"post_id" gorm:"not null;index"`
	Content       string    `json:"content" gorm:"not null"`
	AuthorID      string    `json:"author_id" gorm:"type:varchar(36);not null"`
	ParentReplyID *int64    `json:"parent_reply_id,omitempty"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Post   ForumPost `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;"`
	Author User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (ForumReply) TableName() string {
	return "forum_replies"
}
