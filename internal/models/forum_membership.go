package models

import "time"

// Membership roles inside a forum.
const (
	RoleMember    = "member"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// ForumMembership doubles as the presence test for "is this viewer a
// member" in the forum listing query.
type ForumMembership struct {
	ForumID  int64     `json:"forum_id" gorm:"primaryKey"`
	UserID   string    `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	Role     string    `json:"role" gorm:"size:20;default:'member'"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`
}

func (ForumMembership) TableName() string {
	return "forum_memberships"
}
