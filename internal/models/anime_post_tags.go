package models

// explicit join model, composite key on both sides of the association
type AnimePostTag struct {
	AnimePostID int64 `json:"anime_post_id" gorm:"primaryKey;not null"`
	TagID       int64 `json:"tag_id" gorm:"primaryKey;not null"`
}

func (AnimePostTag) TableName() string {
	return "anime_post_tags"
}
