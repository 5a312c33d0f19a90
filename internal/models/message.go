package models

import "time"

// Message is symmetric: a conversation between A and B is the set of rows
// where {sender, receiver} = {A, B} in either order. There is no stored
// conversation entity; it is derived at read time.
type Message struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SenderID   string    `json:"sender_id" gorm:"type:varchar(36);not null;index"`
	ReceiverID string    `json:"receiver_id" gorm:"type:varchar(36);not null;index"`
	Content    string    `json:"content" gorm:"not null"`
	IsRead     bool      `json:"is_read" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Sender   User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Receiver User `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
}

func (Message) TableName() string {
	return "messages"
}
