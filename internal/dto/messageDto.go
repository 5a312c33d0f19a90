package dto

// SendMessageDTO for sending a direct message.
type SendMessageDTO struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required,min=1,max=10000"`
}
