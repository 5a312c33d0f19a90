package dto

// CreateForumDTO for opening a new forum.
type CreateForumDTO struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" binding:"omitempty,max=500"`
	IsPrivate   bool    `json:"is_private"`
}

type UpdateForumDTO struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" binding:"omitempty,max=500"`
	IsPrivate   *bool   `json:"is_private,omitempty"`
}

func (d *UpdateForumDTO) Fields() map[string]any {
	fields := map[string]any{}
	if d.Name != nil {
		fields["name"] = *d.Name
	}
	if d.Description != nil {
		fields["description"] = *d.Description
	}
	if d.ImageURL != nil {
		fields["image_url"] = *d.ImageURL
	}
	if d.IsPrivate != nil {
		fields["is_private"] = *d.IsPrivate
	}
	return fields
}

// CreateForumPostDTO for starting a thread in a forum.
type CreateForumPostDTO struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required,min=1"`
}

type UpdateForumPostDTO struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Content *string `json:"content,omitempty" binding:"omitempty,min=1"`
}

func (d *UpdateForumPostDTO) Fields() map[string]any {
	fields := map[string]any{}
	if d.Title != nil {
		fields["title"] = *d.Title
	}
	if d.Content != nil {
		fields["content"] = *d.Content
	}
	return fields
}

// CreateReplyDTO for replying to a thread; ParentReplyID nests the reply
// under an earlier one.
type CreateReplyDTO struct {
	Content       string `json:"content" binding:"required,min=1,max=10000"`
	ParentReplyID *int64 `json:"parent_reply_id,omitempty"`
}

type UpdateReplyDTO struct {
	Content string `json:"content" binding:"required,min=1,max=10000"`
}
