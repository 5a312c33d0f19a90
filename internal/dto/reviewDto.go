package dto

// CreateReviewDTO for reviewing an anime post. Ratings carry one decimal
// place in [0, 5].
type CreateReviewDTO struct {
	Rating  float64 `json:"rating" binding:"required,min=0,max=5"`
	Title   *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Content string  `json:"content" binding:"required,min=1,max=5000"`
}

// UpdateReviewDTO for editing an existing review.
type UpdateReviewDTO struct {
	Rating  *float64 `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	Title   *string  `json:"title,omitempty" binding:"omitempty,max=255"`
	Content *string  `json:"content,omitempty" binding:"omitempty,min=1,max=5000"`
}

func (d *UpdateReviewDTO) Fields() map[string]any {
	fields := map[string]any{}
	if d.Rating != nil {
		fields["rating"] = *d.Rating
	}
	if d.Title != nil {
		fields["title"] = *d.Title
	}
	if d.Content != nil {
		fields["content"] = *d.Content
	}
	return fields
}
