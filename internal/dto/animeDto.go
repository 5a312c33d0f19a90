package dto

// CreateAnimeDTO for submitting a new anime post. Tag names are resolved
// to ids (creating missing tags) before the post is stored.
type CreateAnimeDTO struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"required"`
	ImageURL    *string  `json:"image_url,omitempty" binding:"omitempty,max=500"`
	Year        *int     `json:"year,omitempty" binding:"omitempty,min=1900,max=2100"`
	Type        string   `json:"type" binding:"required,max=20"`
	Studio      *string  `json:"studio,omitempty" binding:"omitempty,max=100"`
	Tags        []string `json:"tags,omitempty" binding:"omitempty,dive,min=1,max=50"`
}

// UpdateAnimeDTO for partial edits; nil fields stay untouched.
type UpdateAnimeDTO struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" binding:"omitempty,max=500"`
	Year        *int    `json:"year,omitempty" binding:"omitempty,min=1900,max=2100"`
	Type        *string `json:"type,omitempty" binding:"omitempty,max=20"`
	Studio      *string `json:"studio,omitempty" binding:"omitempty,max=100"`
}

// Fields returns the set columns for a partial update.
func (d *UpdateAnimeDTO) Fields() map[string]any {
	fields := map[string]any{}
	if d.Title != nil {
		fields["title"] = *d.Title
	}
	if d.Description != nil {
		fields["description"] = *d.Description
	}
	if d.ImageURL != nil {
		fields["image_url"] = *d.ImageURL
	}
	if d.Year != nil {
		fields["year"] = *d.Year
	}
	if d.Type != nil {
		fields["type"] = *d.Type
	}
	if d.Studio != nil {
		fields["studio"] = *d.Studio
	}
	return fields
}

// SearchAnimeDTO carries the search inputs from the query string.
type SearchAnimeDTO struct {
	Query  string  `form:"q" binding:"required,min=1"`
	TagIDs []int64 `form:"tags"`
}
