package aggregate

import (
	"time"

	"animehub/internal/models"
)

// Flat row shapes produced by the repository join queries. One row per
// (parent x matched child) tuple; child columns are nil when the parent
// matched nothing (outer-join semantics), so childless parents still
// arrive here as a single row.

// AnimePostRow is one (anime post, author, tag-or-null) join row. Posts
// with several tags repeat across rows; the fold re-groups them.
type AnimePostRow struct {
	PostID      int64
	Title       string
	Description string
	ImageURL    *string
	Year        *int
	Type        string
	Studio      *string
	Status      string
	AuthorID    string
	ApprovedBy  *string
	ViewCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	AuthorEmail     *string
	AuthorFirstName *string
	AuthorLastName  *string
	AuthorImageURL  *string
	AuthorIsAdmin   bool

	TagID    *int64
	TagName  *string
	TagColor *string
}

func (r AnimePostRow) post() models.AnimePost {
	return models.AnimePost{
		ID:          r.PostID,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Year:        r.Year,
		Type:        r.Type,
		Studio:      r.Studio,
		Status:      r.Status,
		AuthorID:    r.AuthorID,
		ApprovedBy:  r.ApprovedBy,
		ViewCount:   r.ViewCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r AnimePostRow) author() models.User {
	return models.User{
		ID:              r.AuthorID,
		Email:           r.AuthorEmail,
		FirstName:       r.AuthorFirstName,
		LastName:        r.AuthorLastName,
		ProfileImageURL: r.AuthorImageURL,
		IsAdmin:         r.AuthorIsAdmin,
	}
}

func (r AnimePostRow) tag() *models.Tag {
	if r.TagID == nil {
		return nil
	}
	t := models.Tag{ID: *r.TagID}
	if r.TagName != nil {
		t.Name = *r.TagName
	}
	if r.TagColor != nil {
		t.Color = *r.TagColor
	}
	return &t
}

// ForumRow is one already-grouped forum listing row: the fetch query
// groups by forum id, so exactly one row arrives per forum.
type ForumRow struct {
	ForumID     int64
	Name        string
	Description *string
	ImageURL    *string
	IsPrivate   bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CreatorEmail     *string
	CreatorFirstName *string
	CreatorLastName  *string
	CreatorImageURL  *string
	CreatorIsAdmin   bool

	PostCount   *int64
	MemberCount *int64
	UserRole    *string
}

func (r ForumRow) forum() models.Forum {
	return models.Forum{
		ID:          r.ForumID,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		IsPrivate:   r.IsPrivate,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r ForumRow) creator() models.User {
	return models.User{
		ID:              r.CreatedBy,
		Email:           r.CreatorEmail,
		FirstName:       r.CreatorFirstName,
		LastName:        r.CreatorLastName,
		ProfileImageURL: r.CreatorImageURL,
		IsAdmin:         r.CreatorIsAdmin,
	}
}
