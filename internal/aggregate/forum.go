package aggregate

import (
	"animehub/internal/models"
)

// ForumDetails maps pre-grouped forum rows onto the read model. The
// underlying query already groups by forum id and computes the counts with
// COUNT(DISTINCT ...), so there is nothing to deduplicate here; nil counts
// default to 0 and the role stays nil for anonymous viewers and
// non-members.
func ForumDetails(rows []ForumRow) []models.ForumWithDetails {
	result := make([]models.ForumWithDetails, 0, len(rows))
	for _, row := range rows {
		detail := models.ForumWithDetails{
			Forum:    row.forum(),
			Creator:  row.creator(),
			UserRole: row.UserRole,
		}
		if row.PostCount != nil {
			detail.PostCount = *row.PostCount
		}
		if row.MemberCount != nil {
			detail.MemberCount = *row.MemberCount
		}
		result = append(result, detail)
	}
	return result
}
