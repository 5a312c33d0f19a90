package aggregate

import (
	"animehub/internal/models"
)

// RepliesWithAuthors annotates chronologically ordered reply rows with
// their authors. Replies stay a flat list: parent_reply_id is carried
// through losslessly and the nested tree, if anyone wants one, is built by
// the consumer from those references. Input order is preserved.
func RepliesWithAuthors(replies []models.ForumReply) []models.ForumReplyWithDetails {
	result := make([]models.ForumReplyWithDetails, 0, len(replies))
	for _, r := range replies {
		author := r.Author
		reply := r
		reply.Author = models.User{}
		result = append(result, models.ForumReplyWithDetails{
			ForumReply: reply,
			Author:     author,
		})
	}
	return result
}
