package aggregate

import (
	"testing"
	"time"

	"animehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepliesWithAuthors_KeepsChronologicalOrder(t *testing.T) {
	base := time.Now()
	replies := []models.ForumReply{
		{ID: 1, PostID: 9, Content: "first", AuthorID: "a", CreatedAt: base},
		{ID: 2, PostID: 9, Content: "second", AuthorID: "b", CreatedAt: base.Add(time.Minute)},
	}

	details := RepliesWithAuthors(replies)
	require.Len(t, details, 2)
	assert.Equal(t, int64(1), details[0].ID)
	assert.Equal(t, int64(2), details[1].ID)
}

// Parent references survive the flattening untouched so a consumer can
// rebuild the reply tree.
func TestRepliesWithAuthors_ParentLinkageLossless(t *testing.T) {
	parent := int64(1)
	replies := []models.ForumReply{
		{ID: 1, PostID: 9, AuthorID: "a"},
		{ID: 2, PostID: 9, AuthorID: "b", ParentReplyID: &parent},
	}

	details := RepliesWithAuthors(replies)
	require.Len(t, details, 2)

	assert.Nil(t, details[0].ParentReplyID)
	require.NotNil(t, details[1].ParentReplyID)
	assert.Equal(t, int64(1), *details[1].ParentReplyID)
}

func TestRepliesWithAuthors_LiftsAuthor(t *testing.T) {
	replies := []models.ForumReply{
		{ID: 1, PostID: 9, AuthorID: "a", Author: models.User{ID: "a", IsAdmin: true}},
	}

	details := RepliesWithAuthors(replies)
	require.Len(t, details, 1)
	assert.Equal(t, "a", details[0].Author.ID)
	assert.True(t, details[0].Author.IsAdmin)
}
