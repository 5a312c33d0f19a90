package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForumDetails_PassesCountsThrough(t *testing.T) {
	rows := []ForumRow{
		{
			ForumID:     1,
			Name:        "seasonal",
			CreatedBy:   "creator-1",
			CreatedAt:   time.Now(),
			PostCount:   ptrInt64(3),
			MemberCount: ptrInt64(5),
		},
	}

	forums := ForumDetails(rows)
	require.Len(t, forums, 1)

	assert.Equal(t, int64(3), forums[0].PostCount)
	assert.Equal(t, int64(5), forums[0].MemberCount)
	assert.Nil(t, forums[0].UserRole)
}

func TestForumDetails_NilCountsDefaultToZero(t *testing.T) {
	rows := []ForumRow{{ForumID: 1, Name: "empty", CreatedBy: "c"}}

	forums := ForumDetails(rows)
	require.Len(t, forums, 1)

	assert.Equal(t, int64(0), forums[0].PostCount)
	assert.Equal(t, int64(0), forums[0].MemberCount)
}

func TestForumDetails_ViewerRolePassthrough(t *testing.T) {
	role := "moderator"
	rows := []ForumRow{
		{ForumID: 1, Name: "a", CreatedBy: "c", UserRole: &role},
		{ForumID: 2, Name: "b", CreatedBy: "c"},
	}

	forums := ForumDetails(rows)
	require.Len(t, forums, 2)

	require.NotNil(t, forums[0].UserRole)
	assert.Equal(t, "moderator", *forums[0].UserRole)
	assert.Nil(t, forums[1].UserRole)
}

func TestForumDetails_KeepsRowOrder(t *testing.T) {
	rows := []ForumRow{
		{ForumID: 2, Name: "second", CreatedBy: "c"},
		{ForumID: 1, Name: "first", CreatedBy: "c"},
	}

	forums := ForumDetails(rows)
	require.Len(t, forums, 2)
	assert.Equal(t, int64(2), forums[0].ID)
	assert.Equal(t, int64(1), forums[1].ID)
}
