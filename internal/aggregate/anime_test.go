package aggregate

import (
	"testing"
	"time"

	"animehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt64(v int64) *int64   { return &v }
func ptrString(v string) *string { return &v }

func noStats(postID int64) (ReviewStats, error) {
	return ReviewStats{}, nil
}

func animeRow(postID int64, createdAt time.Time, tagID *int64, tagName string) AnimePostRow {
	row := AnimePostRow{
		PostID:      postID,
		Title:       "post",
		Description: "desc",
		Type:        "TV",
		Status:      models.StatusApproved,
		AuthorID:    "author-1",
		CreatedAt:   createdAt,
	}
	if tagID != nil {
		row.TagID = tagID
		row.TagName = ptrString(tagName)
		row.TagColor = ptrString("#6366F1")
	}
	return row
}

func TestGroupAnimePosts_DeduplicatesTags(t *testing.T) {
	now := time.Now()
	rows := []AnimePostRow{
		animeRow(1, now, ptrInt64(10), "action"),
		animeRow(1, now, ptrInt64(11), "fantasy"),
		animeRow(1, now, ptrInt64(10), "action"), // duplicate join row
	}

	posts, err := GroupAnimePosts(rows, noStats)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	assert.Len(t, posts[0].Tags, 2)
	assert.Equal(t, int64(10), posts[0].Tags[0].ID)
	assert.Equal(t, int64(11), posts[0].Tags[1].ID)
	assert.Equal(t, "action", posts[0].Tags[0].Name)
}

func TestGroupAnimePosts_PreservesFirstSeenOrder(t *testing.T) {
	now := time.Now()
	rows := []AnimePostRow{
		animeRow(3, now, ptrInt64(1), "drama"),
		animeRow(1, now, nil, ""),
		animeRow(3, now, ptrInt64(2), "mecha"),
		animeRow(2, now, nil, ""),
	}

	posts, err := GroupAnimePosts(rows, noStats)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// the fold must not re-sort: the query's ordering decides
	assert.Equal(t, int64(3), posts[0].ID)
	assert.Equal(t, int64(1), posts[1].ID)
	assert.Equal(t, int64(2), posts[2].ID)
}

func TestGroupAnimePosts_TaglessPostSurvives(t *testing.T) {
	rows := []AnimePostRow{animeRow(5, time.Now(), nil, "")}

	posts, err := GroupAnimePosts(rows, noStats)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.NotNil(t, posts[0].Tags)
	assert.Empty(t, posts[0].Tags)
}

func TestGroupAnimePosts_ZeroReviewDefaults(t *testing.T) {
	rows := []AnimePostRow{animeRow(7, time.Now(), nil, "")}

	posts, err := GroupAnimePosts(rows, func(postID int64) (ReviewStats, error) {
		return ReviewStats{Average: 0, Count: 0}, nil
	})
	require.NoError(t, err)
	require.Len(t, posts, 1)

	assert.Equal(t, float64(0), posts[0].AverageRating)
	assert.Equal(t, int64(0), posts[0].ReviewCount)
}

func TestGroupAnimePosts_StatsFetchedOncePerPost(t *testing.T) {
	now := time.Now()
	rows := []AnimePostRow{
		animeRow(1, now, ptrInt64(10), "action"),
		animeRow(1, now, ptrInt64(11), "fantasy"),
		animeRow(2, now, nil, ""),
	}

	calls := map[int64]int{}
	_, err := GroupAnimePosts(rows, func(postID int64) (ReviewStats, error) {
		calls[postID]++
		return ReviewStats{}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[int64]int{1: 1, 2: 1}, calls)
}

// Two posts, one with reviews 4.0 and 5.0, one with none: the listing must
// carry (4.5, 2) and (0, 0) in query order.
func TestGroupAnimePosts_ReviewStatsScenario(t *testing.T) {
	now := time.Now()
	rows := []AnimePostRow{
		animeRow(1, now, nil, ""),
		animeRow(2, now.Add(-time.Hour), nil, ""),
	}

	stats := map[int64]ReviewStats{
		1: {Average: 4.5, Count: 2},
		2: {Average: 0, Count: 0},
	}
	posts, err := GroupAnimePosts(rows, func(postID int64) (ReviewStats, error) {
		return stats[postID], nil
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, 4.5, posts[0].AverageRating)
	assert.Equal(t, int64(2), posts[0].ReviewCount)
	assert.Equal(t, float64(0), posts[1].AverageRating)
	assert.Equal(t, int64(0), posts[1].ReviewCount)
}

func TestGroupAnimePosts_PanicsOnMissingPostReference(t *testing.T) {
	rows := []AnimePostRow{{PostID: 0}}

	assert.Panics(t, func() {
		_, _ = GroupAnimePosts(rows, noStats)
	})
}

func TestGroupAnimePosts_StatsErrorPropagates(t *testing.T) {
	rows := []AnimePostRow{animeRow(1, time.Now(), nil, "")}

	_, err := GroupAnimePosts(rows, func(postID int64) (ReviewStats, error) {
		return ReviewStats{}, assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}
