// Package aggregate folds flat, denormalized join rows into the nested
// read models the rest of the application consumes. Every function here is
// a pure fold over its input: first-seen order is preserved and nothing is
// re-sorted, so the caller's query ordering decides the final list order.
package aggregate

import (
	"animehub/internal/models"
)

// ReviewStats are the derived rating fields of a post. Average must be
// coalesced to 0 when the post has no reviews.
type ReviewStats struct {
	Average float64
	Count   int64
}

// ReviewStatsFunc supplies the supplementary per-post review aggregate.
// GroupAnimePosts calls it exactly once per distinct post id, on first
// encounter. Callers targeting higher throughput can back it with a single
// grouped query over the whole page instead of one query per post, as long
// as the zero-review default stays (0, 0).
type ReviewStatsFunc func(postID int64) (ReviewStats, error)

// GroupAnimePosts folds (post, author, tag-or-null) rows into one nested
// result per post. Tags are deduplicated by id in insertion order; posts
// keep the order their ids were first seen in.
func GroupAnimePosts(rows []AnimePostRow, statsFor ReviewStatsFunc) ([]models.AnimePostWithDetails, error) {
	posts := make(map[int64]*models.AnimePostWithDetails, len(rows))
	order := make([]int64, 0, len(rows))

	for _, row := range rows {
		if row.PostID == 0 {
			// The primary table is inner-joined; a row without a post
			// reference is a query bug, not data.
			panic("aggregate: anime post row with no post id")
		}

		entry, ok := posts[row.PostID]
		if !ok {
			stats, err := statsFor(row.PostID)
			if err != nil {
				return nil, err
			}
			entry = &models.AnimePostWithDetails{
				AnimePost:     row.post(),
				Author:        row.author(),
				Tags:          []models.Tag{},
				AverageRating: stats.Average,
				ReviewCount:   stats.Count,
			}
			posts[row.PostID] = entry
			order = append(order, row.PostID)
		}

		if tag := row.tag(); tag != nil && !hasTag(entry.Tags, tag.ID) {
			entry.Tags = append(entry.Tags, *tag)
		}
	}

	result := make([]models.AnimePostWithDetails, 0, len(order))
	for _, id := range order {
		result = append(result, *posts[id])
	}
	return result, nil
}

func hasTag(tags []models.Tag, id int64) bool {
	for _, t := range tags {
		if t.ID == id {
			return true
		}
	}
	return false
}
