package repository

import (
	"context"
	"errors"
	"fmt"

	"animehub/internal/aggregate"
	"animehub/internal/models"

	"gorm.io/gorm"
)

// Column list shared by every anime listing join. One output row per
// (post x tag) pair; posts without tags come back with the tag columns
// NULL thanks to the LEFT JOINs, and the aggregate package folds the rows
// back together.
const animeRowSelect = `
	anime_posts.id AS post_id,
	anime_posts.title,
	anime_posts.description,
	anime_posts.image_url,
	anime_posts.year,
	anime_posts.type,
	anime_posts.studio,
	anime_posts.status,
	anime_posts.author_id,
	anime_posts.approved_by,
	anime_posts.view_count,
	anime_posts.created_at,
	anime_posts.updated_at,
	users.email AS author_email,
	users.first_name AS author_first_name,
	users.last_name AS author_last_name,
	users.profile_image_url AS author_image_url,
	COALESCE(users.is_admin, FALSE) AS author_is_admin,
	tags.id AS tag_id,
	tags.name AS tag_name,
	tags.color AS tag_color`

type AnimeRepository interface {
	ListRows(ctx context.Context, limit, offset int, status string) ([]aggregate.AnimePostRow, error)
	GetRows(ctx context.Context, id int64) ([]aggregate.AnimePostRow, error)
	SearchRows(ctx context.Context, query string, tagIDs []int64) ([]aggregate.AnimePostRow, error)
	PendingRows(ctx context.Context) ([]aggregate.AnimePostRow, error)
	FavoriteRows(ctx context.Context, userID string) ([]aggregate.AnimePostRow, error)
	GetByID(ctx context.Context, id int64) (*models.AnimePost, error)
	Create(ctx context.Context, post *models.AnimePost, authorID string, tagIDs []int64) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.AnimePost, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Approve(ctx context.Context, id int64, approverID string) (*models.AnimePost, error)
	Reject(ctx context.Context, id int64) (*models.AnimePost, error)
	IncrementViewCount(ctx context.Context, id int64) error
}

type animeRepository struct {
	db *gorm.DB
}

func NewAnimeRepository(db *gorm.DB) AnimeRepository {
	return &animeRepository{db: db}
}

func (r *animeRepository) baseRowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("anime_posts").
		Select(animeRowSelect).
		Joins("LEFT JOIN users ON users.id = anime_posts.author_id").
		Joins("LEFT JOIN anime_post_tags ON anime_post_tags.anime_post_id = anime_posts.id").
		Joins("LEFT JOIN tags ON tags.id = anime_post_tags.tag_id")
}

// ListRows fetches one page of flat listing rows, newest posts first.
// The window applies to join rows, matching the shape callers fold.
func (r *animeRepository) ListRows(ctx context.Context, limit, offset int, status string) ([]aggregate.AnimePostRow, error) {
	var rows []aggregate.AnimePostRow
	err := r.baseRowQuery(ctx).
		Where("anime_posts.status = ?", status).
		Order("anime_posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list anime rows: %w", err)
	}
	return rows, nil
}

func (r *animeRepository) GetRows(ctx context.Context, id int64) ([]aggregate.AnimePostRow, error) {
	var rows []aggregate.AnimePostRow
	err := r.baseRowQuery(ctx).
		Where("anime_posts.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get anime rows: %w", err)
	}
	return rows, nil
}

// SearchRows matches approved posts whose title contains the query,
// case-insensitively. When tag ids are given, only posts carrying every
// one of them qualify; the outer join still returns the full tag list of
// each qualifying post.
func (r *animeRepository) SearchRows(ctx context.Context, query string, tagIDs []int64) ([]aggregate.AnimePostRow, error) {
	q := r.baseRowQuery(ctx).
		Where("anime_posts.status = ?", models.StatusApproved).
		Where("anime_posts.title ILIKE ?", "%"+query+"%")

	if len(tagIDs) > 0 {
		sub := r.db.Table("anime_post_tags").
			Select("anime_post_id").
			Where("tag_id IN ?", tagIDs).
			Group("anime_post_id").
			Having("COUNT(DISTINCT tag_id) = ?", len(tagIDs))
		q = q.Where("anime_posts.id IN (?)", sub)
	}

	var rows []aggregate.AnimePostRow
	if err := q.Order("anime_posts.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("search anime rows: %w", err)
	}
	return rows, nil
}

// PendingRows lists submissions awaiting moderation, oldest first.
func (r *animeRepository) PendingRows(ctx context.Context) ([]aggregate.AnimePostRow, error) {
	var rows []aggregate.AnimePostRow
	err := r.baseRowQuery(ctx).
		Where("anime_posts.status = ?", models.StatusPending).
		Order("anime_posts.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("pending anime rows: %w", err)
	}
	return rows, nil
}

// FavoriteRows lists the posts a user favorited, most recently favorited
// first.
func (r *animeRepository) FavoriteRows(ctx context.Context, userID string) ([]aggregate.AnimePostRow, error) {
	var rows []aggregate.AnimePostRow
	err := r.db.WithContext(ctx).
		Table("favorites").
		Select(animeRowSelect).
		Joins("INNER JOIN anime_posts ON anime_posts.id = favorites.anime_post_id").
		Joins("LEFT JOIN users ON users.id = anime_posts.author_id").
		Joins("LEFT JOIN anime_post_tags ON anime_post_tags.anime_post_id = anime_posts.id").
		Joins("LEFT JOIN tags ON tags.id = anime_post_tags.tag_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("favorite anime rows: %w", err)
	}
	return rows, nil
}

func (r *animeRepository) GetByID(ctx context.Context, id int64) (*models.AnimePost, error) {
	var post models.AnimePost
	err := r.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts the post and its tag associations in one transaction so
// a failed junction insert never leaves an orphaned post.
func (r *animeRepository) Create(ctx context.Context, post *models.AnimePost, authorID string, tagIDs []int64) error {
	post.AuthorID = authorID
	post.Status = models.StatusPending

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return fmt.Errorf("create anime post: %w", err)
		}
		if len(tagIDs) == 0 {
			return nil
		}
		junctions := make([]models.AnimePostTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			junctions = append(junctions, models.AnimePostTag{AnimePostID: post.ID, TagID: tagID})
		}
		if err := tx.Create(&junctions).Error; err != nil {
			return fmt.Errorf("associate tags: %w", err)
		}
		return nil
	})
}

func (r *animeRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.AnimePost, error) {
	res := r.db.WithContext(ctx).Model(&models.AnimePost{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update anime post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *animeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.AnimePost{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete anime post: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Approve flips a post to approved and records who approved it. A missing
// id is reported as an absent value, never an error.
func (r *animeRepository) Approve(ctx context.Context, id int64, approverID string) (*models.AnimePost, error) {
	res := r.db.WithContext(ctx).Model(&models.AnimePost{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      models.StatusApproved,
			"approved_by": approverID,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("approve anime post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *animeRepository) Reject(ctx context.Context, id int64) (*models.AnimePost, error) {
	res := r.db.WithContext(ctx).Model(&models.AnimePost{}).
		Where("id = ?", id).
		Update("status", models.StatusRejected)
	if res.Error != nil {
		return nil, fmt.Errorf("reject anime post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// IncrementViewCount is a fire-and-forget monotonic bump; lost updates
// under concurrency are acceptable.
func (r *animeRepository) IncrementViewCount(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&models.AnimePost{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
