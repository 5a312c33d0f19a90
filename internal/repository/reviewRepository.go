package repository

import (
	"context"
	"errors"
	"fmt"

	"animehub/internal/aggregate"
	"animehub/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	GetForAnime(ctx context.Context, animePostID int64) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.Review, error)
	Delete(ctx context.Context, id int64, authorID string) (bool, error)
	Stats(ctx context.Context, animePostID int64) (aggregate.ReviewStats, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) GetForAnime(ctx context.Context, animePostID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("anime_post_id = ?", animePostID).
		Preload("Author").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.Review, error) {
	res := r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Delete removes a review only when the caller authored it.
func (r *reviewRepository) Delete(ctx context.Context, id int64, authorID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		Delete(&models.Review{})
	if res.Error != nil {
		return false, fmt.Errorf("delete review: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Stats computes the derived rating fields from live review rows. The
// average is coalesced so a post with no reviews reports 0, not NULL.
func (r *reviewRepository) Stats(ctx context.Context, animePostID int64) (aggregate.ReviewStats, error) {
	var out struct {
		Average float64
		Count   int64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(id) AS count").
		Where("anime_post_id = ?", animePostID).
		Scan(&out).Error
	if err != nil {
		return aggregate.ReviewStats{}, fmt.Errorf("review stats: %w", err)
	}
	return aggregate.ReviewStats{Average: out.Average, Count: out.Count}, nil
}
