package repository

import (
	"context"
	"fmt"

	"animehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Toggle(ctx context.Context, userID string, animePostID int64) (bool, error)
	Exists(ctx context.Context, userID string, animePostID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Toggle flips the favorite state and returns the new one. Both branches
// are single atomic statements: the delete reports through RowsAffected
// whether the pair existed, and the insert swallows a concurrent
// duplicate via ON CONFLICT DO NOTHING, so racing toggles cannot error.
func (r *favoriteRepository) Toggle(ctx context.Context, userID string, animePostID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND anime_post_id = ?", userID, animePostID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return false, fmt.Errorf("toggle favorite: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return false, nil // now not favorited
	}

	fav := models.Favorite{UserID: userID, AnimePostID: animePostID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav).Error
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	return true, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID string, animePostID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND anime_post_id = ?", userID, animePostID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("favorite exists: %w", err)
	}
	return count > 0, nil
}
