package repository

import (
	"context"
	"errors"
	"fmt"

	"animehub/internal/models"

	"gorm.io/gorm"
)

type ForumPostRepository interface {
	List(ctx context.Context, forumID int64, limit, offset int) ([]models.ForumPost, error)
	GetByID(ctx context.Context, id int64) (*models.ForumPost, error)
	Create(ctx context.Context, post *models.ForumPost) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.ForumPost, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Pin(ctx context.Context, id int64) (bool, error)
	Lock(ctx context.Context, id int64) (bool, error)
	IncrementViews(ctx context.Context, id int64) error
}

type forumPostRepository struct {
	db *gorm.DB
}

func NewForumPostRepository(db *gorm.DB) ForumPostRepository {
	return &forumPostRepository{db: db}
}

// List pages a forum's posts: pinned threads first, the rest by most
// recent activity (last reply, falling back to creation time for threads
// nobody replied to yet).
func (r *forumPostRepository) List(ctx context.Context, forumID int64, limit, offset int) ([]models.ForumPost, error) {
	var posts []models.ForumPost
	err := r.db.WithContext(ctx).
		Where("forum_id = ?", forumID).
		Preload("Author").
		Preload("Forum").
		Order("is_pinned DESC").
		Order("COALESCE(last_reply_at, created_at) DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list forum posts: %w", err)
	}
	return posts, nil
}

func (r *forumPostRepository) GetByID(ctx context.Context, id int64) (*models.ForumPost, error) {
	var post models.ForumPost
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Forum").
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *forumPostRepository) Create(ctx context.Context, post *models.ForumPost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("create forum post: %w", err)
	}
	return nil
}

func (r *forumPostRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.ForumPost, error) {
	res := r.db.WithContext(ctx).Model(&models.ForumPost{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update forum post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *forumPostRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.ForumPost{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete forum post: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *forumPostRepository) Pin(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.ForumPost{}).
		Where("id = ?", id).
		Update("is_pinned", true)
	if res.Error != nil {
		return false, fmt.Errorf("pin forum post: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *forumPostRepository) Lock(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.ForumPost{}).
		Where("id = ?", id).
		Update("is_locked", true)
	if res.Error != nil {
		return false, fmt.Errorf("lock forum post: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *forumPostRepository) IncrementViews(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&models.ForumPost{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
