package repository

import (
	"context"
	"errors"
	"fmt"

	"animehub/internal/models"

	"gorm.io/gorm"
)

type ReplyRepository interface {
	ListForPost(ctx context.Context, postID int64) ([]models.ForumReply, error)
	Create(ctx context.Context, reply *models.ForumReply) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.ForumReply, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type replyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) ListForPost(ctx context.Context, postID int64) ([]models.ForumReply, error) {
	var replies []models.ForumReply
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at ASC").
		Find(&replies).Error
	if err != nil {
		return nil, fmt.Errorf("list forum replies: %w", err)
	}
	return replies, nil
}

// Create inserts the reply and brings the parent post's denormalized
// reply_count / last_reply_at / last_reply_by along in the same
// transaction; the three fields move together or not at all.
func (r *replyRepository) Create(ctx context.Context, reply *models.ForumReply) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reply).Error; err != nil {
			return fmt.Errorf("create forum reply: %w", err)
		}
		err := tx.Model(&models.ForumPost{}).
			Where("id = ?", reply.PostID).
			Updates(map[string]any{
				"reply_count":   gorm.Expr("reply_count + 1"),
				"last_reply_at": reply.CreatedAt,
				"last_reply_by": reply.AuthorID,
			}).Error
		if err != nil {
			return fmt.Errorf("update parent post: %w", err)
		}
		return nil
	})
}

func (r *replyRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.ForumReply, error) {
	res := r.db.WithContext(ctx).Model(&models.ForumReply{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update forum reply: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var reply models.ForumReply
	err := r.db.WithContext(ctx).First(&reply, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *replyRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.ForumReply{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete forum reply: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
