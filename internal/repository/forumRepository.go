package repository

import (
	"context"
	"fmt"

	"animehub/internal/aggregate"
	"animehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The forum listing is grouped at the query level: one output row per
// forum, counts computed with COUNT(DISTINCT ...) so join duplication
// cannot inflate them. The memberships table is joined twice — once
// unfiltered for the member count, once filtered to the viewer for the
// role column. With a nil viewer the second join matches nothing and the
// role comes back NULL.
const forumRowSelect = `
	forums.id AS forum_id,
	forums.name,
	forums.description,
	forums.image_url,
	forums.is_private,
	forums.created_by,
	forums.created_at,
	forums.updated_at,
	users.email AS creator_email,
	users.first_name AS creator_first_name,
	users.last_name AS creator_last_name,
	users.profile_image_url AS creator_image_url,
	COALESCE(users.is_admin, FALSE) AS creator_is_admin,
	COUNT(DISTINCT forum_posts.id) AS post_count,
	COUNT(DISTINCT forum_memberships.user_id) AS member_count,
	viewer_membership.role AS user_role`

type ForumRepository interface {
	ListRows(ctx context.Context, viewerID *string) ([]aggregate.ForumRow, error)
	GetRow(ctx context.Context, id int64, viewerID *string) (*aggregate.ForumRow, error)
	GetByID(ctx context.Context, id int64) (*models.Forum, error)
	Create(ctx context.Context, forum *models.Forum, creatorID string) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.Forum, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Join(ctx context.Context, forumID int64, userID, role string) (bool, error)
	Leave(ctx context.Context, forumID int64, userID string) (bool, error)
}

type forumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

func (r *forumRepository) rowQuery(ctx context.Context, viewerID *string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("forums").
		Select(forumRowSelect).
		Joins("LEFT JOIN users ON users.id = forums.created_by").
		Joins("LEFT JOIN forum_posts ON forum_posts.forum_id = forums.id").
		Joins("LEFT JOIN forum_memberships ON forum_memberships.forum_id = forums.id").
		Joins("LEFT JOIN forum_memberships viewer_membership ON viewer_membership.forum_id = forums.id AND viewer_membership.user_id = ?", viewerID).
		Group("forums.id, users.id, viewer_membership.role")
}

func (r *forumRepository) ListRows(ctx context.Context, viewerID *string) ([]aggregate.ForumRow, error) {
	var rows []aggregate.ForumRow
	err := r.rowQuery(ctx, viewerID).
		Order("forums.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list forum rows: %w", err)
	}
	return rows, nil
}

func (r *forumRepository) GetRow(ctx context.Context, id int64, viewerID *string) (*aggregate.ForumRow, error) {
	var rows []aggregate.ForumRow
	err := r.rowQuery(ctx, viewerID).
		Where("forums.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get forum row: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *forumRepository) GetByID(ctx context.Context, id int64) (*models.Forum, error) {
	var forum models.Forum
	err := r.db.WithContext(ctx).First(&forum, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &forum, nil
}

// Create inserts the forum and enrolls the creator as its admin in the
// same transaction.
func (r *forumRepository) Create(ctx context.Context, forum *models.Forum, creatorID string) error {
	forum.CreatedBy = creatorID
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(forum).Error; err != nil {
			return fmt.Errorf("create forum: %w", err)
		}
		membership := models.ForumMembership{
			ForumID: forum.ID,
			UserID:  creatorID,
			Role:    models.RoleAdmin,
		}
		if err := tx.Create(&membership).Error; err != nil {
			return fmt.Errorf("enroll creator: %w", err)
		}
		return nil
	})
}

func (r *forumRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.Forum, error) {
	res := r.db.WithContext(ctx).Model(&models.Forum{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update forum: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *forumRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Forum{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete forum: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Join inserts the membership row; an existing membership is already the
// desired state and reports false instead of an error.
func (r *forumRepository) Join(ctx context.Context, forumID int64, userID, role string) (bool, error) {
	if role == "" {
		role = models.RoleMember
	}
	membership := models.ForumMembership{ForumID: forumID, UserID: userID, Role: role}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&membership)
	if res.Error != nil {
		return false, fmt.Errorf("join forum: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *forumRepository) Leave(ctx context.Context, forumID int64, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("forum_id = ? AND user_id = ?", forumID, userID).
		Delete(&models.ForumMembership{})
	if res.Error != nil {
		return false, fmt.Errorf("leave forum: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
