package repository

import (
	"context"
	"fmt"

	"animehub/internal/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	GetByNames(ctx context.Context, names []string) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	GetOrCreateByNames(ctx context.Context, names []string) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (r *tagRepository) GetByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	var tags []models.Tag
	if len(names) == 0 {
		return tags, nil
	}
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("get tags by names: %w", err)
	}
	return tags, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

// GetOrCreateByNames resolves tag names to rows, creating the ones that do
// not exist yet. Matching is exact and case-sensitive, so registering a
// post with an existing tag name reuses the existing tag id instead of
// producing a duplicate.
func (r *tagRepository) GetOrCreateByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	result := make([]models.Tag, 0, len(names))
	if len(names) == 0 {
		return result, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.Tag
		if err := tx.Where("name IN ?", names).Find(&existing).Error; err != nil {
			return fmt.Errorf("get tags by names: %w", err)
		}

		byName := make(map[string]models.Tag, len(existing))
		for _, t := range existing {
			byName[t.Name] = t
		}

		for _, name := range names {
			if _, ok := byName[name]; ok {
				continue
			}
			tag := models.Tag{Name: name}
			if err := tx.Create(&tag).Error; err != nil {
				return fmt.Errorf("create tag %q: %w", name, err)
			}
			byName[name] = tag
		}

		// keep the caller's name order, drop duplicates
		seen := make(map[string]bool, len(names))
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			result = append(result, byName[name])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
