package service

import (
	"context"
	"errors"

	"animehub/internal/aggregate"
	"animehub/internal/dto"
	"animehub/internal/models"
	"animehub/internal/repository"
)

const defaultPageSize = 20

// ErrInvalidPage reports a negative limit or offset. Pagination inputs are
// supposed to be validated before they reach this layer, so hitting this
// is a caller bug.
var ErrInvalidPage = errors.New("limit and offset must be non-negative")

type AnimeService interface {
	List(ctx context.Context, limit, offset int, status string) ([]models.AnimePostWithDetails, error)
	Get(ctx context.Context, id int64) (*models.AnimePostWithDetails, error)
	Search(ctx context.Context, query string, tagIDs []int64) ([]models.AnimePostWithDetails, error)
	Create(ctx context.Context, d *dto.CreateAnimeDTO, authorID string) (*models.AnimePost, error)
	Update(ctx context.Context, id int64, d *dto.UpdateAnimeDTO) (*models.AnimePost, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Pending(ctx context.Context) ([]models.AnimePostWithDetails, error)
	Approve(ctx context.Context, id int64, approverID string) (*models.AnimePost, error)
	Reject(ctx context.Context, id int64) (*models.AnimePost, error)
	RecordView(ctx context.Context, id int64) error
	ToggleFavorite(ctx context.Context, userID string, animePostID int64) (bool, error)
	IsFavorited(ctx context.Context, userID string, animePostID int64) (bool, error)
	Favorites(ctx context.Context, userID string) ([]models.AnimePostWithDetails, error)
	Tags(ctx context.Context) ([]models.Tag, error)
}

type animeService struct {
	animeRepo    repository.AnimeRepository
	tagRepo      repository.TagRepository
	reviewRepo   repository.ReviewRepository
	favoriteRepo repository.FavoriteRepository
}

func NewAnimeService(
	animeRepo repository.AnimeRepository,
	tagRepo repository.TagRepository,
	reviewRepo repository.ReviewRepository,
	favoriteRepo repository.FavoriteRepository,
) AnimeService {
	return &animeService{
		animeRepo:    animeRepo,
		tagRepo:      tagRepo,
		reviewRepo:   reviewRepo,
		favoriteRepo: favoriteRepo,
	}
}

// details folds flat join rows into nested posts. The review stats come
// from one supplementary query per distinct post in the page; the fold
// guarantees the zero-review default of (0, 0).
func (s *animeService) details(ctx context.Context, rows []aggregate.AnimePostRow) ([]models.AnimePostWithDetails, error) {
	return aggregate.GroupAnimePosts(rows, func(postID int64) (aggregate.ReviewStats, error) {
		return s.reviewRepo.Stats(ctx, postID)
	})
}

// List returns one page of approved posts unless another status filter is
// given, newest first.
func (s *animeService) List(ctx context.Context, limit, offset int, status string) ([]models.AnimePostWithDetails, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidPage
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if status == "" {
		status = models.StatusApproved
	}

	rows, err := s.animeRepo.ListRows(ctx, limit, offset, status)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, rows)
}

// Get returns the nested post or nil when the id does not exist.
func (s *animeService) Get(ctx context.Context, id int64) (*models.AnimePostWithDetails, error) {
	rows, err := s.animeRepo.GetRows(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	posts, err := s.details(ctx, rows)
	if err != nil {
		return nil, err
	}
	return &posts[0], nil
}

func (s *animeService) Search(ctx context.Context, query string, tagIDs []int64) ([]models.AnimePostWithDetails, error) {
	rows, err := s.animeRepo.SearchRows(ctx, query, tagIDs)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, rows)
}

// Create resolves tag names to ids first — reusing existing tags, creating
// the rest — and then stores the post with its junction rows. The caller
// gets the canonical unaggregated entity back.
func (s *animeService) Create(ctx context.Context, d *dto.CreateAnimeDTO, authorID string) (*models.AnimePost, error) {
	tags, err := s.tagRepo.GetOrCreateByNames(ctx, d.Tags)
	if err != nil {
		return nil, err
	}
	tagIDs := make([]int64, 0, len(tags))
	for _, t := range tags {
		tagIDs = append(tagIDs, t.ID)
	}

	post := &models.AnimePost{
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Year:        d.Year,
		Type:        d.Type,
		Studio:      d.Studio,
	}
	if err := s.animeRepo.Create(ctx, post, authorID, tagIDs); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *animeService) Update(ctx context.Context, id int64, d *dto.UpdateAnimeDTO) (*models.AnimePost, error) {
	fields := d.Fields()
	if len(fields) == 0 {
		return s.animeRepo.GetByID(ctx, id)
	}
	return s.animeRepo.Update(ctx, id, fields)
}

func (s *animeService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.animeRepo.Delete(ctx, id)
}

func (s *animeService) Pending(ctx context.Context) ([]models.AnimePostWithDetails, error) {
	rows, err := s.animeRepo.PendingRows(ctx)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, rows)
}

func (s *animeService) Approve(ctx context.Context, id int64, approverID string) (*models.AnimePost, error) {
	return s.animeRepo.Approve(ctx, id, approverID)
}

func (s *animeService) Reject(ctx context.Context, id int64) (*models.AnimePost, error) {
	return s.animeRepo.Reject(ctx, id)
}

func (s *animeService) RecordView(ctx context.Context, id int64) error {
	return s.animeRepo.IncrementViewCount(ctx, id)
}

func (s *animeService) ToggleFavorite(ctx context.Context, userID string, animePostID int64) (bool, error) {
	return s.favoriteRepo.Toggle(ctx, userID, animePostID)
}

func (s *animeService) IsFavorited(ctx context.Context, userID string, animePostID int64) (bool, error) {
	return s.favoriteRepo.Exists(ctx, userID, animePostID)
}

func (s *animeService) Favorites(ctx context.Context, userID string) ([]models.AnimePostWithDetails, error) {
	rows, err := s.animeRepo.FavoriteRows(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, rows)
}

func (s *animeService) Tags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.GetAll(ctx)
}
