package service

import (
	"context"
	"errors"

	"animehub/internal/dto"
	"animehub/internal/models"
	"animehub/internal/repository"
)

var ErrAnimeNotFound = errors.New("anime post not found")

type ReviewService interface {
	ListForAnime(ctx context.Context, animePostID int64) ([]models.ReviewWithAuthor, error)
	Create(ctx context.Context, animePostID int64, authorID string, d *dto.CreateReviewDTO) (*models.Review, error)
	Update(ctx context.Context, id int64, d *dto.UpdateReviewDTO) (*models.Review, error)
	Delete(ctx context.Context, id int64, authorID string) (bool, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	animeRepo  repository.AnimeRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, animeRepo repository.AnimeRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, animeRepo: animeRepo}
}

func (s *reviewService) ListForAnime(ctx context.Context, animePostID int64) ([]models.ReviewWithAuthor, error) {
	reviews, err := s.reviewRepo.GetForAnime(ctx, animePostID)
	if err != nil {
		return nil, err
	}

	result := make([]models.ReviewWithAuthor, 0, len(reviews))
	for _, r := range reviews {
		author := r.Author
		r.Author = models.User{}
		result = append(result, models.ReviewWithAuthor{Review: r, Author: author})
	}
	return result, nil
}

func (s *reviewService) Create(ctx context.Context, animePostID int64, authorID string, d *dto.CreateReviewDTO) (*models.Review, error) {
	post, err := s.animeRepo.GetByID(ctx, animePostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrAnimeNotFound
	}

	review := &models.Review{
		AnimePostID: animePostID,
		AuthorID:    authorID,
		Rating:      d.Rating,
		Title:       d.Title,
		Content:     d.Content,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, id int64, d *dto.UpdateReviewDTO) (*models.Review, error) {
	fields := d.Fields()
	if len(fields) == 0 {
		return nil, nil
	}
	return s.reviewRepo.Update(ctx, id, fields)
}

func (s *reviewService) Delete(ctx context.Context, id int64, authorID string) (bool, error) {
	return s.reviewRepo.Delete(ctx, id, authorID)
}
