package service

import (
	"context"
	"testing"

	"animehub/internal/aggregate"
	"animehub/internal/dto"
	"animehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAnimeServiceWithMocks() (AnimeService, *MockAnimeRepository, *MockTagRepository, *MockReviewRepository, *MockFavoriteRepository) {
	animeRepo := new(MockAnimeRepository)
	tagRepo := new(MockTagRepository)
	reviewRepo := new(MockReviewRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := NewAnimeService(animeRepo, tagRepo, reviewRepo, favoriteRepo)
	return svc, animeRepo, tagRepo, reviewRepo, favoriteRepo
}

func TestList_DefaultsToApprovedPageOfTwenty(t *testing.T) {
	svc, animeRepo, _, _, _ := newAnimeServiceWithMocks()

	animeRepo.On("ListRows", mock.Anything, 20, 0, models.StatusApproved).
		Return([]aggregate.AnimePostRow{}, nil)

	posts, err := svc.List(context.Background(), 0, 0, "")

	assert.NoError(t, err)
	assert.Empty(t, posts)
	animeRepo.AssertExpectations(t)
}

func TestList_NegativePageRejected(t *testing.T) {
	svc, animeRepo, _, _, _ := newAnimeServiceWithMocks()

	_, err := svc.List(context.Background(), -1, 0, "")
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = svc.List(context.Background(), 10, -5, "")
	assert.ErrorIs(t, err, ErrInvalidPage)

	animeRepo.AssertNotCalled(t, "ListRows")
}

func TestList_FoldsRowsAndAttachesStats(t *testing.T) {
	svc, animeRepo, _, reviewRepo, _ := newAnimeServiceWithMocks()

	tagID := int64(7)
	tagName := "mecha"
	rows := []aggregate.AnimePostRow{
		{PostID: 1, Title: "First", Type: "TV", AuthorID: "u1", TagID: &tagID, TagName: &tagName},
		{PostID: 2, Title: "Second", Type: "Movie", AuthorID: "u2"},
	}

	animeRepo.On("ListRows", mock.Anything, 20, 0, models.StatusApproved).Return(rows, nil)
	reviewRepo.On("Stats", mock.Anything, int64(1)).Return(aggregate.ReviewStats{Average: 4.5, Count: 2}, nil)
	reviewRepo.On("Stats", mock.Anything, int64(2)).Return(aggregate.ReviewStats{}, nil)

	posts, err := svc.List(context.Background(), 0, 0, "")

	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, 4.5, posts[0].AverageRating)
	assert.Equal(t, int64(2), posts[0].ReviewCount)
	assert.Len(t, posts[0].Tags, 1)
	assert.Equal(t, 0.0, posts[1].AverageRating)
	assert.Equal(t, int64(0), posts[1].ReviewCount)
	reviewRepo.AssertExpectations(t)
}

func TestGet_AbsentPostReturnsNil(t *testing.T) {
	svc, animeRepo, _, _, _ := newAnimeServiceWithMocks()

	animeRepo.On("GetRows", mock.Anything, int64(99)).Return([]aggregate.AnimePostRow{}, nil)

	post, err := svc.Get(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, post)
}

func TestCreate_ResolvesTagNamesBeforeStoring(t *testing.T) {
	svc, animeRepo, tagRepo, _, _ := newAnimeServiceWithMocks()

	tagRepo.On("GetOrCreateByNames", mock.Anything, []string{"action", "isekai"}).
		Return([]models.Tag{{ID: 3, Name: "action"}, {ID: 9, Name: "isekai"}}, nil)
	animeRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.AnimePost"), "u1", []int64{3, 9}).
		Return(nil)

	post, err := svc.Create(context.Background(), &dto.CreateAnimeDTO{
		Title:       "New Show",
		Description: "desc",
		Type:        "TV",
		Tags:        []string{"action", "isekai"},
	}, "u1")

	assert.NoError(t, err)
	assert.Equal(t, "New Show", post.Title)
	tagRepo.AssertExpectations(t)
	animeRepo.AssertExpectations(t)
}

func TestApprove_AbsentPostReturnsNil(t *testing.T) {
	svc, animeRepo, _, _, _ := newAnimeServiceWithMocks()

	animeRepo.On("Approve", mock.Anything, int64(42), "admin1").Return(nil, nil)

	post, err := svc.Approve(context.Background(), 42, "admin1")

	assert.NoError(t, err)
	assert.Nil(t, post)
}

func TestToggleFavorite_ReportsNewState(t *testing.T) {
	svc, _, _, _, favoriteRepo := newAnimeServiceWithMocks()

	favoriteRepo.On("Toggle", mock.Anything, "u1", int64(5)).Return(true, nil).Once()
	favoriteRepo.On("Toggle", mock.Anything, "u1", int64(5)).Return(false, nil).Once()

	favorited, err := svc.ToggleFavorite(context.Background(), "u1", 5)
	assert.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = svc.ToggleFavorite(context.Background(), "u1", 5)
	assert.NoError(t, err)
	assert.False(t, favorited)
}
