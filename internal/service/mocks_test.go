package service

import (
	"context"

	"animehub/internal/aggregate"
	"animehub/internal/models"

	"github.com/stretchr/testify/mock"
)

// Repository mocks shared by the service tests.

type MockAnimeRepository struct {
	mock.Mock
}

func (m *MockAnimeRepository) ListRows(ctx context.Context, limit, offset int, status string) ([]aggregate.AnimePostRow, error) {
	args := m.Called(ctx, limit, offset, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]aggregate.AnimePostRow), args.Error(1)
}

func (m *MockAnimeRepository) GetRows(ctx context.Context, id int64) ([]aggregate.AnimePostRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]aggregate.AnimePostRow), args.Error(1)
}

func (m *MockAnimeRepository) SearchRows(ctx context.Context, query string, tagIDs []int64) ([]aggregate.AnimePostRow, error) {
	args := m.Called(ctx, query, tagIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]aggregate.AnimePostRow), args.Error(1)
}

func (m *MockAnimeRepository) PendingRows(ctx context.Context) ([]aggregate.AnimePostRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]aggregate.AnimePostRow), args.Error(1)
}

func (m *MockAnimeRepository) FavoriteRows(ctx context.Context, userID string) ([]aggregate.AnimePostRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]aggregate.AnimePostRow), args.Error(1)
}

func (m *MockAnimeRepository) GetByID(ctx context.Context, id int64) (*models.AnimePost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnimePost), args.Error(1)
}

func (m *MockAnimeRepository) Create(ctx context.Context, post *models.AnimePost, authorID string, tagIDs []int64) error {
	args := m.Called(ctx, post, authorID, tagIDs)
	return args.Error(0)
}

func (m *MockAnimeRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.AnimePost, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnimePost), args.Error(1)
}

func (m *MockAnimeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAnimeRepository) Approve(ctx context.Context, id int64, approverID string) (*models.AnimePost, error) {
	args := m.Called(ctx, id, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnimePost), args.Error(1)
}

func (m *MockAnimeRepository) Reject(ctx context.Context, id int64) (*models.AnimePost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnimePost), args.Error(1)
}

func (m *MockAnimeRepository) IncrementViewCount(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) GetOrCreateByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetForAnime(ctx context.Context, animePostID int64) ([]models.Review, error) {
	args := m.Called(ctx, animePostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.Review, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64, authorID string) (bool, error) {
	args := m.Called(ctx, id, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) Stats(ctx context.Context, animePostID int64) (aggregate.ReviewStats, error) {
	args := m.Called(ctx, animePostID)
	return args.Get(0).(aggregate.ReviewStats), args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Toggle(ctx context.Context, userID string, animePostID int64) (bool, error) {
	args := m.Called(ctx, userID, animePostID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID string, animePostID int64) (bool, error) {
	args := m.Called(ctx, userID, animePostID)
	return args.Bool(0), args.Error(1)
}

type MockForumRepository struct {
	mock.Mock
}

func (m *MockForumRepository) ListRows(ctx context.Context, viewerID *string) ([]aggregate.ForumRow, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]aggregate.ForumRow), args.Error(1)
}

func (m *MockForumRepository) GetRow(ctx context.Context, id int64, viewerID *string) (*aggregate.ForumRow, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*aggregate.ForumRow), args.Error(1)
}

func (m *MockForumRepository) GetByID(ctx context.Context, id int64) (*models.Forum, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Forum), args.Error(1)
}

func (m *MockForumRepository) Create(ctx context.Context, forum *models.Forum, creatorID string) error {
	args := m.Called(ctx, forum, creatorID)
	return args.Error(0)
}

func (m *MockForumRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.Forum, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Forum), args.Error(1)
}

func (m *MockForumRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockForumRepository) Join(ctx context.Context, forumID int64, userID, role string) (bool, error) {
	args := m.Called(ctx, forumID, userID, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockForumRepository) Leave(ctx context.Context, forumID int64, userID string) (bool, error) {
	args := m.Called(ctx, forumID, userID)
	return args.Bool(0), args.Error(1)
}

type MockForumPostRepository struct {
	mock.Mock
}

func (m *MockForumPostRepository) List(ctx context.Context, forumID int64, limit, offset int) ([]models.ForumPost, error) {
	args := m.Called(ctx, forumID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ForumPost), args.Error(1)
}

func (m *MockForumPostRepository) GetByID(ctx context.Context, id int64) (*models.ForumPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumPost), args.Error(1)
}

func (m *MockForumPostRepository) Create(ctx context.Context, post *models.ForumPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockForumPostRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.ForumPost, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumPost), args.Error(1)
}

func (m *MockForumPostRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockForumPostRepository) Pin(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockForumPostRepository) Lock(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockForumPostRepository) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReplyRepository struct {
	mock.Mock
}

func (m *MockReplyRepository) ListForPost(ctx context.Context, postID int64) ([]models.ForumReply, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ForumReply), args.Error(1)
}

func (m *MockReplyRepository) Create(ctx context.Context, reply *models.ForumReply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

func (m *MockReplyRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.ForumReply, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumReply), args.Error(1)
}

func (m *MockReplyRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) RowsForViewer(ctx context.Context, viewerID string) ([]models.Message, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) Window(ctx context.Context, viewerID, otherID string, limit, offset int) ([]models.Message, error) {
	args := m.Called(ctx, viewerID, otherID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) Send(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, senderID, receiverID string) error {
	args := m.Called(ctx, senderID, receiverID)
	return args.Error(0)
}

func (m *MockMessageRepository) UnreadTotal(ctx context.Context, viewerID string) (int64, error) {
	args := m.Called(ctx, viewerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
