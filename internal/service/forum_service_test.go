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

func newForumServiceWithMocks() (ForumService, *MockForumRepository, *MockForumPostRepository, *MockReplyRepository) {
	forumRepo := new(MockForumRepository)
	postRepo := new(MockForumPostRepository)
	replyRepo := new(MockReplyRepository)
	svc := NewForumService(forumRepo, postRepo, replyRepo)
	return svc, forumRepo, postRepo, replyRepo
}

func TestForumList_PassesViewerThrough(t *testing.T) {
	svc, forumRepo, _, _ := newForumServiceWithMocks()

	viewer := "u1"
	role := "member"
	count := int64(5)
	forumRepo.On("ListRows", mock.Anything, &viewer).Return([]aggregate.ForumRow{
		{ForumID: 1, Name: "General", CreatedBy: "u9", PostCount: &count, MemberCount: &count, UserRole: &role},
	}, nil)

	forums, err := svc.List(context.Background(), &viewer)

	assert.NoError(t, err)
	assert.Len(t, forums, 1)
	assert.Equal(t, int64(5), forums[0].MemberCount)
	assert.Equal(t, "member", *forums[0].UserRole)
}

func TestForumList_AnonymousViewerGetsNilRole(t *testing.T) {
	svc, forumRepo, _, _ := newForumServiceWithMocks()

	forumRepo.On("ListRows", mock.Anything, (*string)(nil)).Return([]aggregate.ForumRow{
		{ForumID: 1, Name: "General", CreatedBy: "u9"},
	}, nil)

	forums, err := svc.List(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, forums, 1)
	assert.Nil(t, forums[0].UserRole)
	assert.Equal(t, int64(0), forums[0].PostCount)
}

func TestJoin_UnknownForumRejected(t *testing.T) {
	svc, forumRepo, _, _ := newForumServiceWithMocks()

	forumRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

	_, err := svc.Join(context.Background(), 404, "u1")

	assert.ErrorIs(t, err, ErrForumNotFound)
	forumRepo.AssertNotCalled(t, "Join")
}

func TestJoin_RepeatJoinIsNoOp(t *testing.T) {
	svc, forumRepo, _, _ := newForumServiceWithMocks()

	forumRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Forum{ID: 1, Name: "General"}, nil)
	forumRepo.On("Join", mock.Anything, int64(1), "u1", models.RoleMember).Return(true, nil).Once()
	forumRepo.On("Join", mock.Anything, int64(1), "u1", models.RoleMember).Return(false, nil).Once()

	joined, err := svc.Join(context.Background(), 1, "u1")
	assert.NoError(t, err)
	assert.True(t, joined)

	joined, err = svc.Join(context.Background(), 1, "u1")
	assert.NoError(t, err)
	assert.False(t, joined)
}

func TestCreateReply_LockedThreadRejected(t *testing.T) {
	svc, _, postRepo, replyRepo := newForumServiceWithMocks()

	postRepo.On("GetByID", mock.Anything, int64(10)).Return(&models.ForumPost{ID: 10, IsLocked: true}, nil)

	_, err := svc.CreateReply(context.Background(), 10, "u1", &dto.CreateReplyDTO{Content: "hi"})

	assert.ErrorIs(t, err, ErrPostLocked)
	replyRepo.AssertNotCalled(t, "Create")
}

func TestCreateReply_UnknownThreadRejected(t *testing.T) {
	svc, _, postRepo, replyRepo := newForumServiceWithMocks()

	postRepo.On("GetByID", mock.Anything, int64(10)).Return(nil, nil)

	_, err := svc.CreateReply(context.Background(), 10, "u1", &dto.CreateReplyDTO{Content: "hi"})

	assert.ErrorIs(t, err, ErrPostNotFound)
	replyRepo.AssertNotCalled(t, "Create")
}

func TestCreateReply_NestsUnderParent(t *testing.T) {
	svc, _, postRepo, replyRepo := newForumServiceWithMocks()

	parentID := int64(3)
	postRepo.On("GetByID", mock.Anything, int64(10)).Return(&models.ForumPost{ID: 10}, nil)
	replyRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ForumReply")).Return(nil)

	reply, err := svc.CreateReply(context.Background(), 10, "u1", &dto.CreateReplyDTO{
		Content:       "nested",
		ParentReplyID: &parentID,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), reply.PostID)
	assert.Equal(t, &parentID, reply.ParentReplyID)
	replyRepo.AssertExpectations(t)
}

func TestPosts_LiftsAuthorAndForum(t *testing.T) {
	svc, _, postRepo, _ := newForumServiceWithMocks()

	postRepo.On("List", mock.Anything, int64(1), 20, 0).Return([]models.ForumPost{
		{
			ID:       5,
			ForumID:  1,
			Title:    "Thread",
			AuthorID: "u2",
			Author:   models.User{ID: "u2"},
			Forum:    models.Forum{ID: 1, Name: "General"},
		},
	}, nil)

	posts, err := svc.Posts(context.Background(), 1, 0, 0)

	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "u2", posts[0].Author.ID)
	assert.Equal(t, "General", posts[0].Forum.Name)
	// Embedded associations are cleared once lifted.
	assert.Empty(t, posts[0].ForumPost.Author.ID)
}
