package service

import (
	"context"
	"errors"

	"animehub/internal/aggregate"
	"animehub/internal/dto"
	"animehub/internal/models"
	"animehub/internal/repository"
)

var (
	ErrForumNotFound = errors.New("forum not found")
	ErrPostNotFound  = errors.New("forum post not found")
	ErrPostLocked    = errors.New("forum post is locked")
)

type ForumService interface {
	List(ctx context.Context, viewerID *string) ([]models.ForumWithDetails, error)
	Get(ctx context.Context, id int64, viewerID *string) (*models.ForumWithDetails, error)
	Create(ctx context.Context, d *dto.CreateForumDTO, creatorID string) (*models.Forum, error)
	Update(ctx context.Context, id int64, d *dto.UpdateForumDTO) (*models.Forum, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Join(ctx context.Context, forumID int64, userID string) (bool, error)
	Leave(ctx context.Context, forumID int64, userID string) (bool, error)

	Posts(ctx context.Context, forumID int64, limit, offset int) ([]models.ForumPostWithDetails, error)
	GetPost(ctx context.Context, id int64) (*models.ForumPostWithDetails, error)
	CreatePost(ctx context.Context, forumID int64, authorID string, d *dto.CreateForumPostDTO) (*models.ForumPost, error)
	UpdatePost(ctx context.Context, id int64, d *dto.UpdateForumPostDTO) (*models.ForumPost, error)
	DeletePost(ctx context.Context, id int64) (bool, error)
	PinPost(ctx context.Context, id int64) (bool, error)
	LockPost(ctx context.Context, id int64) (bool, error)
	RecordPostView(ctx context.Context, id int64) error

	Replies(ctx context.Context, postID int64) ([]models.ForumReplyWithDetails, error)
	CreateReply(ctx context.Context, postID int64, authorID string, d *dto.CreateReplyDTO) (*models.ForumReply, error)
	UpdateReply(ctx context.Context, id int64, d *dto.UpdateReplyDTO) (*models.ForumReply, error)
	DeleteReply(ctx context.Context, id int64) (bool, error)
}

type forumService struct {
	forumRepo repository.ForumRepository
	postRepo  repository.ForumPostRepository
	replyRepo repository.ReplyRepository
}

func NewForumService(
	forumRepo repository.ForumRepository,
	postRepo repository.ForumPostRepository,
	replyRepo repository.ReplyRepository,
) ForumService {
	return &forumService{
		forumRepo: forumRepo,
		postRepo:  postRepo,
		replyRepo: replyRepo,
	}
}

// List returns every forum with its derived counts; when a viewer id is
// supplied their membership role rides along, otherwise the role is nil.
func (s *forumService) List(ctx context.Context, viewerID *string) ([]models.ForumWithDetails, error) {
	rows, err := s.forumRepo.ListRows(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return aggregate.ForumDetails(rows), nil
}

func (s *forumService) Get(ctx context.Context, id int64, viewerID *string) (*models.ForumWithDetails, error) {
	row, err := s.forumRepo.GetRow(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	details := aggregate.ForumDetails([]aggregate.ForumRow{*row})
	return &details[0], nil
}

func (s *forumService) Create(ctx context.Context, d *dto.CreateForumDTO, creatorID string) (*models.Forum, error) {
	forum := &models.Forum{
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		IsPrivate:   d.IsPrivate,
	}
	if err := s.forumRepo.Create(ctx, forum, creatorID); err != nil {
		return nil, err
	}
	return forum, nil
}

func (s *forumService) Update(ctx context.Context, id int64, d *dto.UpdateForumDTO) (*models.Forum, error) {
	fields := d.Fields()
	if len(fields) == 0 {
		return s.forumRepo.GetByID(ctx, id)
	}
	return s.forumRepo.Update(ctx, id, fields)
}

func (s *forumService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.forumRepo.Delete(ctx, id)
}

func (s *forumService) Join(ctx context.Context, forumID int64, userID string) (bool, error) {
	forum, err := s.forumRepo.GetByID(ctx, forumID)
	if err != nil {
		return false, err
	}
	if forum == nil {
		return false, ErrForumNotFound
	}
	return s.forumRepo.Join(ctx, forumID, userID, models.RoleMember)
}

func (s *forumService) Leave(ctx context.Context, forumID int64, userID string) (bool, error) {
	return s.forumRepo.Leave(ctx, forumID, userID)
}

func (s *forumService) Posts(ctx context.Context, forumID int64, limit, offset int) ([]models.ForumPostWithDetails, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidPage
	}
	if limit == 0 {
		limit = defaultPageSize
	}

	posts, err := s.postRepo.List(ctx, forumID, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]models.ForumPostWithDetails, 0, len(posts))
	for _, p := range posts {
		result = append(result, liftForumPost(p))
	}
	return result, nil
}

func (s *forumService) GetPost(ctx context.Context, id int64) (*models.ForumPostWithDetails, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	details := liftForumPost(*post)
	return &details, nil
}

func (s *forumService) CreatePost(ctx context.Context, forumID int64, authorID string, d *dto.CreateForumPostDTO) (*models.ForumPost, error) {
	forum, err := s.forumRepo.GetByID(ctx, forumID)
	if err != nil {
		return nil, err
	}
	if forum == nil {
		return nil, ErrForumNotFound
	}

	post := &models.ForumPost{
		ForumID:  forumID,
		Title:    d.Title,
		Content:  d.Content,
		AuthorID: authorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *forumService) UpdatePost(ctx context.Context, id int64, d *dto.UpdateForumPostDTO) (*models.ForumPost, error) {
	fields := d.Fields()
	if len(fields) == 0 {
		return s.postRepo.GetByID(ctx, id)
	}
	return s.postRepo.Update(ctx, id, fields)
}

func (s *forumService) DeletePost(ctx context.Context, id int64) (bool, error) {
	return s.postRepo.Delete(ctx, id)
}

func (s *forumService) PinPost(ctx context.Context, id int64) (bool, error) {
	return s.postRepo.Pin(ctx, id)
}

func (s *forumService) LockPost(ctx context.Context, id int64) (bool, error) {
	return s.postRepo.Lock(ctx, id)
}

func (s *forumService) RecordPostView(ctx context.Context, id int64) error {
	return s.postRepo.IncrementViews(ctx, id)
}

func (s *forumService) Replies(ctx context.Context, postID int64) ([]models.ForumReplyWithDetails, error) {
	replies, err := s.replyRepo.ListForPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return aggregate.RepliesWithAuthors(replies), nil
}

// CreateReply refuses locked threads and otherwise stores the reply, with
// the parent post's counters updated in the same transaction.
func (s *forumService) CreateReply(ctx context.Context, postID int64, authorID string, d *dto.CreateReplyDTO) (*models.ForumReply, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.IsLocked {
		return nil, ErrPostLocked
	}

	reply := &models.ForumReply{
		PostID:        postID,
		Content:       d.Content,
		AuthorID:      authorID,
		ParentReplyID: d.ParentReplyID,
	}
	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *forumService) UpdateReply(ctx context.Context, id int64, d *dto.UpdateReplyDTO) (*models.ForumReply, error) {
	return s.replyRepo.Update(ctx, id, map[string]any{"content": d.Content})
}

func (s *forumService) DeleteReply(ctx context.Context, id int64) (bool, error) {
	return s.replyRepo.Delete(ctx, id)
}

func liftForumPost(p models.ForumPost) models.ForumPostWithDetails {
	author := p.Author
	forum := p.Forum
	p.Author = models.User{}
	p.Forum = models.Forum{}
	return models.ForumPostWithDetails{ForumPost: p, Author: author, Forum: forum}
}
