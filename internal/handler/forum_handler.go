package handler

import (
	"errors"
	"net/http"
	"strconv"

	"animehub/internal/dto"
	"animehub/internal/service"

	"github.com/gin-gonic/gin"
)

type ForumHandler struct {
	forumService service.ForumService
}

func NewForumHandler(forumService service.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

// RegisterRoutes registers the forum routes. Listing runs behind
// OptionalAuth so membership roles show up for signed-in viewers.
func (h *ForumHandler) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	forums := public.Group("/forums")
	{
		forums.GET("", h.List)
		forums.GET("/:id", h.GetByID)
		forums.GET("/:id/posts", h.ListPosts)
	}
	public.GET("/forum-posts/:id", h.GetPost)
	public.GET("/forum-posts/:id/replies", h.ListReplies)
	public.POST("/forum-posts/:id/view", h.RecordPostView)

	authedForums := authed.Group("/forums")
	{
		authedForums.POST("", h.Create)
		authedForums.PUT("/:id", h.Update)
		authedForums.POST("/:id/join", h.Join)
		authedForums.POST("/:id/leave", h.Leave)
		authedForums.POST("/:id/posts", h.CreatePost)
	}
	authed.PUT("/forum-posts/:id", h.UpdatePost)
	authed.DELETE("/forum-posts/:id", h.DeletePost)
	authed.POST("/forum-posts/:id/replies", h.CreateReply)
	authed.PUT("/forum-replies/:id", h.UpdateReply)
	authed.DELETE("/forum-replies/:id", h.DeleteReply)

	admin.DELETE("/forums/:id", h.Delete)
	admin.POST("/forum-posts/:id/pin", h.PinPost)
	admin.POST("/forum-posts/:id/lock", h.LockPost)
}

// List returns every forum with creator, post count, member count, and
// the viewer's role when signed in.
// GET /api/forums
func (h *ForumHandler) List(c *gin.Context) {
	forums, err := h.forumService.List(c.Request.Context(), viewerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list forums"})
		return
	}
	c.JSON(http.StatusOK, forums)
}

// GetByID returns one forum with its derived details.
// GET /api/forums/:id
func (h *ForumHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum ID"})
		return
	}

	forum, err := h.forumService.Get(c.Request.Context(), id, viewerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch forum"})
		return
	}
	if forum == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "forum not found"})
		return
	}
	c.JSON(http.StatusOK, forum)
}

// Create opens a forum; the creator becomes its admin member.
// POST /api/forums
func (h *ForumHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateForumDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	forum, err := h.forumService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create forum"})
		return
	}
	c.JSON(http.StatusCreated, forum)
}

// Update applies a partial edit to a forum.
// PUT /api/forums/:id
func (h *ForumHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum ID"})
		return
	}

	var req dto.UpdateForumDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	forum, err := h.forumService.Update(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update forum"})
		return
	}
	if forum == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "forum not found"})
		return
	}
	c.JSON(http.StatusOK, forum)
}

// Delete removes a forum and everything under it.
// DELETE /api/admin/forums/:id
func (h *ForumHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum ID"})
		return
	}

	deleted, err := h.forumService.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete forum"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "forum not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "forum deleted"})
}

// Join adds the viewer as a member. Joining twice is a no-op.
// POST /api/forums/:id/join
func (h *ForumHandler) Join(c *gin.Context) {
	userID := c.GetString("userID")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum ID"})
		return
	}

	joined, err := h.forumService.Join(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, service.ErrForumNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join forum"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"joined": joined})
}

// Leave removes the viewer's membership.
// POST /api/forums/:id/leave
func (h *ForumHandler) Leave(c *gin.Context) {
	userID := c.GetString("userID")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum ID"})
		return
	}

	left, err := h.forumService.Leave(c.Request.Context(), id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to leave forum"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"left": left})
}

// ListPosts pages a forum's threads, pinned first, then most recent
// activity.
// GET /api/forums/:id/posts?limit=20&offset=0
func (h *ForumHandler) ListPosts(c *gin.Context) {
	forumID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum ID"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, err := h.forumService.Posts(c.Request.Context(), forumID, limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list forum posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost returns a single thread with author and forum attached.
// GET /api/forum-posts/:id
func (h *ForumHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum post ID"})
		return
	}

	post, err := h.forumService.GetPost(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch forum post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "forum post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost starts a thread in a forum.
// POST /api/forums/:id/posts
func (h *ForumHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("userID")

	forumID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum ID"})
		return
	}

	var req dto.CreateForumPostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.forumService.CreatePost(c.Request.Context(), forumID, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrForumNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create forum post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost applies a partial edit to a thread.
// PUT /api/forum-posts/:id
func (h *ForumHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum post ID"})
		return
	}

	var req dto.UpdateForumPostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.forumService.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update forum post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "forum post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost removes a thread.
// DELETE /api/forum-posts/:id
func (h *ForumHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum post ID"})
		return
	}

	deleted, err := h.forumService.DeletePost(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete forum post"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "forum post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "forum post deleted"})
}

// PinPost toggles a thread to the top of its forum's listing.
// POST /api/admin/forum-posts/:id/pin
func (h *ForumHandler) PinPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum post ID"})
		return
	}

	pinned, err := h.forumService.PinPost(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to pin forum post"})
		return
	}
	if !pinned {
		c.JSON(http.StatusNotFound, gin.H{"error": "forum post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "forum post pinned"})
}

// LockPost closes a thread to new replies.
// POST /api/admin/forum-posts/:id/lock
func (h *ForumHandler) LockPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum post ID"})
		return
	}

	locked, err := h.forumService.LockPost(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to lock forum post"})
		return
	}
	if !locked {
		c.JSON(http.StatusNotFound, gin.H{"error": "forum post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "forum post locked"})
}

// RecordPostView bumps a thread's view counter.
// POST /api/forum-posts/:id/view
func (h *ForumHandler) RecordPostView(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum post ID"})
		return
	}

	if err := h.forumService.RecordPostView(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record view"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListReplies returns a thread's replies chronologically; nesting is
// expressed through parent_reply_id.
// GET /api/forum-posts/:id/replies
func (h *ForumHandler) ListReplies(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum post ID"})
		return
	}

	replies, err := h.forumService.Replies(c.Request.Context(), postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list replies"})
		return
	}
	c.JSON(http.StatusOK, replies)
}

// CreateReply appends a reply to a thread unless the thread is locked.
// POST /api/forum-posts/:id/replies
func (h *ForumHandler) CreateReply(c *gin.Context) {
	userID := c.GetString("userID")

	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forum post ID"})
		return
	}

	var req dto.CreateReplyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.forumService.CreateReply(c.Request.Context(), postID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrPostLocked):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reply"})
		}
		return
	}
	c.JSON(http.StatusCreated, reply)
}

// UpdateReply edits a reply's content.
// PUT /api/forum-replies/:id
func (h *ForumHandler) UpdateReply(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reply ID"})
		return
	}

	var req dto.UpdateReplyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.forumService.UpdateReply(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reply"})
		return
	}
	if reply == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reply not found"})
		return
	}
	c.JSON(http.StatusOK, reply)
}

// DeleteReply removes a reply.
// DELETE /api/forum-replies/:id
func (h *ForumHandler) DeleteReply(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reply ID"})
		return
	}

	deleted, err := h.forumService.DeleteReply(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete reply"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "reply not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reply deleted"})
}

// viewerID returns the signed-in user's id or nil for anonymous requests.
func viewerID(c *gin.Context) *string {
	if id := c.GetString("userID"); id != "" {
		return &id
	}
	return nil
}
