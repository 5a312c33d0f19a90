package handler

import (
	"errors"
	"net/http"
	"strconv"

	"animehub/internal/dto"
	"animehub/internal/service"

	"github.com/gin-gonic/gin"
)

type AnimeHandler struct {
	animeService  service.AnimeService
	reviewService service.ReviewService
}

func NewAnimeHandler(animeService service.AnimeService, reviewService service.ReviewService) *AnimeHandler {
	return &AnimeHandler{
		animeService:  animeService,
		reviewService: reviewService,
	}
}

// RegisterRoutes registers the catalogue routes. public gets no auth,
// authed requires a valid token, admin additionally requires the admin flag.
func (h *AnimeHandler) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	anime := public.Group("/anime")
	{
		anime.GET("", h.List)
		anime.GET("/search", h.Search)
		anime.GET("/:id", h.GetByID)
		anime.POST("/:id/view", h.RecordView)
		anime.GET("/:id/reviews", h.ListReviews)
	}
	public.GET("/tags", h.ListTags)

	authedAnime := authed.Group("/anime")
	{
		authedAnime.POST("", h.Create)
		authedAnime.PUT("/:id", h.Update)
		authedAnime.DELETE("/:id", h.Delete)
		authedAnime.POST("/:id/favorite", h.ToggleFavorite)
		authedAnime.GET("/:id/favorite", h.CheckFavorite)
		authedAnime.POST("/:id/reviews", h.CreateReview)
	}
	authed.GET("/favorites", h.ListFavorites)
	authed.PUT("/reviews/:id", h.UpdateReview)
	authed.DELETE("/reviews/:id", h.DeleteReview)

	adminAnime := admin.Group("/anime")
	{
		adminAnime.GET("/pending", h.ListPending)
		adminAnime.POST("/:id/approve", h.Approve)
		adminAnime.POST("/:id/reject", h.Reject)
	}
}

// List returns one page of approved posts with authors, tags, and review
// stats nested in.
// GET /api/anime?limit=20&offset=0
func (h *AnimeHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, err := h.animeService.List(c.Request.Context(), limit, offset, "")
	if err != nil {
		if errors.Is(err, service.ErrInvalidPage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list anime posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Search filters approved posts by title substring and tag ids. A post
// matches only when it carries every requested tag.
// GET /api/anime/search?q=ghibli&tags=1&tags=4
func (h *AnimeHandler) Search(c *gin.Context) {
	var req dto.SearchAnimeDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts, err := h.animeService.Search(c.Request.Context(), req.Query, req.TagIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetByID returns a single nested post.
// GET /api/anime/:id
func (h *AnimeHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime post ID"})
		return
	}

	post, err := h.animeService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch anime post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "anime post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create submits a new post; it stays pending until an admin approves it.
// POST /api/anime
func (h *AnimeHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateAnimeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.animeService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create anime post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Update applies a partial edit.
// PUT /api/anime/:id
func (h *AnimeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime post ID"})
		return
	}

	var req dto.UpdateAnimeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.animeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update anime post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "anime post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete removes a post.
// DELETE /api/anime/:id
func (h *AnimeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime post ID"})
		return
	}

	deleted, err := h.animeService.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete anime post"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "anime post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "anime post deleted"})
}

// RecordView bumps the view counter. Fire and forget from the client's
// point of view.
// POST /api/anime/:id/view
func (h *AnimeHandler) RecordView(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime post ID"})
		return
	}

	if err := h.animeService.RecordView(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record view"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleFavorite flips the viewer's favorite for a post and reports the
// new state.
// POST /api/anime/:id/favorite
func (h *AnimeHandler) ToggleFavorite(c *gin.Context) {
	userID := c.GetString("userID")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime post ID"})
		return
	}

	favorited, err := h.animeService.ToggleFavorite(c.Request.Context(), userID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

// CheckFavorite reports whether the viewer has favorited a post.
// GET /api/anime/:id/favorite
func (h *AnimeHandler) CheckFavorite(c *gin.Context) {
	userID := c.GetString("userID")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime post ID"})
		return
	}

	favorited, err := h.animeService.IsFavorited(c.Request.Context(), userID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

// ListFavorites returns the viewer's favorited posts, nested like the
// catalogue listing.
// GET /api/favorites
func (h *AnimeHandler) ListFavorites(c *gin.Context) {
	userID := c.GetString("userID")

	posts, err := h.animeService.Favorites(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListTags returns every tag, alphabetically.
// GET /api/tags
func (h *AnimeHandler) ListTags(c *gin.Context) {
	tags, err := h.animeService.Tags(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tags"})
		return
	}
	c.JSON(http.StatusOK, tags)
}

// ListPending returns posts awaiting moderation.
// GET /api/admin/anime/pending
func (h *AnimeHandler) ListPending(c *gin.Context) {
	posts, err := h.animeService.Pending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list pending posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Approve publishes a pending post.
// POST /api/admin/anime/:id/approve
func (h *AnimeHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime post ID"})
		return
	}

	post, err := h.animeService.Approve(c.Request.Context(), id, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "anime post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// Reject declines a pending post.
// POST /api/admin/anime/:id/reject
func (h *AnimeHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime post ID"})
		return
	}

	post, err := h.animeService.Reject(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reject post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "anime post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListReviews returns a post's reviews with authors, newest first.
// GET /api/anime/:id/reviews
func (h *AnimeHandler) ListReviews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime post ID"})
		return
	}

	reviews, err := h.reviewService.ListForAnime(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview attaches a review to a post.
// POST /api/anime/:id/reviews
func (h *AnimeHandler) CreateReview(c *gin.Context) {
	userID := c.GetString("userID")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid anime post ID"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), id, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// UpdateReview edits a review.
// PUT /api/reviews/:id
func (h *AnimeHandler) UpdateReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return
	}

	var req dto.UpdateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update review"})
		return
	}
	if review == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview removes the viewer's own review.
// DELETE /api/reviews/:id
func (h *AnimeHandler) DeleteReview(c *gin.Context) {
	userID := c.GetString("userID")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return
	}

	deleted, err := h.reviewService.Delete(c.Request.Context(), id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
