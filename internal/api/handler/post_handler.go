package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/soomin/lingocare/internal/api/dto"
	"github.com/soomin/lingocare/internal/core/domain"
	"github.com/soomin/lingocare/internal/core/repository"
	"github.com/soomin/lingocare/internal/core/service"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	post := domain.NewPost(req.Locale, req.Slug, req.Title, req.Body)
	post.InterpreterID = req.InterpreterID
	post.KeywordID = req.KeywordID

	if err := h.postService.CreatePost(c.Request.Context(), post); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	c.JSON(http.StatusCreated, toPostResponse(post))
}

// GetPost handles GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id := c.Param("id")

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: fmt.Sprintf("Post not found: %s", id),
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}

// ListPosts handles GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.PostFilter{
		Limit:  limit,
		Offset: offset,
	}

	if locale := c.Query("locale"); locale != "" {
		filter.Locale = &locale
	}
	if status := c.Query("status"); status != "" {
		s := domain.PostStatus(status)
		filter.Status = &s
	}
	if interpreterID := c.Query("interpreter_id"); interpreterID != "" {
		id, err := strconv.ParseInt(interpreterID, 10, 64)
		if err == nil {
			filter.InterpreterID = &id
		}
	}

	posts, err := h.postService.ListPosts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	count, _ := h.postService.CountPosts(c.Request.Context(), filter)

	response := dto.PostListResponse{
		Items:      make([]dto.PostResponse, len(posts)),
		Pagination: paginationInfo(count, limit, offset),
	}
	for i, post := range posts {
		response.Items[i] = toPostResponse(post)
	}

	c.JSON(http.StatusOK, response)
}

// UpdatePost handles PUT /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: fmt.Sprintf("Post not found: %s", id),
			Code:    http.StatusNotFound,
		})
		return
	}

	if req.InterpreterID != nil {
		post.InterpreterID = req.InterpreterID
	}
	if req.KeywordID != nil {
		post.KeywordID = req.KeywordID
	}
	if req.Locale != nil {
		post.Locale = *req.Locale
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}

	if err := h.postService.UpdatePost(c.Request.Context(), post); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}

// PublishPost handles POST /posts/:id/publish
func (h *PostHandler) PublishPost(c *gin.Context) {
	id := c.Param("id")

	post, err := h.postService.PublishPost(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:   "Conflict",
			Message: err.Error(),
			Code:    http.StatusConflict,
		})
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}

// DeletePost handles DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")

	if err := h.postService.DeletePost(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// ListPublishedPosts handles GET /blog/:locale
func (h *PostHandler) ListPublishedPosts(c *gin.Context) {
	locale := c.Param("locale")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	published := domain.PostStatusPublished
	filter := repository.PostFilter{
		Locale: &locale,
		Status: &published,
		Limit:  limit,
		Offset: offset,
	}

	posts, err := h.postService.ListPosts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	count, _ := h.postService.CountPosts(c.Request.Context(), filter)

	response := dto.PostListResponse{
		Items:      make([]dto.PostResponse, len(posts)),
		Pagination: paginationInfo(count, limit, offset),
	}
	for i, post := range posts {
		response.Items[i] = toPostResponse(post)
	}

	c.JSON(http.StatusOK, response)
}

// GetPublishedPost handles GET /blog/:locale/:slug
func (h *PostHandler) GetPublishedPost(c *gin.Context) {
	locale := c.Param("locale")
	slug := c.Param("slug")

	post, err := h.postService.GetPublishedPost(c.Request.Context(), locale, slug)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: fmt.Sprintf("Post not found: %s/%s", locale, slug),
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}

func toPostResponse(post *domain.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:            post.ID,
		InterpreterID: post.InterpreterID,
		KeywordID:     post.KeywordID,
		Locale:        post.Locale,
		Slug:          post.Slug,
		Title:         post.Title,
		Body:          post.Body,
		Status:        string(post.Status),
		PublishedAt:   post.PublishedAt,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}
