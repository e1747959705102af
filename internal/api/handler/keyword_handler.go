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

type KeywordHandler struct {
	keywordService *service.KeywordService
}

func NewKeywordHandler(keywordService *service.KeywordService) *KeywordHandler {
	return &KeywordHandler{
		keywordService: keywordService,
	}
}

// CreateKeyword handles POST /keywords
func (h *KeywordHandler) CreateKeyword(c *gin.Context) {
	var req dto.CreateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	keyword := domain.NewKeyword(req.Term, req.Locale, req.Priority)

	if err := h.keywordService.CreateKeyword(c.Request.Context(), keyword); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	c.JSON(http.StatusCreated, toKeywordResponse(keyword))
}

// GetKeyword handles GET /keywords/:id
func (h *KeywordHandler) GetKeyword(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid keyword ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	keyword, err := h.keywordService.GetKeyword(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: fmt.Sprintf("Keyword not found: %d", id),
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, toKeywordResponse(keyword))
}

// ListKeywords handles GET /keywords
func (h *KeywordHandler) ListKeywords(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.KeywordFilter{
		Limit:  limit,
		Offset: offset,
	}

	if locale := c.Query("locale"); locale != "" {
		filter.Locale = &locale
	}

	keywords, err := h.keywordService.ListKeywords(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	count, _ := h.keywordService.CountKeywords(c.Request.Context(), filter)

	response := dto.KeywordListResponse{
		Items:      make([]dto.KeywordResponse, len(keywords)),
		Pagination: paginationInfo(count, limit, offset),
	}
	for i, keyword := range keywords {
		response.Items[i] = toKeywordResponse(keyword)
	}

	c.JSON(http.StatusOK, response)
}

// UpdateKeyword handles PUT /keywords/:id
func (h *KeywordHandler) UpdateKeyword(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid keyword ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var req dto.UpdateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	keyword, err := h.keywordService.GetKeyword(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: fmt.Sprintf("Keyword not found: %d", id),
			Code:    http.StatusNotFound,
		})
		return
	}

	if req.Term != nil {
		keyword.Term = *req.Term
	}
	if req.Locale != nil {
		keyword.Locale = *req.Locale
	}
	if req.Priority != nil {
		keyword.Priority = *req.Priority
	}

	if err := h.keywordService.UpdateKeyword(c.Request.Context(), keyword); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	c.JSON(http.StatusOK, toKeywordResponse(keyword))
}

// DeleteKeyword handles DELETE /keywords/:id
func (h *KeywordHandler) DeleteKeyword(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid keyword ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if err := h.keywordService.DeleteKeyword(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func toKeywordResponse(keyword *domain.Keyword) dto.KeywordResponse {
	return dto.KeywordResponse{
		ID:        keyword.ID,
		Term:      keyword.Term,
		Locale:    keyword.Locale,
		Priority:  keyword.Priority,
		CreatedAt: keyword.CreatedAt,
		UpdatedAt: keyword.UpdatedAt,
	}
}
