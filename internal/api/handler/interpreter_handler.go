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

type InterpreterHandler struct {
	interpreterService *service.InterpreterService
}

func NewInterpreterHandler(interpreterService *service.InterpreterService) *InterpreterHandler {
	return &InterpreterHandler{
		interpreterService: interpreterService,
	}
}

// CreateInterpreter handles POST /interpreters
func (h *InterpreterHandler) CreateInterpreter(c *gin.Context) {
	var req dto.CreateInterpreterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	interpreter := domain.NewInterpreter(req.Name, req.Slug, req.Languages)
	interpreter.Bio = req.Bio
	interpreter.PhotoURL = req.PhotoURL
	interpreter.Specialty = req.Specialty
	interpreter.Active = req.Active

	if err := h.interpreterService.CreateInterpreter(c.Request.Context(), interpreter); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	c.JSON(http.StatusCreated, toInterpreterResponse(interpreter))
}

// GetInterpreter handles GET /interpreters/:id
func (h *InterpreterHandler) GetInterpreter(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid interpreter ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	interpreter, err := h.interpreterService.GetInterpreter(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: fmt.Sprintf("Interpreter not found: %d", id),
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, toInterpreterResponse(interpreter))
}

// ListInterpreters handles GET /interpreters
func (h *InterpreterHandler) ListInterpreters(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.InterpreterFilter{
		Limit:  limit,
		Offset: offset,
	}

	if active := c.Query("active"); active != "" {
		a := active == "true"
		filter.Active = &a
	}
	if language := c.Query("language"); language != "" {
		filter.Language = &language
	}

	interpreters, err := h.interpreterService.ListInterpreters(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	count, _ := h.interpreterService.CountInterpreters(c.Request.Context(), filter)

	response := dto.InterpreterListResponse{
		Items:      make([]dto.InterpreterResponse, len(interpreters)),
		Pagination: paginationInfo(count, limit, offset),
	}
	for i, interpreter := range interpreters {
		response.Items[i] = toInterpreterResponse(interpreter)
	}

	c.JSON(http.StatusOK, response)
}

// UpdateInterpreter handles PUT /interpreters/:id
func (h *InterpreterHandler) UpdateInterpreter(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid interpreter ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var req dto.UpdateInterpreterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	interpreter, err := h.interpreterService.GetInterpreter(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: fmt.Sprintf("Interpreter not found: %d", id),
			Code:    http.StatusNotFound,
		})
		return
	}

	if req.Name != nil {
		interpreter.Name = *req.Name
	}
	if req.Slug != nil {
		interpreter.Slug = *req.Slug
	}
	if req.Bio != nil {
		interpreter.Bio = *req.Bio
	}
	if req.PhotoURL != nil {
		interpreter.PhotoURL = *req.PhotoURL
	}
	if req.Languages != nil {
		interpreter.Languages = req.Languages
	}
	if req.Specialty != nil {
		interpreter.Specialty = *req.Specialty
	}
	if req.Active != nil {
		interpreter.Active = *req.Active
	}

	if err := h.interpreterService.UpdateInterpreter(c.Request.Context(), interpreter); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	c.JSON(http.StatusOK, toInterpreterResponse(interpreter))
}

// DeleteInterpreter handles DELETE /interpreters/:id
func (h *InterpreterHandler) DeleteInterpreter(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid interpreter ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if err := h.interpreterService.DeleteInterpreter(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func toInterpreterResponse(interpreter *domain.Interpreter) dto.InterpreterResponse {
	return dto.InterpreterResponse{
		ID:        interpreter.ID,
		Name:      interpreter.Name,
		Slug:      interpreter.Slug,
		Bio:       interpreter.Bio,
		PhotoURL:  interpreter.PhotoURL,
		Languages: interpreter.Languages,
		Specialty: interpreter.Specialty,
		Active:    interpreter.Active,
		CreatedAt: interpreter.CreatedAt,
		UpdatedAt: interpreter.UpdatedAt,
	}
}

func paginationInfo(count, limit, offset int) dto.PaginationInfo {
	page := 1
	if limit > 0 {
		page = (offset / limit) + 1
	}
	totalPages := 0
	if limit > 0 {
		totalPages = (count + limit - 1) / limit
	}
	return dto.PaginationInfo{
		Total:      count,
		Page:       page,
		PerPage:    limit,
		TotalPages: totalPages,
	}
}
