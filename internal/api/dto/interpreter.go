package dto

import "time"

// CreateInterpreterRequest represents the interpreter creation request
type CreateInterpreterRequest struct {
	Name      string   `json:"name" binding:"required"`
	Slug      string   `json:"slug" binding:"required"`
	Bio       string   `json:"bio"`
	PhotoURL  string   `json:"photo_url"`
	Languages []string `json:"languages" binding:"required,min=1"`
	Specialty string   `json:"specialty"`
	Active    bool     `json:"active"`
}

// UpdateInterpreterRequest represents the interpreter update request
type UpdateInterpreterRequest struct {
	Name      *string  `json:"name,omitempty"`
	Slug      *string  `json:"slug,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	PhotoURL  *string  `json:"photo_url,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Specialty *string  `json:"specialty,omitempty"`
	Active    *bool    `json:"active,omitempty"`
}

// InterpreterResponse represents an interpreter persona
type InterpreterResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Bio       string    `json:"bio"`
	PhotoURL  string    `json:"photo_url"`
	Languages []string  `json:"languages"`
	Specialty string    `json:"specialty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InterpreterListResponse represents a list of interpreters
type InterpreterListResponse struct {
	Items      []InterpreterResponse `json:"items"`
	Pagination PaginationInfo        `json:"pagination"`
}
