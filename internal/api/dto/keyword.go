package dto

import "time"

// CreateKeywordRequest represents the keyword creation request
type CreateKeywordRequest struct {
	Term     string `json:"term" binding:"required"`
	Locale   string `json:"locale" binding:"required"`
	Priority int    `json:"priority"`
}

// UpdateKeywordRequest represents the keyword update request
type UpdateKeywordRequest struct {
	Term     *string `json:"term,omitempty"`
	Locale   *string `json:"locale,omitempty"`
	Priority *int    `json:"priority,omitempty"`
}

// KeywordResponse represents an SEO keyword
type KeywordResponse struct {
	ID        int64     `json:"id"`
	Term      string    `json:"term"`
	Locale    string    `json:"locale"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KeywordListResponse represents a list of keywords
type KeywordListResponse struct {
	Items      []KeywordResponse `json:"items"`
	Pagination PaginationInfo    `json:"pagination"`
}
