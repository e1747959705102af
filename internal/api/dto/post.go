package dto

import "time"

// CreatePostRequest represents the post creation request
type CreatePostRequest struct {
	InterpreterID *int64 `json:"interpreter_id,omitempty"`
	KeywordID     *int64 `json:"keyword_id,omitempty"`
	Locale        string `json:"locale" binding:"required"`
	Slug          string `json:"slug" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Body          string `json:"body"`
}

// UpdatePostRequest represents the post update request
type UpdatePostRequest struct {
	InterpreterID *int64  `json:"interpreter_id,omitempty"`
	KeywordID     *int64  `json:"keyword_id,omitempty"`
	Locale        *string `json:"locale,omitempty"`
	Slug          *string `json:"slug,omitempty"`
	Title         *string `json:"title,omitempty"`
	Body          *string `json:"body,omitempty"`
}

// PostResponse represents a blog post
type PostResponse struct {
	ID            string     `json:"id"`
	InterpreterID *int64     `json:"interpreter_id,omitempty"`
	KeywordID     *int64     `json:"keyword_id,omitempty"`
	Locale        string     `json:"locale"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PostListResponse represents a list of posts
type PostListResponse struct {
	Items      []PostResponse `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
