package repository

import (
	"context"

	"github.com/soomin/lingocare/internal/core/domain"
)

type PostFilter struct {
	Locale        *string
	Status        *domain.PostStatus
	InterpreterID *int64
	Limit         int
	Offset        int
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindBySlug(ctx context.Context, locale, slug string) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter PostFilter) ([]*domain.Post, error)
	Count(ctx context.Context, filter PostFilter) (int, error)
}
