package repository

import (
	"context"

	"github.com/soomin/lingocare/internal/core/domain"
)

type KeywordFilter struct {
	Locale *string
	Limit  int
	Offset int
}

type KeywordRepository interface {
	Create(ctx context.Context, keyword *domain.Keyword) error
	FindByID(ctx context.Context, id int64) (*domain.Keyword, error)
	Update(ctx context.Context, keyword *domain.Keyword) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter KeywordFilter) ([]*domain.Keyword, error)
	Count(ctx context.Context, filter KeywordFilter) (int, error)
}
