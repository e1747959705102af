package repository

import (
	"context"

	"github.com/soomin/lingocare/internal/core/domain"
)

type InterpreterFilter struct {
	Active   *bool
	Language *string
	Limit    int
	Offset   int
}

type InterpreterRepository interface {
	Create(ctx context.Context, interpreter *domain.Interpreter) error
	FindByID(ctx context.Context, id int64) (*domain.Interpreter, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Interpreter, error)
	Update(ctx context.Context, interpreter *domain.Interpreter) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter InterpreterFilter) ([]*domain.Interpreter, error)
	Count(ctx context.Context, filter InterpreterFilter) (int, error)
}
