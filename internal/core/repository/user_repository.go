package repository

import (
	"context"

	"github.com/soomin/lingocare/internal/core/domain"
)

// UserRepository persists admin-console accounts. Accounts are managed
// from the CLI only; the API never creates or deletes users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]*domain.User, error)
}
