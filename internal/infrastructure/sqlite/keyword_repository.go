package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soomin/lingocare/internal/core/domain"
	"github.com/soomin/lingocare/internal/core/repository"
)

type keywordRepository struct {
	db *DB
}

func NewKeywordRepository(db *DB) repository.KeywordRepository {
	return &keywordRepository{db: db}
}

func (r *keywordRepository) Create(ctx context.Context, keyword *domain.Keyword) error {
	query := `
		INSERT INTO keyword (term, locale, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		keyword.Term,
		keyword.Locale,
		keyword.Priority,
		keyword.CreatedAt,
		keyword.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create keyword: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	keyword.ID = id

	return nil
}

func (r *keywordRepository) FindByID(ctx context.Context, id int64) (*domain.Keyword, error) {
	query := `
		SELECT id, term, locale, priority, created_at, updated_at
		FROM keyword
		WHERE id = ?
	`
	var keyword domain.Keyword
	err := r.db.GetContext(ctx, &keyword, query, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("keyword not found: %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find keyword: %w", err)
	}
	return &keyword, nil
}

func (r *keywordRepository) Update(ctx context.Context, keyword *domain.Keyword) error {
	query := `
		UPDATE keyword
		SET term = ?, locale = ?, priority = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		keyword.Term,
		keyword.Locale,
		keyword.Priority,
		keyword.UpdatedAt,
		keyword.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update keyword: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("keyword not found: %d", keyword.ID)
	}

	return nil
}

func (r *keywordRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM keyword WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete keyword: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("keyword not found: %d", id)
	}

	return nil
}

func (r *keywordRepository) List(ctx context.Context, filter repository.KeywordFilter) ([]*domain.Keyword, error) {
	query := `
		SELECT id, term, locale, priority, created_at, updated_at
		FROM keyword
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.Locale != nil {
		query += " AND locale = ?"
		args = append(args, *filter.Locale)
	}

	query += " ORDER BY priority DESC, id ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	var keywords []*domain.Keyword
	err := r.db.SelectContext(ctx, &keywords, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}

	return keywords, nil
}

func (r *keywordRepository) Count(ctx context.Context, filter repository.KeywordFilter) (int, error) {
	query := `SELECT COUNT(*) FROM keyword WHERE 1=1`
	args := []interface{}{}

	if filter.Locale != nil {
		query += " AND locale = ?"
		args = append(args, *filter.Locale)
	}

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count keywords: %w", err)
	}

	return count, nil
}
