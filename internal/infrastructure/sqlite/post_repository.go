package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soomin/lingocare/internal/core/domain"
	"github.com/soomin/lingocare/internal/core/repository"
)

type postRepository struct {
	db *DB
}

func NewPostRepository(db *DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO post (id, interpreter_id, keyword_id, locale, slug, title, body, status, published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID,
		NullInt64(post.InterpreterID),
		NullInt64(post.KeywordID),
		post.Locale,
		post.Slug,
		post.Title,
		post.Body,
		post.Status,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	query := selectPost + ` WHERE id = ?`
	return r.scanPost(r.db.QueryRowContext(ctx, query, id))
}

func (r *postRepository) FindBySlug(ctx context.Context, locale, slug string) (*domain.Post, error) {
	query := selectPost + ` WHERE locale = ? AND slug = ?`
	return r.scanPost(r.db.QueryRowContext(ctx, query, locale, slug))
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE post
		SET interpreter_id = ?, keyword_id = ?, locale = ?, slug = ?, title = ?, body = ?, status = ?, published_at = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		NullInt64(post.InterpreterID),
		NullInt64(post.KeywordID),
		post.Locale,
		post.Slug,
		post.Title,
		post.Body,
		post.Status,
		post.PublishedAt,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("post not found: %s", post.ID)
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM post WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("post not found: %s", id)
	}

	return nil
}

func (r *postRepository) List(ctx context.Context, filter repository.PostFilter) ([]*domain.Post, error) {
	query := selectPost + ` WHERE 1=1`
	args := []interface{}{}
	query, args = applyPostFilter(query, args, filter)

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := r.scanPostRow(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Count(ctx context.Context, filter repository.PostFilter) (int, error) {
	query := `SELECT COUNT(*) FROM post WHERE 1=1`
	args := []interface{}{}
	query, args = applyPostFilter(query, args, filter)

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

func applyPostFilter(query string, args []interface{}, filter repository.PostFilter) (string, []interface{}) {
	if filter.Locale != nil {
		query += " AND locale = ?"
		args = append(args, *filter.Locale)
	}
	if filter.Status != nil {
		query += " AND status = ?"
		args = append(args, *filter.Status)
	}
	if filter.InterpreterID != nil {
		query += " AND interpreter_id = ?"
		args = append(args, *filter.InterpreterID)
	}
	return query, args
}

const selectPost = `
	SELECT id, interpreter_id, keyword_id, locale, slug, title, body, status, published_at, created_at, updated_at
	FROM post
`

func scanPostFields(row rowScanner) (*domain.Post, error) {
	var post domain.Post
	var interpreterID, keywordID sql.NullInt64
	var publishedAt sql.NullTime

	err := row.Scan(
		&post.ID,
		&interpreterID,
		&keywordID,
		&post.Locale,
		&post.Slug,
		&post.Title,
		&post.Body,
		&post.Status,
		&publishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if interpreterID.Valid {
		id := interpreterID.Int64
		post.InterpreterID = &id
	}
	if keywordID.Valid {
		id := keywordID.Int64
		post.KeywordID = &id
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		post.PublishedAt = &t
	}

	return &post, nil
}

func (r *postRepository) scanPost(row rowScanner) (*domain.Post, error) {
	post, err := scanPostFields(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("post not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}
	return post, nil
}

func (r *postRepository) scanPostRow(row rowScanner) (*domain.Post, error) {
	post, err := scanPostFields(row)
	if err != nil {
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}
	return post, nil
}
