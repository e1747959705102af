package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/soomin/lingocare/internal/core/domain"
	"github.com/soomin/lingocare/internal/core/repository"
)

type interpreterRepository struct {
	db *DB
}

func NewInterpreterRepository(db *DB) repository.InterpreterRepository {
	return &interpreterRepository{db: db}
}

func (r *interpreterRepository) Create(ctx context.Context, interpreter *domain.Interpreter) error {
	languages, err := json.Marshal(interpreter.Languages)
	if err != nil {
		return fmt.Errorf("failed to marshal languages: %w", err)
	}

	query := `
		INSERT INTO interpreter (name, slug, bio, photo_url, languages, specialty, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		interpreter.Name,
		interpreter.Slug,
		interpreter.Bio,
		interpreter.PhotoURL,
		string(languages),
		interpreter.Specialty,
		interpreter.Active,
		interpreter.CreatedAt,
		interpreter.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	interpreter.ID = id

	return nil
}

func (r *interpreterRepository) FindByID(ctx context.Context, id int64) (*domain.Interpreter, error) {
	query := selectInterpreter + ` WHERE id = ?`
	return r.scanInterpreter(r.db.QueryRowxContext(ctx, query, id))
}

func (r *interpreterRepository) FindBySlug(ctx context.Context, slug string) (*domain.Interpreter, error) {
	query := selectInterpreter + ` WHERE slug = ?`
	return r.scanInterpreter(r.db.QueryRowxContext(ctx, query, slug))
}

func (r *interpreterRepository) Update(ctx context.Context, interpreter *domain.Interpreter) error {
	languages, err := json.Marshal(interpreter.Languages)
	if err != nil {
		return fmt.Errorf("failed to marshal languages: %w", err)
	}

	query := `
		UPDATE interpreter
		SET name = ?, slug = ?, bio = ?, photo_url = ?, languages = ?, specialty = ?, active = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		interpreter.Name,
		interpreter.Slug,
		interpreter.Bio,
		interpreter.PhotoURL,
		string(languages),
		interpreter.Specialty,
		interpreter.Active,
		interpreter.UpdatedAt,
		interpreter.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update interpreter: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("interpreter not found: %d", interpreter.ID)
	}

	return nil
}

func (r *interpreterRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM interpreter WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete interpreter: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("interpreter not found: %d", id)
	}

	return nil
}

func (r *interpreterRepository) List(ctx context.Context, filter repository.InterpreterFilter) ([]*domain.Interpreter, error) {
	query := selectInterpreter + ` WHERE 1=1`
	args := []interface{}{}

	if filter.Active != nil {
		query += " AND active = ?"
		args = append(args, *filter.Active)
	}
	if filter.Language != nil {
		// Languages are stored as a JSON array of quoted codes.
		query += " AND languages LIKE ?"
		args = append(args, `%"`+*filter.Language+`"%`)
	}

	query += " ORDER BY id ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list interpreters: %w", err)
	}
	defer rows.Close()

	var interpreters []*domain.Interpreter
	for rows.Next() {
		interpreter, err := r.scanInterpreterRow(rows)
		if err != nil {
			return nil, err
		}
		interpreters = append(interpreters, interpreter)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interpreters: %w", err)
	}

	return interpreters, nil
}

func (r *interpreterRepository) Count(ctx context.Context, filter repository.InterpreterFilter) (int, error) {
	query := `SELECT COUNT(*) FROM interpreter WHERE 1=1`
	args := []interface{}{}

	if filter.Active != nil {
		query += " AND active = ?"
		args = append(args, *filter.Active)
	}
	if filter.Language != nil {
		query += " AND languages LIKE ?"
		args = append(args, `%"`+*filter.Language+`"%`)
	}

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count interpreters: %w", err)
	}

	return count, nil
}

const selectInterpreter = `
	SELECT id, name, slug, bio, photo_url, languages, specialty, active, created_at, updated_at
	FROM interpreter
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInterpreterFields(row rowScanner) (*domain.Interpreter, error) {
	var interpreter domain.Interpreter
	var languages string

	err := row.Scan(
		&interpreter.ID,
		&interpreter.Name,
		&interpreter.Slug,
		&interpreter.Bio,
		&interpreter.PhotoURL,
		&languages,
		&interpreter.Specialty,
		&interpreter.Active,
		&interpreter.CreatedAt,
		&interpreter.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(languages), &interpreter.Languages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal languages: %w", err)
	}

	return &interpreter, nil
}

func (r *interpreterRepository) scanInterpreter(row rowScanner) (*domain.Interpreter, error) {
	interpreter, err := scanInterpreterFields(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("interpreter not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan interpreter: %w", err)
	}
	return interpreter, nil
}

func (r *interpreterRepository) scanInterpreterRow(row rowScanner) (*domain.Interpreter, error) {
	interpreter, err := scanInterpreterFields(row)
	if err != nil {
		return nil, fmt.Errorf("failed to scan interpreter: %w", err)
	}
	return interpreter, nil
}
