package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/soomin/lingocare/internal/core/domain"
	"github.com/soomin/lingocare/internal/core/repository"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type InterpreterService struct {
	interpreterRepo repository.InterpreterRepository
	postRepo        repository.PostRepository
}

func NewInterpreterService(interpreterRepo repository.InterpreterRepository, postRepo repository.PostRepository) *InterpreterService {
	return &InterpreterService{
		interpreterRepo: interpreterRepo,
		postRepo:        postRepo,
	}
}

// CreateInterpreter creates a new interpreter persona
func (s *InterpreterService) CreateInterpreter(ctx context.Context, interpreter *domain.Interpreter) error {
	if err := s.validateInterpreter(interpreter); err != nil {
		return err
	}

	if _, err := s.interpreterRepo.FindBySlug(ctx, interpreter.Slug); err == nil {
		return fmt.Errorf("interpreter slug already in use: %s", interpreter.Slug)
	}

	if err := s.interpreterRepo.Create(ctx, interpreter); err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	return nil
}

// UpdateInterpreter updates an existing interpreter persona
func (s *InterpreterService) UpdateInterpreter(ctx context.Context, interpreter *domain.Interpreter) error {
	if err := s.validateInterpreter(interpreter); err != nil {
		return err
	}

	interpreter.UpdatedAt = time.Now()
	if err := s.interpreterRepo.Update(ctx, interpreter); err != nil {
		return fmt.Errorf("failed to update interpreter: %w", err)
	}

	return nil
}

// DeleteInterpreter deletes an interpreter persona. Posts keep their
// content; the byline reference is cleared by the schema.
func (s *InterpreterService) DeleteInterpreter(ctx context.Context, id int64) error {
	if err := s.interpreterRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete interpreter: %w", err)
	}
	return nil
}

// GetInterpreter retrieves an interpreter by ID
func (s *InterpreterService) GetInterpreter(ctx context.Context, id int64) (*domain.Interpreter, error) {
	return s.interpreterRepo.FindByID(ctx, id)
}

// ListInterpreters lists interpreters with filtering
func (s *InterpreterService) ListInterpreters(ctx context.Context, filter repository.InterpreterFilter) ([]*domain.Interpreter, error) {
	return s.interpreterRepo.List(ctx, filter)
}

// CountInterpreters counts interpreters with filtering
func (s *InterpreterService) CountInterpreters(ctx context.Context, filter repository.InterpreterFilter) (int, error) {
	return s.interpreterRepo.Count(ctx, filter)
}

// GetPostsForInterpreter gets all posts attributed to an interpreter
func (s *InterpreterService) GetPostsForInterpreter(ctx context.Context, interpreterID int64) ([]*domain.Post, error) {
	return s.postRepo.List(ctx, repository.PostFilter{InterpreterID: &interpreterID})
}

func (s *InterpreterService) validateInterpreter(interpreter *domain.Interpreter) error {
	if interpreter.Name == "" {
		return fmt.Errorf("interpreter name is required")
	}
	if !slugPattern.MatchString(interpreter.Slug) {
		return fmt.Errorf("invalid slug: %s", interpreter.Slug)
	}
	if len(interpreter.Languages) == 0 {
		return fmt.Errorf("at least one language is required")
	}
	return nil
}
