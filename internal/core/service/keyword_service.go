package service

import (
	"context"
	"fmt"
	"time"

	"github.com/soomin/lingocare/internal/core/domain"
	"github.com/soomin/lingocare/internal/core/repository"
)

type KeywordService struct {
	keywordRepo repository.KeywordRepository
}

func NewKeywordService(keywordRepo repository.KeywordRepository) *KeywordService {
	return &KeywordService{keywordRepo: keywordRepo}
}

// CreateKeyword creates a new SEO keyword
func (s *KeywordService) CreateKeyword(ctx context.Context, keyword *domain.Keyword) error {
	if err := s.validateKeyword(keyword); err != nil {
		return err
	}

	if err := s.keywordRepo.Create(ctx, keyword); err != nil {
		return fmt.Errorf("failed to create keyword: %w", err)
	}

	return nil
}

// UpdateKeyword updates an existing keyword
func (s *KeywordService) UpdateKeyword(ctx context.Context, keyword *domain.Keyword) error {
	if err := s.validateKeyword(keyword); err != nil {
		return err
	}

	keyword.UpdatedAt = time.Now()
	if err := s.keywordRepo.Update(ctx, keyword); err != nil {
		return fmt.Errorf("failed to update keyword: %w", err)
	}

	return nil
}

// DeleteKeyword deletes a keyword
func (s *KeywordService) DeleteKeyword(ctx context.Context, id int64) error {
	if err := s.keywordRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete keyword: %w", err)
	}
	return nil
}

// GetKeyword retrieves a keyword by ID
func (s *KeywordService) GetKeyword(ctx context.Context, id int64) (*domain.Keyword, error) {
	return s.keywordRepo.FindByID(ctx, id)
}

// ListKeywords lists keywords with filtering, highest priority first
func (s *KeywordService) ListKeywords(ctx context.Context, filter repository.KeywordFilter) ([]*domain.Keyword, error) {
	return s.keywordRepo.List(ctx, filter)
}

// CountKeywords counts keywords with filtering
func (s *KeywordService) CountKeywords(ctx context.Context, filter repository.KeywordFilter) (int, error) {
	return s.keywordRepo.Count(ctx, filter)
}

func (s *KeywordService) validateKeyword(keyword *domain.Keyword) error {
	if keyword.Term == "" {
		return fmt.Errorf("keyword term is required")
	}
	if keyword.Locale == "" {
		return fmt.Errorf("keyword locale is required")
	}
	return nil
}
