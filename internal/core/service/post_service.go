package service

import (
	"context"
	"fmt"
	"time"

	"github.com/soomin/lingocare/internal/core/domain"
	"github.com/soomin/lingocare/internal/core/repository"
)

type PostService struct {
	postRepo        repository.PostRepository
	interpreterRepo repository.InterpreterRepository
	keywordRepo     repository.KeywordRepository
}

func NewPostService(
	postRepo repository.PostRepository,
	interpreterRepo repository.InterpreterRepository,
	keywordRepo repository.KeywordRepository,
) *PostService {
	return &PostService{
		postRepo:        postRepo,
		interpreterRepo: interpreterRepo,
		keywordRepo:     keywordRepo,
	}
}

// CreatePost creates a new blog post
func (s *PostService) CreatePost(ctx context.Context, post *domain.Post) error {
	if err := s.validatePost(ctx, post); err != nil {
		return err
	}

	if _, err := s.postRepo.FindBySlug(ctx, post.Locale, post.Slug); err == nil {
		return fmt.Errorf("post slug already in use for locale %s: %s", post.Locale, post.Slug)
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// UpdatePost updates an existing post
func (s *PostService) UpdatePost(ctx context.Context, post *domain.Post) error {
	if err := s.validatePost(ctx, post); err != nil {
		return err
	}

	post.UpdatedAt = time.Now()
	if err := s.postRepo.Update(ctx, post); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

// PublishPost transitions a post to published and stamps the publish time
func (s *PostService) PublishPost(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.Status == domain.PostStatusPublished {
		return nil, fmt.Errorf("post already published: %s", id)
	}

	post.Publish(time.Now())
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to publish post: %w", err)
	}

	return post, nil
}

// DeletePost deletes a post
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

// GetPublishedPost retrieves a published post by locale and slug for the
// public blog. Drafts are not visible through this path.
func (s *PostService) GetPublishedPost(ctx context.Context, locale, slug string) (*domain.Post, error) {
	post, err := s.postRepo.FindBySlug(ctx, locale, slug)
	if err != nil {
		return nil, err
	}
	if post.Status != domain.PostStatusPublished {
		return nil, fmt.Errorf("post not found")
	}
	return post, nil
}

// ListPosts lists posts with filtering
func (s *PostService) ListPosts(ctx context.Context, filter repository.PostFilter) ([]*domain.Post, error) {
	return s.postRepo.List(ctx, filter)
}

// CountPosts counts posts with filtering
func (s *PostService) CountPosts(ctx context.Context, filter repository.PostFilter) (int, error) {
	return s.postRepo.Count(ctx, filter)
}

func (s *PostService) validatePost(ctx context.Context, post *domain.Post) error {
	if post.Locale == "" {
		return fmt.Errorf("post locale is required")
	}
	if !slugPattern.MatchString(post.Slug) {
		return fmt.Errorf("invalid slug: %s", post.Slug)
	}
	if post.Title == "" {
		return fmt.Errorf("post title is required")
	}

	if post.InterpreterID != nil {
		if _, err := s.interpreterRepo.FindByID(ctx, *post.InterpreterID); err != nil {
			return fmt.Errorf("interpreter not found: %d", *post.InterpreterID)
		}
	}
	if post.KeywordID != nil {
		if _, err := s.keywordRepo.FindByID(ctx, *post.KeywordID); err != nil {
			return fmt.Errorf("keyword not found: %d", *post.KeywordID)
		}
	}

	return nil
}
