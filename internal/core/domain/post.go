package domain

import (
	"time"

	"github.com/google/uuid"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
)

// Post is a localized blog article. InterpreterID and KeywordID are set
// when the post was generated for a persona or an SEO target.
type Post struct {
	ID            string     `db:"id"` // UUID
	InterpreterID *int64     `db:"interpreter_id"`
	KeywordID     *int64     `db:"keyword_id"`
	Locale        string     `db:"locale"`
	Slug          string     `db:"slug"`
	Title         string     `db:"title"`
	Body          string     `db:"body"`
	Status        PostStatus `db:"status"`
	PublishedAt   *time.Time `db:"published_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func NewPost(locale, slug, title, body string) *Post {
	now := time.Now()
	return &Post{
		ID:        uuid.New().String(),
		Locale:    locale,
		Slug:      slug,
		Title:     title,
		Body:      body,
		Status:    PostStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p *Post) Publish(at time.Time) {
	p.Status = PostStatusPublished
	p.PublishedAt = &at
	p.UpdatedAt = at
}
