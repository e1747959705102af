package domain

import "time"

// Keyword is an SEO target term. The publish pipeline picks the
// highest-priority keyword for a locale when drafting a post.
type Keyword struct {
	ID        int64     `db:"id"`
	Term      string    `db:"term"`
	Locale    string    `db:"locale"`
	Priority  int       `db:"priority"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func NewKeyword(term, locale string, priority int) *Keyword {
	now := time.Now()
	return &Keyword{
		Term:      term,
		Locale:    locale,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
