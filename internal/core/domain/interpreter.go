package domain

import "time"

// Interpreter is a medical-interpreter persona shown on the public site
// and used as the byline for generated blog content.
type Interpreter struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Bio       string    `db:"bio"`
	PhotoURL  string    `db:"photo_url"`
	Languages []string  `db:"languages"` // ISO 639-1 codes
	Specialty string    `db:"specialty"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func NewInterpreter(name, slug string, languages []string) *Interpreter {
	now := time.Now()
	return &Interpreter{
		Name:      name,
		Slug:      slug,
		Languages: languages,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
