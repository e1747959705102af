package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS user (
	username TEXT PRIMARY KEY,
	password TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'editor',
	locale TEXT NOT NULL DEFAULT 'en',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS interpreter (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	bio TEXT NOT NULL DEFAULT '',
	photo_url TEXT NOT NULL DEFAULT '',
	languages TEXT NOT NULL, -- JSON array of ISO 639-1 codes
	specialty TEXT NOT NULL DEFAULT '',
	active INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS keyword (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	term TEXT NOT NULL,
	locale TEXT NOT NULL,
	priority INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	UNIQUE (term, locale)
);

CREATE TABLE IF NOT EXISTS post (
	id TEXT PRIMARY KEY,
	interpreter_id INTEGER,
	keyword_id INTEGER,
	locale TEXT NOT NULL,
	slug TEXT NOT NULL,
	title TEXT NOT NULL,
	body TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'draft',
	published_at DATETIME,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	UNIQUE (locale, slug),
	FOREIGN KEY (interpreter_id) REFERENCES interpreter(id) ON DELETE SET NULL,
	FOREIGN KEY (keyword_id) REFERENCES keyword(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS publish_settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	cron_expression TEXT NOT NULL,
	enabled INTEGER NOT NULL DEFAULT 0,
	locale TEXT NOT NULL DEFAULT 'en',
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_posts_locale_status ON post(locale, status);
CREATE INDEX IF NOT EXISTS idx_posts_published_at ON post(published_at);
CREATE INDEX IF NOT EXISTS idx_keywords_locale ON keyword(locale);
`

type DB struct {
	*sqlx.DB
}

func New(dbPath string) (*DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Enable WAL mode for better concurrency (allows concurrent reads/writes)
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set busy timeout to handle concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// NullString helper for optional string fields
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullInt64 helper for optional int64 fields
func NullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}
