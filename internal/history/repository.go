// Package history records completed lookups so the user can review and
// export the vocabulary they ran into.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Lookup is one completed translation request.
type Lookup struct {
	ID          int64     `db:"id"`
	Text        string    `db:"text"`
	IsWord      bool      `db:"is_word"`
	Translation string    `db:"translation"`
	Provider    string    `db:"provider"`
	IPA         string    `db:"ipa"`
	AudioURL    string    `db:"audio_url"`
	CreatedAt   time.Time `db:"created_at"`
}

// LookupRepository defines operations for managing recorded lookups.
type LookupRepository interface {
	FindRecent(ctx context.Context, limit int) ([]Lookup, error)
	Insert(ctx context.Context, lookup *Lookup) error
}

// DBLookupRepository implements LookupRepository using MySQL.
type DBLookupRepository struct {
	db *sqlx.DB
}

// NewDBLookupRepository creates a new DBLookupRepository.
func NewDBLookupRepository(db *sqlx.DB) *DBLookupRepository {
	return &DBLookupRepository{db: db}
}

// FindRecent returns the most recent lookups, newest first.
func (r *DBLookupRepository) FindRecent(ctx context.Context, limit int) ([]Lookup, error) {
	var lookups []Lookup
	if err := r.db.SelectContext(ctx, &lookups,
		"SELECT * FROM lookups ORDER BY created_at DESC, id DESC LIMIT ?", limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(lookups) > %w", err)
	}
	return lookups, nil
}

// Insert records a completed lookup.
func (r *DBLookupRepository) Insert(ctx context.Context, lookup *Lookup) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lookups (text, is_word, translation, provider, ipa, audio_url)
		VALUES (?, ?, ?, ?, ?, ?)`,
		lookup.Text, lookup.IsWord, lookup.Translation, lookup.Provider, lookup.IPA, lookup.AudioURL)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert lookup) > %w", err)
	}
	return nil
}
