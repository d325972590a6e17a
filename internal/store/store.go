// Package store persists tallies so scoring runs can be listed later.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/pokerhands/poker"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Record is one saved scoring run.
type Record struct {
	ID        string      `json:"id"`
	Source    string      `json:"source"`
	Rules     string      `json:"rules"`
	Score     poker.Score `json:"score"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewRecord creates a record with a fresh ID, stamped with the clock's time.
func NewRecord(source string, rules poker.Rules, score poker.Score, clock quartz.Clock) Record {
	return Record{
		ID:        uuid.NewString(),
		Source:    source,
		Rules:     rules.String(),
		Score:     score,
		CreatedAt: clock.Now().UTC(),
	}
}

// Store saves and loads records.
type Store interface {
	// Save stores a record, replacing any record with the same ID.
	Save(ctx context.Context, rec Record) error
	// Get loads a record by ID.
	Get(ctx context.Context, id string) (Record, error)
	// List returns up to limit records, newest first. A limit of zero or less returns all.
	List(ctx context.Context, limit int) ([]Record, error)
}
