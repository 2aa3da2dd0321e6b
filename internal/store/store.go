// Package store keeps evaluation results for later retrieval by id.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"leasescore/internal/model"
)

// ErrNotFound is returned when no unexpired record exists for an id.
var ErrNotFound = errors.New("result not found")

// Record is a stored evaluation.
type Record struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	Result    *model.EvaluationResult `json:"result"`
}

// Store is implemented by the memory and Redis backends.
type Store interface {
	Put(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// NewRecord wraps res in a Record with a fresh id.
func NewRecord(name string, res *model.EvaluationResult, now time.Time) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now.UTC(),
		Result:    res,
	}
}

// ValidID reports whether id looks like an id produced by NewRecord.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
