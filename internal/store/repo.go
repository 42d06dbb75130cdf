package store

import (
	"context"
	"errors"
	"time"
)

// ErrPlanNotFound is returned by PlanRepo.Get for an unknown ID.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRecord is one archived review plan. Body holds the serialized plan
// exactly as it was generated.
type PlanRecord struct {
	ID        string
	Student   string
	Strategy  string
	CreatedAt time.Time
	Body      []byte
}

// ListOpts configures plan queries with filtering and pagination.
type ListOpts struct {
	Limit    int    // max results (0 = unlimited)
	Student  string // exact match when set
	Strategy string // exact match when set
}

// PlanRepo archives generated plans.
type PlanRepo interface {
	// Save stores rec, assigning an ID and timestamp when unset.
	Save(ctx context.Context, rec *PlanRecord) error

	// Get returns the plan with the given ID, or ErrPlanNotFound.
	Get(ctx context.Context, id string) (*PlanRecord, error)

	// List returns plans newest first.
	List(ctx context.Context, opts ListOpts) ([]PlanRecord, error)

	// Prune deletes all but the N most recent plans.
	Prune(ctx context.Context, keep int) error
}

// MasteryRepo persists per-topic mastery flags between runs.
type MasteryRepo interface {
	// Set records the mastery flag for a topic.
	Set(ctx context.Context, topicID string, mastered bool) error

	// All returns every recorded flag keyed by topic ID.
	All(ctx context.Context) (map[string]bool, error)

	// Reset forgets every recorded flag.
	Reset(ctx context.Context) error
}
