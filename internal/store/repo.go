package store

import (
	"context"
	"time"

	"github.com/abhisek/kotoba/internal/progress"
)

// SnapshotRepo manages learner state snapshots. The snapshot is written
// whole after every successful engine mutation; loads take the latest row.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, p *progress.Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*progress.Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Reset deletes all snapshots, returning the learner to first-launch state.
	Reset(ctx context.Context) error
}

// Event is one progress-engine operation on the append-only log.
// Session groups the events of a single process run.
type Event struct {
	ID        string
	Session   string
	Op        string
	Detail    string
	Timestamp time.Time
}

// EventRepo provides append access to the operation log.
type EventRepo interface {
	// Append records one engine operation.
	Append(ctx context.Context, e Event) error

	// Recent returns the latest events, newest first.
	Recent(ctx context.Context, limit int) ([]Event, error)
}
