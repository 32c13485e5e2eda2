// README: Plan journal store backed by PostgreSQL (append-only audit of provider attempts).
package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"travelplanner/internal/planner"
)

// Entry is one persisted attempt.
type Entry struct {
	ID          uuid.UUID
	Destination string
	Duration    int
	Budget      string
	Interests   []string
	Outcome     string
	Detail      string
	LatencyMs   int64
	CreatedAt   time.Time
}

// Store handles plan_journal persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Record implements planner.Recorder.
func (s *Store) Record(ctx context.Context, a planner.Attempt) error {
	return s.Append(ctx, entryFromAttempt(a, time.Now().UTC()))
}

// Append inserts e into the journal.
func (s *Store) Append(ctx context.Context, e Entry) error {
	interests := e.Interests
	if interests == nil {
		interests = []string{}
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_journal (
			id, destination, duration_days, budget, interests,
			outcome, detail, latency_ms, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Destination, e.Duration, e.Budget, interests,
		e.Outcome, e.Detail, e.LatencyMs, e.CreatedAt,
	)
	return err
}

// Recent returns the latest entries, newest first. Used by operators and tests;
// the request path never reads the journal.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, destination, duration_days, budget, interests,
		       outcome, detail, latency_ms, created_at
		FROM plan_journal
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Destination, &e.Duration, &e.Budget, &e.Interests,
			&e.Outcome, &e.Detail, &e.LatencyMs, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func entryFromAttempt(a planner.Attempt, now time.Time) Entry {
	return Entry{
		ID:          uuid.New(),
		Destination: a.Request.Destination,
		Duration:    a.Request.Duration,
		Budget:      a.Request.Budget,
		Interests:   a.Request.Interests,
		Outcome:     a.Outcome,
		Detail:      a.Detail,
		LatencyMs:   a.Latency.Milliseconds(),
		CreatedAt:   now,
	}
}
