// Package ledger owns the per-session ranked candidate lists produced by
// composition and the book-by-index operation against them. The Ledger
// interface keeps the storage backend injectable: in-memory for a single
// process, sqlite/postgres/redis when the ranked lists need to outlive it.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripsmith/trip-cli/internal/model"
)

// ErrNoCandidates is returned when a session has no recorded candidate list,
// i.e. booking was attempted before any compose call for that session.
var ErrNoCandidates = errors.New("no candidates recorded for session")

// IndexError is returned when the booking index falls outside the recorded
// list. Indexes are 1-based.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("option index %d out of range [1, %d]", e.Index, e.Len)
}

// Ledger stores the most recent ranked result set per session. Record fully
// replaces any prior list for the session; lists are never merged across
// sessions.
type Ledger interface {
	// Record replaces the session's candidate list. An empty list is a valid
	// recording (a compose call that found no viable options).
	Record(ctx context.Context, sessionID string, candidates []model.CandidateItinerary) error

	// Get returns the session's most recently recorded list, or
	// ErrNoCandidates when nothing has been recorded.
	Get(ctx context.Context, sessionID string) ([]model.CandidateItinerary, error)

	Close() error
}
