package ledger

import (
	"context"
	"sync"

	"github.com/tripsmith/trip-cli/internal/model"
)

// MemoryLedger is the default in-process Ledger. Operations on the same
// session are serialized through a per-session mutex so a booking call never
// observes a half-written list; distinct sessions do not contend.
type MemoryLedger struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
}

type memorySession struct {
	mu         sync.Mutex
	recorded   bool
	candidates []model.CandidateItinerary
}

// NewMemory creates an empty MemoryLedger.
func NewMemory() *MemoryLedger {
	return &MemoryLedger{sessions: make(map[string]*memorySession)}
}

func (m *MemoryLedger) session(sessionID string) *memorySession {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		s = &memorySession{}
		m.sessions[sessionID] = s
	}
	return s
}

func (m *MemoryLedger) Record(ctx context.Context, sessionID string, candidates []model.CandidateItinerary) error {
	s := m.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recorded = true
	s.candidates = append([]model.CandidateItinerary(nil), candidates...)
	return nil
}

func (m *MemoryLedger) Get(ctx context.Context, sessionID string) ([]model.CandidateItinerary, error) {
	s := m.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.recorded {
		return nil, ErrNoCandidates
	}
	return append([]model.CandidateItinerary(nil), s.candidates...), nil
}

func (m *MemoryLedger) Close() error {
	return nil
}
