package ledger

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/tripsmith/trip-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the ledger uses, kept narrow so tests
// can substitute pgxmock.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresLedger persists ranked result sets in Postgres, one JSONB row per
// session.
type PostgresLedger struct {
	pool Pool
}

// NewPostgres connects a PostgresLedger to the given connection string.
func NewPostgres(ctx context.Context, connString string) (*PostgresLedger, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "ledger: postgres connect")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "ledger: postgres ping")
	}
	return &PostgresLedger{pool: pool}, nil
}

// NewPostgresWithPool wraps an existing pool, mainly for tests.
func NewPostgresWithPool(pool Pool) *PostgresLedger {
	return &PostgresLedger{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS session_candidates (
	session_id TEXT PRIMARY KEY,
	candidates JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate creates the ledger schema.
func (l *PostgresLedger) Migrate(ctx context.Context) error {
	_, err := l.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "ledger: postgres migrate")
}

func (l *PostgresLedger) Record(ctx context.Context, sessionID string, candidates []model.CandidateItinerary) error {
	payload, err := json.Marshal(candidates)
	if err != nil {
		return eris.Wrap(err, "ledger: marshal candidates")
	}

	_, err = l.pool.Exec(ctx,
		`INSERT INTO session_candidates (session_id, candidates, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (session_id) DO UPDATE SET candidates = EXCLUDED.candidates, updated_at = now()`,
		sessionID, payload,
	)
	return eris.Wrapf(err, "ledger: postgres record session %s", sessionID)
}

func (l *PostgresLedger) Get(ctx context.Context, sessionID string) ([]model.CandidateItinerary, error) {
	var payload []byte
	err := l.pool.QueryRow(ctx,
		`SELECT candidates FROM session_candidates WHERE session_id = $1`,
		sessionID,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoCandidates
	}
	if err != nil {
		return nil, eris.Wrapf(err, "ledger: postgres get session %s", sessionID)
	}

	var candidates []model.CandidateItinerary
	if err := json.Unmarshal(payload, &candidates); err != nil {
		return nil, eris.Wrapf(err, "ledger: unmarshal candidates for session %s", sessionID)
	}
	if candidates == nil {
		candidates = []model.CandidateItinerary{}
	}
	return candidates, nil
}

func (l *PostgresLedger) Close() error {
	l.pool.Close()
	return nil
}
