package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/tripsmith/trip-cli/internal/model"
)

// SQLiteLedger persists ranked result sets in a SQLite database, one row per
// session holding the JSON-encoded candidate list.
type SQLiteLedger struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given DSN and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteLedger, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "ledger: sqlite open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "ledger: sqlite exec %s", pragma)
		}
	}
	return &SQLiteLedger{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS session_candidates (
	session_id TEXT PRIMARY KEY,
	candidates TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// Migrate creates the ledger schema.
func (l *SQLiteLedger) Migrate(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "ledger: sqlite migrate")
}

func (l *SQLiteLedger) Record(ctx context.Context, sessionID string, candidates []model.CandidateItinerary) error {
	payload, err := json.Marshal(candidates)
	if err != nil {
		return eris.Wrap(err, "ledger: marshal candidates")
	}

	_, err = l.db.ExecContext(ctx,
		`INSERT INTO session_candidates (session_id, candidates, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET candidates = excluded.candidates, updated_at = excluded.updated_at`,
		sessionID, string(payload), time.Now().UTC(),
	)
	return eris.Wrapf(err, "ledger: sqlite record session %s", sessionID)
}

func (l *SQLiteLedger) Get(ctx context.Context, sessionID string) ([]model.CandidateItinerary, error) {
	var payload string
	err := l.db.QueryRowContext(ctx,
		`SELECT candidates FROM session_candidates WHERE session_id = ?`,
		sessionID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoCandidates
	}
	if err != nil {
		return nil, eris.Wrapf(err, "ledger: sqlite get session %s", sessionID)
	}

	var candidates []model.CandidateItinerary
	if err := json.Unmarshal([]byte(payload), &candidates); err != nil {
		return nil, eris.Wrapf(err, "ledger: unmarshal candidates for session %s", sessionID)
	}
	if candidates == nil {
		candidates = []model.CandidateItinerary{}
	}
	return candidates, nil
}

func (l *SQLiteLedger) Close() error {
	return l.db.Close()
}
