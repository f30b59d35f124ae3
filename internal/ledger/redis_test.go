package ledger

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsmith/trip-cli/internal/model"
)

// Requires a running Redis; set TRIP_TEST_REDIS_ADDR to enable.
func newTestRedis(t *testing.T) *RedisLedger {
	t.Helper()

	addr := os.Getenv("TRIP_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TRIP_TEST_REDIS_ADDR not set")
	}

	l, err := OpenRedis(context.Background(), addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRedisLedger_RoundTrip(t *testing.T) {
	t.Parallel()
	l := newTestRedis(t)
	session := uuid.NewString()

	want := []model.CandidateItinerary{candidate("Alfama Stay", 1035)}
	require.NoError(t, l.Record(context.Background(), session, want))

	got, err := l.Get(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRedisLedger_MissingSession(t *testing.T) {
	t.Parallel()
	l := newTestRedis(t)

	_, err := l.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestRedisLedger_RecordOverwrites(t *testing.T) {
	t.Parallel()
	l := newTestRedis(t)
	session := uuid.NewString()

	require.NoError(t, l.Record(context.Background(), session, []model.CandidateItinerary{candidate("First", 1000)}))
	require.NoError(t, l.Record(context.Background(), session, []model.CandidateItinerary{candidate("Second", 900)}))

	got, err := l.Get(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Second", got[0].Hotel.Name)
}
