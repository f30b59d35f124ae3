package ledger

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsmith/trip-cli/internal/model"
)

var codePattern = regexp.MustCompile(`^(FL|HT)-[0-9a-f]{8}$`)

func seededLedger(t *testing.T, candidates ...model.CandidateItinerary) *MemoryLedger {
	t.Helper()
	l := NewMemory()
	require.NoError(t, l.Record(context.Background(), "s1", candidates))
	return l
}

func TestBook(t *testing.T) {
	t.Parallel()

	chosen := candidate("Alfama Stay", 1035)
	chosen.Days = []model.ItineraryDay{
		{DateISO: "2026-09-10", BookedActivities: []model.ActivityOption{{Title: "Tram Tour"}, {Title: "Fado Night"}}},
		{DateISO: "2026-09-11", BookedActivities: []model.ActivityOption{{Title: "Museum"}}},
	}
	l := seededLedger(t, candidate("Other", 1200), chosen)

	conf, err := Book(context.Background(), l, "s1", 2)
	require.NoError(t, err)

	assert.Equal(t, "success", conf.Status)
	assert.Equal(t, 3, conf.ActivitiesCount)
	assert.Equal(t, chosen, conf.Itinerary)
	assert.Regexp(t, codePattern, conf.FlightsConfirmation)
	assert.Regexp(t, codePattern, conf.HotelConfirmation)
	assert.True(t, conf.FlightsConfirmation[:2] == "FL")
	assert.True(t, conf.HotelConfirmation[:2] == "HT")
}

func TestBook_IndexOutOfRange(t *testing.T) {
	t.Parallel()

	l := seededLedger(t, candidate("Only", 1000))

	for _, idx := range []int{0, -1, 2, 99} {
		_, err := Book(context.Background(), l, "s1", idx)
		var ierr *IndexError
		require.ErrorAs(t, err, &ierr, "index %d", idx)
		assert.Equal(t, idx, ierr.Index)
		assert.Equal(t, 1, ierr.Len)
	}
}

func TestBook_NoPlanRecorded(t *testing.T) {
	t.Parallel()

	_, err := Book(context.Background(), NewMemory(), "nobody", 1)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestBook_EmptyRecordedList(t *testing.T) {
	t.Parallel()

	l := seededLedger(t)
	_, err := Book(context.Background(), l, "s1", 1)
	var ierr *IndexError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 0, ierr.Len)
}

func TestBook_RepeatableWithFreshCodes(t *testing.T) {
	t.Parallel()

	l := seededLedger(t, candidate("Alfama Stay", 1035))

	first, err := Book(context.Background(), l, "s1", 1)
	require.NoError(t, err)
	second, err := Book(context.Background(), l, "s1", 1)
	require.NoError(t, err)

	assert.Equal(t, first.Itinerary, second.Itinerary)
	assert.NotEqual(t, first.FlightsConfirmation, second.FlightsConfirmation)
	assert.NotEqual(t, first.HotelConfirmation, second.HotelConfirmation)
}

func TestIndexError_Message(t *testing.T) {
	t.Parallel()

	err := &IndexError{Index: 5, Len: 3}
	assert.Equal(t, "option index 5 out of range [1, 3]", err.Error())
}
