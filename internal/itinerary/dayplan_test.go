package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsmith/trip-cli/internal/model"
)

func act(title, date, start string, price, rating float64) model.ActivityOption {
	return model.ActivityOption{
		Title:      title,
		DateISO:    date,
		StartLocal: start,
		EndLocal:   "23:00",
		PriceEUR:   price,
		Category:   "sightseeing",
		Rating:     rating,
	}
}

func TestPlanDays_EveryDayPresent(t *testing.T) {
	t.Parallel()

	days, err := PlanDays(nil, "2026-09-10", "2026-09-13", 100)
	require.NoError(t, err)

	require.Len(t, days, 4)
	assert.Equal(t, "2026-09-10", days[0].DateISO)
	assert.Equal(t, "2026-09-13", days[3].DateISO)
	for _, d := range days {
		assert.Empty(t, d.BookedActivities)
		assert.Empty(t, d.Morning)
	}
}

func TestPlanDays_OneActivityPerSlot(t *testing.T) {
	t.Parallel()

	activities := []model.ActivityOption{
		act("Castle Tour", "2026-09-10", "09:00", 20, 4.8),
		act("Old Town Walk", "2026-09-10", "10:00", 5, 4.5),
		act("River Cruise", "2026-09-10", "15:00", 30, 4.2),
	}

	days, err := PlanDays(activities, "2026-09-10", "2026-09-10", 100)
	require.NoError(t, err)
	require.Len(t, days, 1)

	day := days[0]
	// Two morning candidates compete for one slot; the higher-rated wins.
	assert.Equal(t, "Castle Tour", day.Morning)
	assert.Equal(t, "River Cruise", day.Afternoon)
	assert.Len(t, day.BookedActivities, 2)
}

func TestPlanDays_BudgetSkipsButKeepsScanning(t *testing.T) {
	t.Parallel()

	activities := []model.ActivityOption{
		act("Helicopter Ride", "2026-09-10", "09:00", 500, 5.0),
		act("Museum", "2026-09-10", "10:00", 15, 4.0),
	}

	days, err := PlanDays(activities, "2026-09-10", "2026-09-10", 50)
	require.NoError(t, err)

	day := days[0]
	require.Len(t, day.BookedActivities, 1)
	assert.Equal(t, "Museum", day.BookedActivities[0].Title)
}

func TestPlanDays_AtMostTwoPerDay(t *testing.T) {
	t.Parallel()

	activities := []model.ActivityOption{
		act("Morning Market", "2026-09-10", "08:00", 5, 4.9),
		act("Gallery", "2026-09-10", "14:00", 10, 4.7),
		act("Fado Night", "2026-09-10", "20:00", 25, 4.8),
	}

	days, err := PlanDays(activities, "2026-09-10", "2026-09-10", 1000)
	require.NoError(t, err)

	day := days[0]
	assert.Len(t, day.BookedActivities, 2)
	// Scanned in rating order, so the evening slot (4.8) fills before the
	// afternoon one (4.7) and the day stops at two.
	assert.Equal(t, "Morning Market", day.Morning)
	assert.Equal(t, "Fado Night", day.Evening)
	assert.Empty(t, day.Afternoon)
}

func TestPlanDays_RatingThenPriceOrder(t *testing.T) {
	t.Parallel()

	activities := []model.ActivityOption{
		act("Pricey Tour", "2026-09-10", "09:00", 40, 4.5),
		act("Cheap Tour", "2026-09-10", "10:00", 10, 4.5),
	}

	days, err := PlanDays(activities, "2026-09-10", "2026-09-10", 15)
	require.NoError(t, err)

	day := days[0]
	require.Len(t, day.BookedActivities, 1)
	assert.Equal(t, "Cheap Tour", day.BookedActivities[0].Title)
}

func TestPlanDays_GroupsByDate(t *testing.T) {
	t.Parallel()

	activities := []model.ActivityOption{
		act("Day One", "2026-09-10", "09:00", 10, 4.0),
		act("Day Two", "2026-09-11", "09:00", 10, 4.0),
		act("Timestamped Date", "2026-09-11T00:00:00", "15:00", 10, 4.0),
	}

	days, err := PlanDays(activities, "2026-09-10", "2026-09-11", 100)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, "Day One", days[0].Morning)
	assert.Equal(t, "Day Two", days[1].Morning)
	assert.Equal(t, "Timestamped Date", days[1].Afternoon)
}

func TestPlanDays_InvalidDates(t *testing.T) {
	t.Parallel()

	_, err := PlanDays(nil, "not-a-date", "2026-09-11", 100)
	assert.Error(t, err)

	_, err = PlanDays(nil, "2026-09-10", "whenever", 100)
	assert.Error(t, err)
}

func TestTripDates(t *testing.T) {
	t.Parallel()

	start, end, err := TripDates("2026-09-10", "2026-09-12")
	require.NoError(t, err)
	assert.True(t, start.Before(end))

	_, _, err = TripDates("2026-09-12", "2026-09-10")
	assert.Error(t, err)
}
