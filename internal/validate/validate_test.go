package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flightJSON = `{
	"source": "Berlin", "dest": "Lisbon",
	"depart_iso": "2026-09-10T08:00:00", "arrive_iso": "2026-09-10T10:30:00",
	"airline": "TAP", "price_eur": 145.0
}`

const hotelJSON = `{
	"name": "Alfama Stay", "address": "Rua do Sol 12",
	"checkin_iso": "2026-09-10T15:00:00", "checkout_iso": "2026-09-12T11:00:00",
	"rating": 4.5, "price_total_eur": 650.0
}`

const activityJSON = `{
	"title": "Tram Tour", "date_iso": "2026-09-10",
	"start_local": "09:00", "end_local": "11:00",
	"price_eur": 50.0, "category": "sightseeing", "rating": 4.7
}`

func TestFlights_BareArrayAndWrapper(t *testing.T) {
	t.Parallel()

	bare := "[" + flightJSON + "]"
	wrapped := `{"flights": [` + flightJSON + `]}`

	for _, payload := range []string{bare, wrapped} {
		flights, err := Flights([]byte(payload))
		require.NoError(t, err)
		require.Len(t, flights, 1)
		assert.Equal(t, "Berlin", flights[0].Source)
		assert.Equal(t, 145.0, flights[0].PriceEUR)
	}
}

func TestFlights_WrapperWithoutKeyIsEmpty(t *testing.T) {
	t.Parallel()

	flights, err := Flights([]byte(`{"status": "ok"}`))
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestFlights_CabinDefault(t *testing.T) {
	t.Parallel()

	flights, err := Flights([]byte("[" + flightJSON + "]"))
	require.NoError(t, err)
	assert.Equal(t, "Economy", flights[0].Cabin)
}

func TestFlights_FieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		field   string
	}{
		{
			name:    "missing airline",
			payload: `[{"source": "A", "dest": "B", "depart_iso": "2026-09-10T08:00", "arrive_iso": "2026-09-10T10:00", "price_eur": 10}]`,
			field:   "airline",
		},
		{
			name:    "negative price",
			payload: `[{"source": "A", "dest": "B", "depart_iso": "2026-09-10T08:00", "arrive_iso": "2026-09-10T10:00", "airline": "X", "price_eur": -5}]`,
			field:   "price_eur",
		},
		{
			name:    "depart after arrive",
			payload: `[{"source": "A", "dest": "B", "depart_iso": "2026-09-10T12:00", "arrive_iso": "2026-09-10T08:00", "airline": "X", "price_eur": 10}]`,
			field:   "depart_iso",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Flights([]byte(tt.payload))
			var merr *MalformedError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, "flights", merr.List)
			assert.Equal(t, 0, merr.Index)
			assert.Equal(t, tt.field, merr.Field)
		})
	}
}

func TestFlights_UnparseableTimestampsPass(t *testing.T) {
	t.Parallel()

	// Presence is required but parseability is not; leniency belongs to the
	// window aligner.
	payload := `[{"source": "A", "dest": "B", "depart_iso": "soon", "arrive_iso": "later", "airline": "X", "price_eur": 10}]`
	flights, err := Flights([]byte(payload))
	require.NoError(t, err)
	assert.Len(t, flights, 1)
}

func TestFlights_MalformedPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"not json", "certainly not json"},
		{"scalar", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Flights([]byte(tt.payload))
			var merr *MalformedError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, -1, merr.Index)
		})
	}
}

func TestHotels(t *testing.T) {
	t.Parallel()

	hotels, err := Hotels([]byte(`{"hotels": [` + hotelJSON + `]}`))
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Alfama Stay", hotels[0].Name)
	assert.Equal(t, 4.5, hotels[0].Rating)
}

func TestHotels_RatingOutOfRange(t *testing.T) {
	t.Parallel()

	payload := `[{"name": "X", "address": "Y", "checkin_iso": "2026-09-10", "checkout_iso": "2026-09-12", "rating": 5.5, "price_total_eur": 100}]`
	_, err := Hotels([]byte(payload))
	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "rating", merr.Field)
}

func TestHotels_CheckinAfterCheckout(t *testing.T) {
	t.Parallel()

	payload := `[{"name": "X", "address": "Y", "checkin_iso": "2026-09-12T15:00", "checkout_iso": "2026-09-10T11:00", "rating": 4.0, "price_total_eur": 100}]`
	_, err := Hotels([]byte(payload))
	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "checkin_iso", merr.Field)
}

func TestActivities_WrapperUsesItemsKey(t *testing.T) {
	t.Parallel()

	activities, err := Activities([]byte(`{"items": [` + activityJSON + `]}`))
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Tram Tour", activities[0].Title)

	// An "activities" wrapper key is not recognized.
	activities, err = Activities([]byte(`{"activities": [` + activityJSON + `]}`))
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestActivities_StartLocalMustBeClockTime(t *testing.T) {
	t.Parallel()

	payload := `[{"title": "X", "date_iso": "2026-09-10", "start_local": "morning", "end_local": "11:00", "price_eur": 10, "category": "tour", "rating": 4.0}]`
	_, err := Activities([]byte(payload))
	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "start_local", merr.Field)
	assert.Contains(t, merr.Error(), "activities record 0")
}

func TestBudget(t *testing.T) {
	t.Parallel()

	p, err := Budget([]byte(`{"flight_cap_eur": 400, "hotel_cap_eur": 800, "activities_cap_eur": 150, "notes": "mid-range"}`))
	require.NoError(t, err)
	assert.Equal(t, 400.0, p.FlightCapEUR)
	assert.Equal(t, 800.0, p.HotelCapEUR)
	assert.Equal(t, 150.0, p.ActivitiesCapEUR)
	assert.Equal(t, "mid-range", p.Notes)
}

func TestBudget_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Budget([]byte(`{"hotel_cap_eur": -1}`))
	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "hotel_cap_eur", merr.Field)

	_, err = Budget([]byte(""))
	assert.Error(t, err)
}
