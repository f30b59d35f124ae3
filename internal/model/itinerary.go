package model

// Time-of-day slots for day planning. An activity's slot is derived from its
// local start hour: morning before 12:00, afternoon before 18:00, evening after.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// ItineraryDay is one calendar day of a trip with at most one activity per
// time-of-day slot. Slot fields hold the assigned activity title; empty means
// the slot is free.
type ItineraryDay struct {
	DateISO          string           `json:"date_iso"`
	Morning          string           `json:"morning,omitempty"`
	Afternoon        string           `json:"afternoon,omitempty"`
	Evening          string           `json:"evening,omitempty"`
	BookedActivities []ActivityOption `json:"booked_activities"`
}

// Fixed keys of the CandidateItinerary price breakdown.
const (
	BreakdownOutbound   = "outbound"
	BreakdownInbound    = "inbound"
	BreakdownHotel      = "hotel"
	BreakdownActivities = "activities"
)

// CandidateItinerary is one fully-priced, feasible trip option. It is built
// during composition and immutable afterwards.
type CandidateItinerary struct {
	Summary           string             `json:"summary"`
	Outbound          FlightOption       `json:"outbound"`
	Inbound           FlightOption       `json:"inbound"`
	Hotel             HotelOption        `json:"hotel"`
	Days              []ItineraryDay     `json:"days"`
	PriceBreakdownEUR map[string]float64 `json:"price_breakdown_eur"`
	TotalEUR          float64            `json:"total_eur"`
	Score             float64            `json:"score"`
	HoldLinks         map[string]string  `json:"hold_links"`
}

// ActivityCount returns the number of booked activities across all days.
func (c CandidateItinerary) ActivityCount() int {
	n := 0
	for _, d := range c.Days {
		n += len(d.BookedActivities)
	}
	return n
}

// Compose result statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ComposeResult is the downstream contract of a compose call. An "ok" status
// with zero candidates means no viable options, which is distinct from an
// "error" status (malformed input or a failed collaborator).
type ComposeResult struct {
	Status     string               `json:"status"`
	Candidates []CandidateItinerary `json:"candidates"`
	Message    string               `json:"message,omitempty"`
}

// BookingConfirmation is returned by the book operation. Confirmation codes
// are synthetic and freshly generated on every call.
type BookingConfirmation struct {
	Status              string             `json:"status"`
	FlightsConfirmation string             `json:"flights_confirmation"`
	HotelConfirmation   string             `json:"hotel_confirmation"`
	ActivitiesCount     int                `json:"activities_count"`
	Itinerary           CandidateItinerary `json:"itinerary"`
}
