// Package itinerary implements the trip composition core: window alignment
// between flight legs and the hotel stay, per-day activity planning under a
// budget, heuristic scoring, and assembly of ranked candidate itineraries.
package itinerary

import (
	"time"

	"github.com/tripsmith/trip-cli/internal/model"
	"github.com/tripsmith/trip-cli/internal/validate"
)

// AlignWindows reports whether the outbound flight, inbound flight, and hotel
// stay form a temporally consistent trip: arrival on or before the check-in
// date, and departure on or after the check-out date. Only calendar dates are
// compared; check-in and check-out times are independent of flight times.
//
// When any of the four timestamps fails to parse, the triple is treated as
// feasible. Scraped data is imperfect and showing a candidate with a slightly
// broken timestamp beats hiding a bookable trip.
func AlignWindows(outbound, inbound model.FlightOption, hotel model.HotelOption) bool {
	arrive, ok := validate.ParseTimestamp(outbound.ArriveISO)
	if !ok {
		return true
	}
	depart, ok := validate.ParseTimestamp(inbound.DepartISO)
	if !ok {
		return true
	}
	checkin, ok := validate.ParseTimestamp(hotel.CheckinISO)
	if !ok {
		return true
	}
	checkout, ok := validate.ParseTimestamp(hotel.CheckoutISO)
	if !ok {
		return true
	}

	return !dateOf(arrive).After(dateOf(checkin)) && !dateOf(depart).Before(dateOf(checkout))
}

// dateOf strips the time-of-day component.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
