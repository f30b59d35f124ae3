// Package validate normalizes raw collaborator payloads into typed candidate
// lists. It is the single point that tolerates the collaborators' loose JSON:
// each payload may be a bare array or a wrapper object holding the array under
// a well-known key. Anything else fails with a MalformedError rather than
// being partially decoded.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tripsmith/trip-cli/internal/model"
)

// Wrapper keys the collaborators use when they wrap their lists.
const (
	KeyFlights    = "flights"
	KeyHotels     = "hotels"
	KeyActivities = "items"
)

// MalformedError reports the first invalid record in a payload. Index is -1
// when the payload as a whole could not be decoded.
type MalformedError struct {
	List   string
	Index  int
	Field  string
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed %s payload: %s", e.List, e.Reason)
	}
	return fmt.Sprintf("malformed %s record %d: field %q %s", e.List, e.Index, e.Field, e.Reason)
}

// unwrap accepts either a bare JSON array or an object wrapping an array under
// key. A wrapper object without the key yields an empty list, matching the
// tolerant behavior the collaborators were scraped against.
func unwrap(list string, raw []byte, key string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, &MalformedError{List: list, Index: -1, Reason: "empty payload"}
	}

	if trimmed[0] == '{' {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, &MalformedError{List: list, Index: -1, Reason: err.Error()}
		}
		inner, ok := wrapper[key]
		if !ok {
			return nil, nil
		}
		trimmed = bytes.TrimSpace(inner)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, &MalformedError{List: list, Index: -1, Reason: err.Error()}
	}
	return records, nil
}

// Flights decodes and validates a flights payload.
func Flights(raw []byte) ([]model.FlightOption, error) {
	records, err := unwrap("flights", raw, KeyFlights)
	if err != nil {
		return nil, err
	}

	flights := make([]model.FlightOption, 0, len(records))
	for i, rec := range records {
		var f model.FlightOption
		if err := json.Unmarshal(rec, &f); err != nil {
			return nil, &MalformedError{List: "flights", Index: i, Field: "-", Reason: err.Error()}
		}
		if field, reason := checkFlight(f); reason != "" {
			return nil, &MalformedError{List: "flights", Index: i, Field: field, Reason: reason}
		}
		if f.Cabin == "" {
			f.Cabin = "Economy"
		}
		flights = append(flights, f)
	}
	return flights, nil
}

// Hotels decodes and validates a hotels payload.
func Hotels(raw []byte) ([]model.HotelOption, error) {
	records, err := unwrap("hotels", raw, KeyHotels)
	if err != nil {
		return nil, err
	}

	hotels := make([]model.HotelOption, 0, len(records))
	for i, rec := range records {
		var h model.HotelOption
		if err := json.Unmarshal(rec, &h); err != nil {
			return nil, &MalformedError{List: "hotels", Index: i, Field: "-", Reason: err.Error()}
		}
		if field, reason := checkHotel(h); reason != "" {
			return nil, &MalformedError{List: "hotels", Index: i, Field: field, Reason: reason}
		}
		hotels = append(hotels, h)
	}
	return hotels, nil
}

// Activities decodes and validates an activities payload.
func Activities(raw []byte) ([]model.ActivityOption, error) {
	records, err := unwrap("activities", raw, KeyActivities)
	if err != nil {
		return nil, err
	}

	activities := make([]model.ActivityOption, 0, len(records))
	for i, rec := range records {
		var a model.ActivityOption
		if err := json.Unmarshal(rec, &a); err != nil {
			return nil, &MalformedError{List: "activities", Index: i, Field: "-", Reason: err.Error()}
		}
		if field, reason := checkActivity(a); reason != "" {
			return nil, &MalformedError{List: "activities", Index: i, Field: field, Reason: reason}
		}
		activities = append(activities, a)
	}
	return activities, nil
}

// Budget decodes and validates a budget policy payload.
func Budget(raw []byte) (model.BudgetPolicy, error) {
	var p model.BudgetPolicy
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return p, &MalformedError{List: "budget", Index: -1, Reason: "empty payload"}
	}
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return p, &MalformedError{List: "budget", Index: -1, Reason: err.Error()}
	}
	switch {
	case p.FlightCapEUR < 0:
		return p, &MalformedError{List: "budget", Index: 0, Field: "flight_cap_eur", Reason: "must be non-negative"}
	case p.HotelCapEUR < 0:
		return p, &MalformedError{List: "budget", Index: 0, Field: "hotel_cap_eur", Reason: "must be non-negative"}
	case p.ActivitiesCapEUR < 0:
		return p, &MalformedError{List: "budget", Index: 0, Field: "activities_cap_eur", Reason: "must be non-negative"}
	}
	return p, nil
}

func checkFlight(f model.FlightOption) (field, reason string) {
	switch {
	case f.Source == "":
		return "source", "is required"
	case f.Dest == "":
		return "dest", "is required"
	case f.DepartISO == "":
		return "depart_iso", "is required"
	case f.ArriveISO == "":
		return "arrive_iso", "is required"
	case f.Airline == "":
		return "airline", "is required"
	case f.PriceEUR < 0:
		return "price_eur", "must be non-negative"
	}
	// Ordering is only enforceable when both timestamps parse; the window
	// aligner stays lenient about unparseable ones.
	if dep, ok := ParseTimestamp(f.DepartISO); ok {
		if arr, ok := ParseTimestamp(f.ArriveISO); ok && !dep.Before(arr) {
			return "depart_iso", "must be before arrive_iso"
		}
	}
	return "", ""
}

func checkHotel(h model.HotelOption) (field, reason string) {
	switch {
	case h.Name == "":
		return "name", "is required"
	case h.Address == "":
		return "address", "is required"
	case h.CheckinISO == "":
		return "checkin_iso", "is required"
	case h.CheckoutISO == "":
		return "checkout_iso", "is required"
	case h.Rating < 0 || h.Rating > 5:
		return "rating", "must be between 0 and 5"
	case h.PriceTotalEUR < 0:
		return "price_total_eur", "must be non-negative"
	}
	if in, ok := ParseTimestamp(h.CheckinISO); ok {
		if out, ok := ParseTimestamp(h.CheckoutISO); ok && !in.Before(out) {
			return "checkin_iso", "must be before checkout_iso"
		}
	}
	return "", ""
}

func checkActivity(a model.ActivityOption) (field, reason string) {
	switch {
	case a.Title == "":
		return "title", "is required"
	case a.DateISO == "":
		return "date_iso", "is required"
	case a.StartLocal == "":
		return "start_local", "is required"
	case a.EndLocal == "":
		return "end_local", "is required"
	case a.Category == "":
		return "category", "is required"
	case a.PriceEUR < 0:
		return "price_eur", "must be non-negative"
	case a.Rating < 0 || a.Rating > 5:
		return "rating", "must be between 0 and 5"
	}
	if _, ok := ParseLocalHour(a.StartLocal); !ok {
		return "start_local", "must be HH:MM"
	}
	return "", ""
}
