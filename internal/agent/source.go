// Package agent talks to the upstream collaborator services (budget, flights,
// hotels, activities). Each exchange is request/response; the payloads come
// back as raw JSON for the validator to normalize. A Source abstracts the
// transport so the planner works identically against live HTTP agents and
// offline scenario fixtures.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collaborator names, used in errors and logs.
const (
	AgentBudget     = "budget"
	AgentFlights    = "flights"
	AgentHotels     = "hotels"
	AgentActivities = "activities"
)

// BudgetRequest asks the budget collaborator for a spending policy.
type BudgetRequest struct {
	TotalBudget    float64 `json:"total_budget"`
	PassengerCount int     `json:"passenger_count"`
}

// FlightsRequest asks the flights collaborator for candidate flights in both
// directions.
type FlightsRequest struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	PassengerCount int    `json:"passenger_count"`
	NoRedeye       bool   `json:"no_redeye"`
	DepartAfter    string `json:"depart_after,omitempty"`
	ReturnAfter    string `json:"return_after,omitempty"`
}

// HotelsRequest asks the hotels collaborator for candidate stays.
type HotelsRequest struct {
	City           string  `json:"city"`
	CheckinDate    string  `json:"checkin_date"`
	CheckoutDate   string  `json:"checkout_date"`
	MinRating      float64 `json:"min_rating"`
	Style          string  `json:"style,omitempty"`
	Walkable       bool    `json:"walkable"`
	MaxTotalBudget float64 `json:"max_total_budget"`
}

// ActivitiesRequest asks the activities collaborator for candidate activities
// across the trip dates.
type ActivitiesRequest struct {
	City       string   `json:"city"`
	DateFrom   string   `json:"date_from"`
	DateTo     string   `json:"date_to"`
	Categories []string `json:"categories,omitempty"`
	MinRating  float64  `json:"min_rating"`
	MaxPrice   float64  `json:"max_price"`
}

// Source is one side of the four collaborator exchanges. Implementations must
// return the collaborator's payload verbatim; interpreting it is the
// validator's job.
type Source interface {
	Budget(ctx context.Context, req BudgetRequest) (json.RawMessage, error)
	Flights(ctx context.Context, req FlightsRequest) (json.RawMessage, error)
	Hotels(ctx context.Context, req HotelsRequest) (json.RawMessage, error)
	Activities(ctx context.Context, req ActivitiesRequest) (json.RawMessage, error)
}

// UpstreamError marks a failed collaborator exchange. The planner surfaces it
// as an error status instead of planning around missing data.
type UpstreamError struct {
	Agent string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s agent unavailable: %v", e.Agent, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
