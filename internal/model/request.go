package model

// Preferences holds the user's stated trip preferences. Origin and Dest are
// city names matched case-insensitively against flight endpoints.
type Preferences struct {
	Origin      string  `json:"origin"`
	Dest        string  `json:"dest"`
	BudgetEUR   float64 `json:"budget_eur"`
	Walkable    bool    `json:"walkable"`
	Boutique    bool    `json:"boutique"`
	NoRedeye    bool    `json:"no_redeye"`
	DepartAfter string  `json:"depart_after,omitempty"`
	ReturnAfter string  `json:"return_after,omitempty"`
}

// TripRequest is the structured trip request the planner consumes. Producing
// it from free text is the job of an external parsing collaborator.
type TripRequest struct {
	Origin     string      `json:"origin"`
	Dest       string      `json:"dest"`
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	Passengers int         `json:"passengers"`
	BudgetEUR  float64     `json:"budget_eur"`
	Prefs      Preferences `json:"prefs"`
}

// Preferences returns the request's preference set with origin, destination
// and overall budget filled in from the top-level fields.
func (r TripRequest) Preferences() Preferences {
	p := r.Prefs
	p.Origin = r.Origin
	p.Dest = r.Dest
	p.BudgetEUR = r.BudgetEUR
	return p
}
