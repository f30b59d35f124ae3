package model

// FlightOption is one flight candidate returned by the flights collaborator.
// Prices are single-currency (EUR) totals for the whole party.
type FlightOption struct {
	Source      string  `json:"source"`
	Dest        string  `json:"dest"`
	DepartISO   string  `json:"depart_iso"`
	ArriveISO   string  `json:"arrive_iso"`
	Airline     string  `json:"airline"`
	FlightNo    string  `json:"flight_no,omitempty"`
	DurationMin int     `json:"duration_min"`
	PriceEUR    float64 `json:"price_eur"`
	Cabin       string  `json:"cabin,omitempty"`
	Link        string  `json:"link,omitempty"`
	SourceSite  string  `json:"source_site,omitempty"`
}

// HotelOption is one hotel candidate covering the full stay.
type HotelOption struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	CheckinISO    string  `json:"checkin_iso"`
	CheckoutISO   string  `json:"checkout_iso"`
	Rating        float64 `json:"rating"`
	PriceTotalEUR float64 `json:"price_total_eur"`
	District      string  `json:"district,omitempty"`
	Link          string  `json:"link,omitempty"`
	SourceSite    string  `json:"source_site,omitempty"`
}

// ActivityOption is one bookable activity on a specific date.
type ActivityOption struct {
	Title        string  `json:"title"`
	DateISO      string  `json:"date_iso"`
	StartLocal   string  `json:"start_local"`
	EndLocal     string  `json:"end_local"`
	PriceEUR     float64 `json:"price_eur"`
	Category     string  `json:"category"`
	Rating       float64 `json:"rating"`
	Link         string  `json:"link,omitempty"`
	SourceSite   string  `json:"source_site,omitempty"`
	LocationHint string  `json:"location_hint,omitempty"`
}

// BudgetPolicy holds the per-category spending caps decided by the budget
// collaborator. It is produced once per session and read-only afterwards.
type BudgetPolicy struct {
	FlightCapEUR     float64 `json:"flight_cap_eur"`
	HotelCapEUR      float64 `json:"hotel_cap_eur"`
	ActivitiesCapEUR float64 `json:"activities_cap_eur"`
	Notes            string  `json:"notes,omitempty"`
}
