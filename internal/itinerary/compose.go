package itinerary

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tripsmith/trip-cli/internal/ledger"
	"github.com/tripsmith/trip-cli/internal/model"
)

// maxCandidates is the size of a ranked result set.
const maxCandidates = 3

// noBudgetLimit stands in for "no overall budget stated". A large sentinel
// rather than +Inf so serialized results stay plain JSON numbers.
const noBudgetLimit = 9e9

// Input carries the validated candidate lists and trip parameters for one
// compose call.
type Input struct {
	Flights    []model.FlightOption
	Hotels     []model.HotelOption
	Activities []model.ActivityOption
	Budget     model.BudgetPolicy
	StartDate  string
	EndDate    string
	Prefs      model.Preferences
}

// Composer enumerates (outbound, inbound, hotel) triples, filters them for
// feasibility and budget, ranks the survivors, and records the top candidates
// in the booking ledger under the session id.
type Composer struct {
	ledger ledger.Ledger
}

// NewComposer creates a Composer backed by the given ledger.
func NewComposer(l ledger.Ledger) *Composer {
	return &Composer{ledger: l}
}

// Compose builds the ranked result set for a session. Empty candidate lists
// produce an "ok" result with zero candidates; only malformed input or a
// ledger failure produce an "error" status.
func (c *Composer) Compose(ctx context.Context, sessionID string, in Input) model.ComposeResult {
	log := zap.L().With(zap.String("session", sessionID))

	if _, _, err := TripDates(in.StartDate, in.EndDate); err != nil {
		return model.ComposeResult{Status: model.StatusError, Message: err.Error()}
	}

	outbound, inbound := partitionFlights(in.Flights, in.Prefs.Origin)

	// Coarse heuristic spreading the activities cap across an estimated
	// number of activity-worthy days (one per three scraped activities,
	// never fewer than one).
	estDays := len(in.Activities) / 3
	if estDays < 1 {
		estDays = 1
	}
	perDayBudget := in.Budget.ActivitiesCapEUR / float64(estDays)

	days, err := PlanDays(in.Activities, in.StartDate, in.EndDate, perDayBudget)
	if err != nil {
		return model.ComposeResult{Status: model.StatusError, Message: err.Error()}
	}

	activitiesTotal := 0.0
	var booked []model.ActivityOption
	for _, d := range days {
		for _, a := range d.BookedActivities {
			activitiesTotal += a.PriceEUR
			booked = append(booked, a)
		}
	}

	budgetLimit := in.Prefs.BudgetEUR
	if budgetLimit <= 0 {
		budgetLimit = noBudgetLimit
	}

	var candidates []model.CandidateItinerary
	for _, out := range outbound {
		for _, inn := range inbound {
			for _, hotel := range in.Hotels {
				if !AlignWindows(out, inn, hotel) {
					continue
				}

				total := out.PriceEUR + inn.PriceEUR + hotel.PriceTotalEUR + activitiesTotal
				if total > budgetLimit {
					continue
				}

				candidates = append(candidates, model.CandidateItinerary{
					Summary:  summary(in.Prefs, in.StartDate, in.EndDate, hotel),
					Outbound: out,
					Inbound:  inn,
					Hotel:    hotel,
					Days:     days,
					PriceBreakdownEUR: map[string]float64{
						model.BreakdownOutbound:   out.PriceEUR,
						model.BreakdownInbound:    inn.PriceEUR,
						model.BreakdownHotel:      hotel.PriceTotalEUR,
						model.BreakdownActivities: activitiesTotal,
					},
					TotalEUR:  total,
					Score:     Score(total, in.Prefs, hotel, booked),
					HoldLinks: map[string]string{"flights": out.Link, "hotel": hotel.Link},
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].TotalEUR < candidates[j].TotalEUR
	})
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	if err := c.ledger.Record(ctx, sessionID, candidates); err != nil {
		log.Error("compose: record candidates failed", zap.Error(err))
		return model.ComposeResult{Status: model.StatusError, Message: "failed to store candidates"}
	}

	log.Info("compose: ranked candidates",
		zap.Int("outbound", len(outbound)),
		zap.Int("inbound", len(inbound)),
		zap.Int("hotels", len(in.Hotels)),
		zap.Int("kept", len(candidates)),
	)

	result := model.ComposeResult{Status: model.StatusOK, Candidates: candidates}
	if len(candidates) == 0 {
		result.Message = "no viable options for the given constraints"
	}
	return result
}

// partitionFlights splits flights into outbound (leaving the origin) and
// inbound (returning to the origin), matching city names case-insensitively.
func partitionFlights(flights []model.FlightOption, origin string) (outbound, inbound []model.FlightOption) {
	for _, f := range flights {
		if strings.EqualFold(f.Source, origin) {
			outbound = append(outbound, f)
		}
		if strings.EqualFold(f.Dest, origin) {
			inbound = append(inbound, f)
		}
	}
	return outbound, inbound
}

func summary(prefs model.Preferences, startDate, endDate string, hotel model.HotelOption) string {
	origin := prefs.Origin
	if origin == "" {
		origin = "?"
	}
	dest := prefs.Dest
	if dest == "" {
		dest = "?"
	}
	return fmt.Sprintf("%s → %s %s–%s, %s", origin, dest, startDate, endDate, hotel.Name)
}
