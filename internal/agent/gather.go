package agent

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/tripsmith/trip-cli/internal/model"
)

// Payloads holds the raw responses of the four collaborator exchanges.
type Payloads struct {
	Budget     json.RawMessage
	Flights    json.RawMessage
	Hotels     json.RawMessage
	Activities json.RawMessage
}

// Gather issues the four collaborator calls concurrently and waits for all of
// them. The calls have no ordering dependency on each other; a single failure
// cancels the remaining calls and fails the gather, so the planner never
// composes against silently-missing data.
func Gather(ctx context.Context, src Source, req model.TripRequest) (*Payloads, error) {
	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}

	style := ""
	if req.Prefs.Boutique {
		style = "boutique"
	}

	var payloads Payloads
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := src.Budget(gctx, BudgetRequest{
			TotalBudget:    req.BudgetEUR,
			PassengerCount: passengers,
		})
		if err != nil {
			return err
		}
		payloads.Budget = raw
		return nil
	})

	g.Go(func() error {
		raw, err := src.Flights(gctx, FlightsRequest{
			Origin:         req.Origin,
			Destination:    req.Dest,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			PassengerCount: passengers,
			NoRedeye:       req.Prefs.NoRedeye,
			DepartAfter:    req.Prefs.DepartAfter,
			ReturnAfter:    req.Prefs.ReturnAfter,
		})
		if err != nil {
			return err
		}
		payloads.Flights = raw
		return nil
	})

	g.Go(func() error {
		raw, err := src.Hotels(gctx, HotelsRequest{
			City:           req.Dest,
			CheckinDate:    req.StartDate,
			CheckoutDate:   req.EndDate,
			Walkable:       req.Prefs.Walkable,
			Style:          style,
			MaxTotalBudget: req.BudgetEUR,
		})
		if err != nil {
			return err
		}
		payloads.Hotels = raw
		return nil
	})

	g.Go(func() error {
		raw, err := src.Activities(gctx, ActivitiesRequest{
			City:     req.Dest,
			DateFrom: req.StartDate,
			DateTo:   req.EndDate,
		})
		if err != nil {
			return err
		}
		payloads.Activities = raw
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &payloads, nil
}
