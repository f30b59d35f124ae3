// Package planner is the host orchestration layer: it gathers the four
// collaborator responses, validates them, hands them to the composer, and
// answers booking calls against the ledger. All failures are recovered here
// into the status/message contract; nothing below this boundary reaches the
// presentation layer as a raw error.
package planner

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tripsmith/trip-cli/internal/agent"
	"github.com/tripsmith/trip-cli/internal/itinerary"
	"github.com/tripsmith/trip-cli/internal/ledger"
	"github.com/tripsmith/trip-cli/internal/model"
	"github.com/tripsmith/trip-cli/internal/validate"
)

// Planner wires a collaborator source, the composer, and the booking ledger
// into the downstream compose/book contract.
type Planner struct {
	source   agent.Source
	composer *itinerary.Composer
	ledger   ledger.Ledger
}

// New creates a Planner. The composer records into the same ledger booking
// reads from.
func New(source agent.Source, l ledger.Ledger) *Planner {
	return &Planner{
		source:   source,
		composer: itinerary.NewComposer(l),
		ledger:   l,
	}
}

// PlanTrip runs one full planning pass for a session: gather, validate,
// compose, record. A failed collaborator or malformed payload yields an
// "error" status; valid input with no feasible trips yields "ok" with zero
// candidates.
func (p *Planner) PlanTrip(ctx context.Context, sessionID string, req model.TripRequest) model.ComposeResult {
	log := zap.L().With(
		zap.String("session", sessionID),
		zap.String("origin", req.Origin),
		zap.String("dest", req.Dest),
	)
	log.Info("planner: gathering collaborator data")

	payloads, err := agent.Gather(ctx, p.source, req)
	if err != nil {
		log.Error("planner: gather failed", zap.Error(err))
		return model.ComposeResult{Status: model.StatusError, Message: err.Error()}
	}

	in, err := p.validatePayloads(payloads, req)
	if err != nil {
		log.Warn("planner: validation failed", zap.Error(err))
		return model.ComposeResult{Status: model.StatusError, Message: err.Error()}
	}

	return p.composer.Compose(ctx, sessionID, *in)
}

// Compose runs composition over already-validated candidate lists, for
// callers that obtained the data outside the gather path.
func (p *Planner) Compose(ctx context.Context, sessionID string, in itinerary.Input) model.ComposeResult {
	return p.composer.Compose(ctx, sessionID, in)
}

// Book confirms option optionIndex from the session's recorded list.
func (p *Planner) Book(ctx context.Context, sessionID string, optionIndex int) (*model.BookingConfirmation, error) {
	return ledger.Book(ctx, p.ledger, sessionID, optionIndex)
}

// Candidates returns the session's currently recorded ranked list.
func (p *Planner) Candidates(ctx context.Context, sessionID string) ([]model.CandidateItinerary, error) {
	return p.ledger.Get(ctx, sessionID)
}

func (p *Planner) validatePayloads(payloads *agent.Payloads, req model.TripRequest) (*itinerary.Input, error) {
	flights, err := validate.Flights(payloads.Flights)
	if err != nil {
		return nil, err
	}
	hotels, err := validate.Hotels(payloads.Hotels)
	if err != nil {
		return nil, err
	}
	activities, err := validate.Activities(payloads.Activities)
	if err != nil {
		return nil, err
	}
	budget, err := validate.Budget(payloads.Budget)
	if err != nil {
		return nil, err
	}

	return &itinerary.Input{
		Flights:    flights,
		Hotels:     hotels,
		Activities: activities,
		Budget:     budget,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Prefs:      req.Preferences(),
	}, nil
}

// IsUserError reports whether a booking error is a user-facing problem
// (booking before composing, or an out-of-range index) rather than a backend
// failure.
func IsUserError(err error) bool {
	var idxErr *ledger.IndexError
	return errors.Is(err, ledger.ErrNoCandidates) || errors.As(err, &idxErr)
}
