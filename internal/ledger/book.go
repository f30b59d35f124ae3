package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripsmith/trip-cli/internal/model"
)

// Book confirms option optionIndex (1-based) from the session's recorded
// list. The stored list is neither removed nor mutated, so re-booking the
// same index reads the same itinerary; confirmation codes are freshly
// generated on every call, so booking itself is not idempotent.
func Book(ctx context.Context, l Ledger, sessionID string, optionIndex int) (*model.BookingConfirmation, error) {
	candidates, err := l.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if optionIndex < 1 || optionIndex > len(candidates) {
		return nil, &IndexError{Index: optionIndex, Len: len(candidates)}
	}

	chosen := candidates[optionIndex-1]
	return &model.BookingConfirmation{
		Status:              "success",
		FlightsConfirmation: confirmationCode("FL"),
		HotelConfirmation:   confirmationCode("HT"),
		ActivitiesCount:     chosen.ActivityCount(),
		Itinerary:           chosen,
	}, nil
}

// confirmationCode builds a short prefixed random hex reference. Uniqueness
// is not guaranteed across processes; collision probability is negligible for
// synthetic confirmations.
func confirmationCode(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s", prefix, hex[:8])
}
