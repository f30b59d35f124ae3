package itinerary

import "github.com/tripsmith/trip-cli/internal/model"

// Scoring weights. These are a behavioral contract: relative ranking of
// candidates depends on the exact constants, so changing any of them changes
// user-visible output order.
const (
	costWeight         = 10000.0
	hotelRatingWeight  = 50.0
	activityMeanWeight = 25.0
	walkableBonus      = 100.0
	boutiqueBonus      = 50.0
	boutiqueMinRating  = 4.0
)

// Score computes the comparable rank score for one candidate. Higher is
// better. The inverse-cost term dominates at low budgets; rating and
// preference bonuses separate candidates at comparable cost tiers.
func Score(totalEUR float64, prefs model.Preferences, hotel model.HotelOption, booked []model.ActivityOption) float64 {
	score := costWeight / (totalEUR + 1)
	score += hotel.Rating * hotelRatingWeight

	if len(booked) > 0 {
		sum := 0.0
		for _, a := range booked {
			sum += a.Rating
		}
		score += sum / float64(len(booked)) * activityMeanWeight
	}

	if prefs.Walkable {
		score += walkableBonus
	}
	if prefs.Boutique && hotel.Rating >= boutiqueMinRating {
		score += boutiqueBonus
	}
	return score
}
