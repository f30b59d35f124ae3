package itinerary

import (
	"sort"
	"time"

	"github.com/rotisserie/eris"

	"github.com/tripsmith/trip-cli/internal/model"
	"github.com/tripsmith/trip-cli/internal/validate"
)

// maxActivitiesPerDay caps how many activities the planner books on one day,
// independent of how many slots remain free.
const maxActivitiesPerDay = 2

// PlanDays selects activities for every calendar day in [startDate, endDate],
// one ItineraryDay per day in chronological order. Days without eligible
// activities are included with empty slots.
//
// Within a day, candidates are scanned in (rating desc, price asc) order and
// picked greedily: an activity is skipped when it would push the day's spend
// over perDayBudget or when its time-of-day slot is already filled, and the
// day stops after maxActivitiesPerDay picks. This greedy policy is the ranking
// contract, not an approximation of a knapsack solve.
func PlanDays(activities []model.ActivityOption, startDate, endDate string, perDayBudget float64) ([]model.ItineraryDay, error) {
	start, ok := validate.ParseDate(startDate)
	if !ok {
		return nil, eris.Errorf("itinerary: invalid start date %q", startDate)
	}
	end, ok := validate.ParseDate(endDate)
	if !ok {
		return nil, eris.Errorf("itinerary: invalid end date %q", endDate)
	}

	byDate := make(map[string][]model.ActivityOption)
	for _, a := range activities {
		key := a.DateISO
		if len(key) > 10 {
			key = key[:10]
		}
		byDate[key] = append(byDate[key], a)
	}

	var days []model.ItineraryDay
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		key := cur.Format("2006-01-02")
		days = append(days, planDay(key, byDate[key], perDayBudget))
	}
	return days, nil
}

func planDay(dateISO string, candidates []model.ActivityOption, perDayBudget float64) model.ItineraryDay {
	sorted := make([]model.ActivityOption, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].PriceEUR < sorted[j].PriceEUR
	})

	day := model.ItineraryDay{DateISO: dateISO, BookedActivities: []model.ActivityOption{}}
	slots := map[string]bool{}
	spent := 0.0

	for _, act := range sorted {
		if spent+act.PriceEUR > perDayBudget {
			continue
		}
		slot := slotFor(act)
		if slots[slot] {
			continue
		}
		slots[slot] = true
		switch slot {
		case model.SlotMorning:
			day.Morning = act.Title
		case model.SlotAfternoon:
			day.Afternoon = act.Title
		case model.SlotEvening:
			day.Evening = act.Title
		}
		day.BookedActivities = append(day.BookedActivities, act)
		spent += act.PriceEUR

		if len(day.BookedActivities) >= maxActivitiesPerDay {
			break
		}
	}
	return day
}

// slotFor derives the time-of-day slot from the activity's local start hour.
// The validator guarantees start_local parses; an unparseable stray defaults
// to evening rather than crashing the plan.
func slotFor(a model.ActivityOption) string {
	h, ok := validate.ParseLocalHour(a.StartLocal)
	if !ok {
		return model.SlotEvening
	}
	switch {
	case h < 12:
		return model.SlotMorning
	case h < 18:
		return model.SlotAfternoon
	default:
		return model.SlotEvening
	}
}

// TripDates returns the parsed inclusive date range, for callers that need to
// sanity-check a request before composing.
func TripDates(startDate, endDate string) (time.Time, time.Time, error) {
	start, ok := validate.ParseDate(startDate)
	if !ok {
		return time.Time{}, time.Time{}, eris.Errorf("itinerary: invalid start date %q", startDate)
	}
	end, ok := validate.ParseDate(endDate)
	if !ok {
		return time.Time{}, time.Time{}, eris.Errorf("itinerary: invalid end date %q", endDate)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, eris.Errorf("itinerary: end date %s before start date %s", endDate, startDate)
	}
	return start, end, nil
}
