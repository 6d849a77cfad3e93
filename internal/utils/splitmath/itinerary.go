package splitmath

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripmates/trip_planner_app/internal/core/domain"
)

// GroupIntoItinerary buckets a trip's activities by calendar day and orders
// each day's activities by start time. Activities without a start time sort
// after scheduled ones, keeping their relative input order. Day cost is the
// sum of costPerPerson multiplied by the activity's participant count.
func GroupIntoItinerary(activities []domain.Activity) []domain.ItineraryDay {
	byDay := make(map[time.Time][]domain.Activity)
	for _, act := range activities {
		day := truncateToDay(act.StartDate)
		byDay[day] = append(byDay[day], act)
	}

	days := make([]domain.ItineraryDay, 0, len(byDay))
	for date, dayActivities := range byDay {
		// "HH:MM" compares correctly as a string; empty times go last.
		sort.SliceStable(dayActivities, func(i, j int) bool {
			ti, tj := dayActivities[i].StartTime, dayActivities[j].StartTime
			if ti == "" || tj == "" {
				return ti != "" && tj == ""
			}
			return ti < tj
		})

		total := decimal.Zero
		for _, act := range dayActivities {
			total = total.Add(act.CostPerPerson.Mul(decimal.NewFromInt(int64(act.ParticipantCount))))
		}

		days = append(days, domain.ItineraryDay{
			Date:       date,
			Activities: dayActivities,
			TotalCost:  total,
		})
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
