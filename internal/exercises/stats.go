package exercises

import (
	"math"
	"slices"
	"time"
)

type MostFrequent struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats holds the aggregates derived from the exercise log. They are
// recomputed from the current collection on every read and never
// persisted on their own.
type Stats struct {
	TotalExercises int           `json:"totalExercises"`
	TotalCount     int           `json:"totalCount"`
	AveragePerDay  float64       `json:"averagePerDay"`
	MostFrequent   *MostFrequent `json:"mostFrequent"`
}

type LeaderboardEntry struct {
	Name           string `json:"name"`
	TotalCount     int    `json:"totalCount"`
	TotalExercises int    `json:"totalExercises"`
}

type ActivityPoint struct {
	Date           string `json:"date"`
	TotalCount     int    `json:"totalCount"`
	TotalExercises int    `json:"totalExercises"`
}

const dateLayout = "2006-01-02"

// CalculateStats derives the aggregates from the given collection.
// MostFrequent counts entries per name, not summed reps, and on a
// frequency tie the name logged first wins.
func CalculateStats(exercises []Exercise) Stats {
	stats := Stats{
		TotalExercises: len(exercises),
	}
	if len(exercises) == 0 {
		return stats
	}

	days := make(map[string]struct{})
	nameFrequency := make(map[string]int)
	for _, e := range exercises {
		stats.TotalCount += e.Count
		days[e.Timestamp.Format(dateLayout)] = struct{}{}
		nameFrequency[e.Name]++
	}

	average := float64(stats.TotalExercises) / float64(len(days))
	stats.AveragePerDay = math.Round(average*10) / 10

	seen := make(map[string]struct{})
	for _, e := range exercises {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		if stats.MostFrequent == nil || nameFrequency[e.Name] > stats.MostFrequent.Count {
			stats.MostFrequent = &MostFrequent{
				Name:  e.Name,
				Count: nameFrequency[e.Name],
			}
		}
	}

	return stats
}

// CalculateLeaderboard sums logged counts per exercise name, highest
// total first. Every entry counts towards its exercise, attributed to
// a person or not; on a total tie the name logged first ranks higher.
func CalculateLeaderboard(exercises []Exercise) []LeaderboardEntry {
	totals := make(map[string]*LeaderboardEntry)
	var order []string
	for _, e := range exercises {
		entry, ok := totals[e.Name]
		if !ok {
			entry = &LeaderboardEntry{Name: e.Name}
			totals[e.Name] = entry
			order = append(order, e.Name)
		}
		entry.TotalCount += e.Count
		entry.TotalExercises++
	}

	leaderboard := make([]LeaderboardEntry, 0, len(order))
	for _, name := range order {
		leaderboard = append(leaderboard, *totals[name])
	}
	slices.SortStableFunc(leaderboard, func(a, b LeaderboardEntry) int {
		return b.TotalCount - a.TotalCount
	})
	return leaderboard
}

// CalculateActivity buckets the log into the trailing `days` calendar
// days ending at `now`, oldest day first. Days without entries get a
// zero point so charts render a continuous series.
func CalculateActivity(exercises []Exercise, now time.Time, days int) []ActivityPoint {
	byDay := make(map[string]*ActivityPoint)
	points := make([]ActivityPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		points = append(points, ActivityPoint{Date: date})
		byDay[date] = &points[len(points)-1]
	}

	for _, e := range exercises {
		point, ok := byDay[e.Timestamp.Format(dateLayout)]
		if !ok {
			continue
		}
		point.TotalCount += e.Count
		point.TotalExercises++
	}

	return points
}
