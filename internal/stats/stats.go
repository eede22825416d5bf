// Package stats is the aggregation engine: pure functions that fold a
// snapshot of activity records into derived gamification values. It never
// touches storage, so both backends share one set of semantics.
package stats

import (
	"sort"
	"time"

	"moodlog/internal/models"
	"moodlog/internal/utils"
)

const pointsPerLevel = 10

// Level derives the progress tier from total points: one level per 10
// points, never below level 1, negative totals clamp to level 1.
func Level(totalPoints int) int {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return totalPoints/pointsPerLevel + 1
}

// ComputeStats aggregates all records into totals, level and streak.
// The streak counts consecutive calendar days (in loc) with at least one
// record, walking backward from the day of now; the first day without a
// record stops the walk, so a missed day resets the streak and a day gap is
// never skipped. No record today means streak 0.
func ComputeStats(records []models.Activity, now time.Time, loc *time.Location) models.ActivityStats {
	totalPoints := 0
	days := make(map[string]struct{}, len(records))
	for _, record := range records {
		totalPoints += record.Points
		days[utils.DateKey(record.Timestamp, loc)] = struct{}{}
	}

	streak := 0
	for day := utils.CalendarDate(now, loc); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[day.Format(utils.DateLayout)]; !ok {
			break
		}
		streak++
	}

	return models.ActivityStats{
		TotalPoints:     totalPoints,
		StreakCount:     streak,
		Level:           Level(totalPoints),
		ActivitiesCount: len(records),
	}
}

// ComputeDailyMoodData groups records by calendar day over a trailing window
// of windowDays days ending at the day of now, summing points and counting
// records per day. Days without records yield no entry; the result is
// ordered by date descending (newest first).
func ComputeDailyMoodData(records []models.Activity, now time.Time, loc *time.Location, windowDays int) []models.DailyMoodData {
	windowStart := utils.CalendarDate(now, loc).AddDate(0, 0, -windowDays)

	byDay := make(map[string]*models.DailyMoodData)
	for _, record := range records {
		if utils.CalendarDate(record.Timestamp, loc).Before(windowStart) {
			continue
		}
		key := utils.DateKey(record.Timestamp, loc)
		entry, ok := byDay[key]
		if !ok {
			entry = &models.DailyMoodData{Date: key}
			byDay[key] = entry
		}
		entry.TotalPoints += record.Points
		entry.ActivitiesCount++
	}

	data := make([]models.DailyMoodData, 0, len(byDay))
	for _, entry := range byDay {
		data = append(data, *entry)
	}
	sort.Slice(data, func(i, j int) bool {
		return data[i].Date > data[j].Date
	})
	return data
}

// EvaluateAchievements resolves the achievement catalog against the current
// stats.
func EvaluateAchievements(s models.ActivityStats) []models.Achievement {
	return []models.Achievement{
		{
			ID:          "streak3",
			Name:        "Consistent",
			Description: "Log activities 3 days in a row",
			Unlocked:    s.StreakCount >= 3,
		},
		{
			ID:          "points10",
			Name:        "Starter",
			Description: "Earn 10 positive points",
			Unlocked:    s.TotalPoints >= 10,
		},
		{
			ID:          "level3",
			Name:        "Dedicated",
			Description: "Reach level 3",
			Unlocked:    s.Level >= 3,
		},
	}
}
