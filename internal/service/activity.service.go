// Package service is the activity facade the HTTP layer talks to. It owns
// one injected store handle, converts calendar-date bounds into timestamp
// ranges, and delegates all derived numbers to the stats engine so both
// storage backends produce identical results.
package service

import (
	"time"

	"moodlog/internal/models"
	"moodlog/internal/stats"
	"moodlog/internal/store"
	"moodlog/internal/utils"
)

// DefaultWindowDays is the trailing window served to the heatmap.
const DefaultWindowDays = 28

type ActivityService struct {
	store store.ActivityStore
	loc   *time.Location
}

// NewActivityService wraps the store chosen at startup. Calendar days are
// derived in the local timezone of this process.
func NewActivityService(st store.ActivityStore) *ActivityService {
	return &ActivityService{store: st, loc: time.Local}
}

// InitializeStore prepares durable storage; called once before first use.
func (s *ActivityService) InitializeStore() error {
	return s.store.Initialize()
}

// Close releases the underlying store.
func (s *ActivityService) Close() error {
	return s.store.Close()
}

// CreateActivity stores a new record with fresh bookkeeping times and
// returns it. Surfaces store.ErrDuplicateID when the id is taken.
func (s *ActivityService) CreateActivity(input models.CreateActivityInput) (*models.Activity, error) {
	activity := models.Activity{
		ID:        input.ID,
		Category:  input.Category,
		Name:      input.Name,
		Points:    input.Points,
		Timestamp: input.Timestamp,
	}
	if err := s.store.Create(&activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetActivity returns the record with the given id or store.ErrNotFound.
func (s *ActivityService) GetActivity(id string) (*models.Activity, error) {
	return s.store.FindByID(id)
}

// GetActivities returns records whose calendar date lies within the
// inclusive [startDate, endDate] range, newest first, truncated to limit if
// positive. A nil bound leaves that side open. The inclusive date bounds are
// turned into half-open timestamp bounds with the shared day helpers, so
// both backends filter identically.
func (s *ActivityService) GetActivities(startDate, endDate *time.Time, limit int) ([]models.Activity, error) {
	var start, end time.Time
	if startDate != nil {
		start = utils.CalendarDate(*startDate, s.loc)
	}
	if endDate != nil {
		end = utils.NextDay(utils.CalendarDate(*endDate, s.loc))
	}
	return s.store.FindInRange(start, end, limit)
}

// GetActivitiesForLastDays returns the trailing window of records from
// today-days through today inclusive.
func (s *ActivityService) GetActivitiesForLastDays(days int) ([]models.Activity, error) {
	start := utils.CalendarDate(time.Now(), s.loc).AddDate(0, 0, -days)
	return s.store.FindInRange(start, time.Time{}, 0)
}

// GetDailyMoodData aggregates the trailing window into one entry per
// calendar day with activity, newest first.
func (s *ActivityService) GetDailyMoodData(days int) ([]models.DailyMoodData, error) {
	records, err := s.GetActivitiesForLastDays(days)
	if err != nil {
		return nil, err
	}
	return stats.ComputeDailyMoodData(records, time.Now(), s.loc, days), nil
}

// GetActivityStats computes totals, level and streak over all records, not
// just the heatmap window.
func (s *ActivityService) GetActivityStats() (*models.ActivityStats, error) {
	records, err := s.store.FindInRange(time.Time{}, time.Time{}, 0)
	if err != nil {
		return nil, err
	}
	result := stats.ComputeStats(records, time.Now(), s.loc)
	return &result, nil
}

// GetAchievements resolves the achievement catalog against current stats.
func (s *ActivityService) GetAchievements() ([]models.Achievement, error) {
	current, err := s.GetActivityStats()
	if err != nil {
		return nil, err
	}
	return stats.EvaluateAchievements(*current), nil
}

// DeleteActivity removes a record. Deleting an id that does not exist is a
// successful no-op.
func (s *ActivityService) DeleteActivity(id string) error {
	return s.store.Delete(id)
}

// UpdateActivity applies a partial field replace and refreshes updated_at.
// Fails with store.ErrNotFound when the id is absent.
func (s *ActivityService) UpdateActivity(id string, update models.ActivityUpdate) (*models.Activity, error) {
	return s.store.Update(id, update)
}
