package utils

import (
	"fmt"
	"log"
	mathrand "math/rand"
	"time"

	"github.com/google/uuid"

	"moodlog/internal/catalog"
	"moodlog/internal/models"
	"moodlog/internal/store"
)

const (
	DefaultSeedDays      = 28
	DefaultSeedPerDayMax = 4

	// Roughly one day in five stays empty so streaks and heatmap gaps look
	// plausible.
	seedSkipChance = 0.2
)

// SeedActivities backfills the store with random catalog activities spread
// over the trailing days window.
func SeedActivities(st store.ActivityStore, days, perDayMax int) error {
	if perDayMax < 1 {
		perDayMax = 1
	}

	created := 0
	now := time.Now()

	for offset := 0; offset < days; offset++ {
		if offset > 0 && mathrand.Float64() < seedSkipChance {
			continue
		}

		count := 1 + mathrand.Intn(perDayMax)
		for i := 0; i < count; i++ {
			category := catalog.Categories[mathrand.Intn(len(catalog.Categories))]
			entry := category.Activities[mathrand.Intn(len(category.Activities))]

			// Backdate the calendar day but keep a daytime hour, the same
			// way the client backdates from the day view.
			day := now.AddDate(0, 0, -offset)
			timestamp := time.Date(day.Year(), day.Month(), day.Day(),
				8+mathrand.Intn(12), mathrand.Intn(60), mathrand.Intn(60), 0, time.Local)

			activity := models.Activity{
				ID:        uuid.NewString(),
				Category:  category.Name,
				Name:      entry.Name,
				Points:    entry.Points,
				Timestamp: timestamp,
			}
			if err := st.Create(&activity); err != nil {
				return fmt.Errorf("seeding activity: %w", err)
			}
			created++
		}
	}

	log.Printf("Seeded %d activities over the last %d days", created, days)
	return nil
}

// ClearActivities deletes every stored activity.
func ClearActivities(st store.ActivityStore) error {
	activities, err := st.FindInRange(time.Time{}, time.Time{}, 0)
	if err != nil {
		return fmt.Errorf("listing activities: %w", err)
	}
	for _, activity := range activities {
		if err := st.Delete(activity.ID); err != nil {
			return fmt.Errorf("deleting activity %s: %w", activity.ID, err)
		}
	}
	log.Printf("Cleared %d activities", len(activities))
	return nil
}
