package models

import (
	"time"
)

// Activity is a single logged activity. The ID is assigned by the caller at
// creation time; Timestamp is when the activity happened, which callers may
// backdate, while CreatedAt/UpdatedAt are store bookkeeping.
type Activity struct {
	ID        string    `gorm:"primaryKey" json:"id" example:"b3c9e2a4-1f0d-4a8e-9c21-7d5e8f3a6b10"`
	Category  string    `gorm:"not null;index" json:"category" example:"Exercise"`
	Name      string    `gorm:"not null" json:"name" example:"Workout"`
	Points    int       `gorm:"not null" json:"points" example:"5"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp" example:"2025-01-01T10:00:00Z"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-01-01T10:00:00Z"`
}

// CreateActivityInput is the caller-supplied part of a new activity.
type CreateActivityInput struct {
	ID        string    `json:"id" binding:"required"`
	Category  string    `json:"category" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Points    int       `json:"points"`
	Timestamp time.Time `json:"timestamp" binding:"required"`
}

// ActivityUpdate carries a partial field replace; nil fields are left as-is.
type ActivityUpdate struct {
	Category  *string    `json:"category"`
	Name      *string    `json:"name"`
	Points    *int       `json:"points"`
	Timestamp *time.Time `json:"timestamp"`
}

// ActivityStats are the derived gamification numbers, never persisted.
type ActivityStats struct {
	TotalPoints     int `json:"totalPoints"`
	StreakCount     int `json:"streakCount"`
	Level           int `json:"level"`
	ActivitiesCount int `json:"activitiesCount"`
}

// DailyMoodData is one heatmap cell: the aggregate for a calendar date that
// has at least one activity. Days without activities produce no entry.
type DailyMoodData struct {
	Date            string `json:"date" example:"2025-01-01"`
	TotalPoints     int    `json:"totalPoints"`
	ActivitiesCount int    `json:"activitiesCount"`
}

// Achievement is a gamification badge derived from the current stats.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}
