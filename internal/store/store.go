// Package store defines the activity record store and its two backends: a
// gorm/postgres store and a local JSON mirror used when no database service
// is configured. Which one is active is decided once, in the database
// package's factory; nothing else branches on the backend kind.
package store

import (
	"errors"
	"fmt"
	"time"

	"moodlog/internal/models"
)

var (
	// ErrDuplicateID is returned by Create when the caller-assigned id is
	// already present.
	ErrDuplicateID = errors.New("activity id already exists")

	// ErrNotFound is returned by FindByID and Update when no record has the
	// given id. Delete deliberately does not return it.
	ErrNotFound = errors.New("activity not found")
)

// StoreError wraps an I/O failure in either backend with the operation that
// hit it. Callers match it with errors.As or unwrap the cause.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ActivityStore is the capability set both backends implement with identical
// semantics.
type ActivityStore interface {
	// Initialize prepares durable storage. It is idempotent; the mirror
	// backend treats it as a no-op.
	Initialize() error

	// Create inserts a new record, assigning CreatedAt and UpdatedAt.
	// Fails with ErrDuplicateID when the id is taken.
	Create(activity *models.Activity) error

	// FindByID returns the record with the given id or ErrNotFound.
	FindByID(id string) (*models.Activity, error)

	// FindInRange returns records with start <= Timestamp < end, ordered by
	// Timestamp descending. A zero start or end leaves that side open; a
	// limit of 0 means no limit.
	FindInRange(start, end time.Time, limit int) ([]models.Activity, error)

	// Update applies the non-nil fields of update and refreshes UpdatedAt,
	// returning the stored record. Fails with ErrNotFound when absent.
	Update(id string, update models.ActivityUpdate) (*models.Activity, error)

	// Delete removes the record with the given id. Deleting an absent id is
	// a successful no-op.
	Delete(id string) error

	// Close releases the backend's resources.
	Close() error
}
