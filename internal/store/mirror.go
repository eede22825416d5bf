package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"moodlog/internal/models"
)

// mirrorStore keeps the whole record set as one JSON blob in a single file,
// replacing the full value on every write. It mirrors the browser
// localStorage fallback of the hosted app and is selected when the
// configured endpoint is a file: URL. The mutex covers concurrent handlers
// within this process; concurrent writers from other processes are not
// guarded against.
type mirrorStore struct {
	mu   sync.Mutex
	path string
}

// NewMirrorStore creates a local mirror persisting to path.
func NewMirrorStore(path string) ActivityStore {
	return &mirrorStore{path: path}
}

func (s *mirrorStore) Initialize() error {
	log.Printf("Using local mirror storage at %s", s.path)
	return nil
}

func (s *mirrorStore) load() ([]models.Activity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StoreError{Op: "load", Err: err}
	}
	var activities []models.Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil, &StoreError{Op: "load", Err: err}
	}
	return activities, nil
}

func (s *mirrorStore) save(activities []models.Activity) error {
	data, err := json.Marshal(activities)
	if err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &StoreError{Op: "save", Err: err}
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	return nil
}

func (s *mirrorStore) Create(activity *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := s.load()
	if err != nil {
		return err
	}
	for _, existing := range activities {
		if existing.ID == activity.ID {
			return ErrDuplicateID
		}
	}

	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	return s.save(append(activities, *activity))
}

func (s *mirrorStore) FindByID(id string) (*models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range activities {
		if activities[i].ID == id {
			return &activities[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *mirrorStore) FindInRange(start, end time.Time, limit int) ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := s.load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Activity, 0, len(activities))
	for _, activity := range activities {
		if !start.IsZero() && activity.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && !activity.Timestamp.Before(end) {
			continue
		}
		filtered = append(filtered, activity)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (s *mirrorStore) Update(id string, update models.ActivityUpdate) (*models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range activities {
		if activities[i].ID != id {
			continue
		}
		if update.Category != nil {
			activities[i].Category = *update.Category
		}
		if update.Name != nil {
			activities[i].Name = *update.Name
		}
		if update.Points != nil {
			activities[i].Points = *update.Points
		}
		if update.Timestamp != nil {
			activities[i].Timestamp = *update.Timestamp
		}
		activities[i].UpdatedAt = time.Now()

		if err := s.save(activities); err != nil {
			return nil, err
		}
		updated := activities[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (s *mirrorStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := s.load()
	if err != nil {
		return err
	}
	remaining := activities[:0]
	for _, activity := range activities {
		if activity.ID != id {
			remaining = append(remaining, activity)
		}
	}
	// Absent id: nothing filtered out, still a success.
	return s.save(remaining)
}

func (s *mirrorStore) Close() error {
	return nil
}
