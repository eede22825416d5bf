package store

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"moodlog/internal/models"
)

type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore wraps an open gorm connection. The connection must be
// opened with TranslateError so duplicate keys surface as
// gorm.ErrDuplicatedKey.
func NewPostgresStore(db *gorm.DB) ActivityStore {
	return &postgresStore{db: db}
}

func (s *postgresStore) Initialize() error {
	log.Println("Running activities migration...")
	if err := s.db.AutoMigrate(&models.Activity{}); err != nil {
		return &StoreError{Op: "initialize", Err: err}
	}
	return nil
}

func (s *postgresStore) Create(activity *models.Activity) error {
	err := s.db.Create(activity).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateID
	}
	return &StoreError{Op: "create", Err: err}
}

func (s *postgresStore) FindByID(id string) (*models.Activity, error) {
	var activity models.Activity
	err := s.db.First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "find", Err: err}
	}
	return &activity, nil
}

func (s *postgresStore) FindInRange(start, end time.Time, limit int) ([]models.Activity, error) {
	query := s.db.Model(&models.Activity{})
	if !start.IsZero() {
		query = query.Where("timestamp >= ?", start)
	}
	if !end.IsZero() {
		query = query.Where("timestamp < ?", end)
	}
	query = query.Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var activities []models.Activity
	if err := query.Find(&activities).Error; err != nil {
		return nil, &StoreError{Op: "find range", Err: err}
	}
	return activities, nil
}

func (s *postgresStore) Update(id string, update models.ActivityUpdate) (*models.Activity, error) {
	fields := map[string]interface{}{}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Points != nil {
		fields["points"] = *update.Points
	}
	if update.Timestamp != nil {
		fields["timestamp"] = *update.Timestamp
	}
	fields["updated_at"] = time.Now()

	result := s.db.Model(&models.Activity{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, &StoreError{Op: "update", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(id)
}

func (s *postgresStore) Delete(id string) error {
	// Deleting a missing id is a no-op, matching the mirror backend.
	if err := s.db.Delete(&models.Activity{}, "id = ?", id).Error; err != nil {
		return &StoreError{Op: "delete", Err: err}
	}
	return nil
}

func (s *postgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return &StoreError{Op: "close", Err: err}
	}
	return sqlDB.Close()
}
