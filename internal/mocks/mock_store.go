package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"moodlog/internal/models"
)

// MockActivityStore is the shared testify mock for the store interface.
type MockActivityStore struct {
	mock.Mock
}

func (m *MockActivityStore) Initialize() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockActivityStore) Create(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityStore) FindByID(id string) (*models.Activity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityStore) FindInRange(start, end time.Time, limit int) ([]models.Activity, error) {
	args := m.Called(start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityStore) Update(id string, update models.ActivityUpdate) (*models.Activity, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockActivityStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
