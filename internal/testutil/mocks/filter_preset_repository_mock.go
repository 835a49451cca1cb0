package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/seasonrank/internal/models"
)

// MockFilterPresetRepository is a mock implementation of repository.FilterPresetRepository
type MockFilterPresetRepository struct {
	mock.Mock
}

func (m *MockFilterPresetRepository) List(ctx context.Context, presetContext string) ([]models.FilterPreset, error) {
	args := m.Called(ctx, presetContext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FilterPreset), args.Error(1)
}

func (m *MockFilterPresetRepository) Get(ctx context.Context, id string) (*models.FilterPreset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FilterPreset), args.Error(1)
}

func (m *MockFilterPresetRepository) Insert(ctx context.Context, preset models.FilterPreset) error {
	args := m.Called(ctx, preset)
	return args.Error(0)
}

func (m *MockFilterPresetRepository) Update(ctx context.Context, preset models.FilterPreset) (bool, error) {
	args := m.Called(ctx, preset)
	return args.Bool(0), args.Error(1)
}

func (m *MockFilterPresetRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
