package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/seasonrank/internal/models"
)

// MockTournamentRepository is a mock implementation of repository.TournamentRepository
type MockTournamentRepository struct {
	mock.Mock
}

func (m *MockTournamentRepository) List(ctx context.Context, filter models.TournamentFilter) ([]models.Tournament, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tournament), args.Error(1)
}

func (m *MockTournamentRepository) GetByCode(ctx context.Context, code string) (*models.Tournament, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tournament), args.Error(1)
}

func (m *MockTournamentRepository) SeasonYears(ctx context.Context, category models.Category) ([]int, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockTournamentRepository) SetSuperfinalElo(ctx context.Context, code string, enabled bool) (bool, error) {
	args := m.Called(ctx, code, enabled)
	return args.Bool(0), args.Error(1)
}
