package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/seasonrank/internal/models"
)

// MockRoundRepository is a mock implementation of repository.RoundRepository
type MockRoundRepository struct {
	mock.Mock
}

func (m *MockRoundRepository) ListByTournaments(ctx context.Context, tournamentIDs []int64) ([]models.Round, error) {
	args := m.Called(ctx, tournamentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Round), args.Error(1)
}

func (m *MockRoundRepository) SetEloEnabled(ctx context.Context, id int64, enabled bool) (bool, error) {
	args := m.Called(ctx, id, enabled)
	return args.Bool(0), args.Error(1)
}
