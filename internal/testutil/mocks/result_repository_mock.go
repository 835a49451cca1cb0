package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/seasonrank/internal/models"
)

// MockResultRepository is a mock implementation of repository.ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) ListByTournaments(ctx context.Context, tournamentIDs []int64) ([]models.Result, error) {
	args := m.Called(ctx, tournamentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Result), args.Error(1)
}
