package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/seasonrank/internal/models"
)

// MockPlayerRepository is a mock implementation of repository.PlayerRepository
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.Player, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Player), args.Error(1)
}
