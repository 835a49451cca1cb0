package sqlstore_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/seasonrank/internal/db"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/repository"
	"github.com/vytor/seasonrank/internal/repository/sqlstore"
	"github.com/vytor/seasonrank/internal/testutil"
	"github.com/xorcare/pointer"
)

type FilterPresetRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.FilterPresetRepository
	base time.Time
}

func (s *FilterPresetRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlstore.NewFilterPresetRepository(s.db, db.DriverSQLite)
	s.base = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
}

func (s *FilterPresetRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *FilterPresetRepositorySuite) preset(id string, pinned bool, sortOrder int, minute int) models.FilterPreset {
	at := s.base.Add(time.Duration(minute) * time.Minute)
	return models.FilterPreset{
		ID:        id,
		Context:   "tournament_success",
		Label:     "preset " + id,
		Category:  "league",
		Pinned:    pinned,
		SortOrder: sortOrder,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func (s *FilterPresetRepositorySuite) TestList_OrdersPinnedThenSortOrderThenCreatedAt() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Insert(ctx, s.preset("row1", false, 2, 1)))
	s.Require().NoError(s.repo.Insert(ctx, s.preset("row2", true, 1, 2)))
	s.Require().NoError(s.repo.Insert(ctx, s.preset("row3", true, 0, 3)))
	other := s.preset("other", true, 0, 0)
	other.Context = "player_stats"
	s.Require().NoError(s.repo.Insert(ctx, other))

	got, err := s.repo.List(ctx, "tournament_success")
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Assert().Equal("row3", got[0].ID)
	s.Assert().Equal("row2", got[1].ID)
	s.Assert().Equal("row1", got[2].ID)
}

func (s *FilterPresetRepositorySuite) TestList_CreatedAtBreaksSortOrderTies() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Insert(ctx, s.preset("late", false, 1, 10)))
	s.Require().NoError(s.repo.Insert(ctx, s.preset("early", false, 1, 5)))

	got, err := s.repo.List(ctx, "tournament_success")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Assert().Equal("early", got[0].ID)
	s.Assert().Equal("late", got[1].ID)
}

func (s *FilterPresetRepositorySuite) TestGetUpdateDelete() {
	ctx := context.Background()
	p := s.preset("p1", false, 3, 0)
	p.DateFrom = pointer.String("2024-01-01")
	s.Require().NoError(s.repo.Insert(ctx, p))

	got, err := s.repo.Get(ctx, "p1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Require().NotNil(got.DateFrom)
	s.Assert().Equal("2024-01-01", *got.DateFrom)
	s.Assert().Nil(got.DateTo)

	p.Pinned = true
	p.SortOrder = -4
	p.DateFrom = nil
	p.UpdatedAt = s.base.Add(time.Hour)
	found, err := s.repo.Update(ctx, p)
	s.Require().NoError(err)
	s.Assert().True(found)

	got, err = s.repo.Get(ctx, "p1")
	s.Require().NoError(err)
	s.Assert().True(got.Pinned)
	s.Assert().Equal(-4, got.SortOrder)
	s.Assert().Nil(got.DateFrom)
	s.Assert().True(got.CreatedAt.Equal(s.base))

	deleted, err := s.repo.Delete(ctx, "p1")
	s.Require().NoError(err)
	s.Assert().True(deleted)

	got, err = s.repo.Get(ctx, "p1")
	s.Require().NoError(err)
	s.Assert().Nil(got)

	deleted, err = s.repo.Delete(ctx, "p1")
	s.Require().NoError(err)
	s.Assert().False(deleted)

	found, err = s.repo.Update(ctx, s.preset("ghost", false, 0, 0))
	s.Require().NoError(err)
	s.Assert().False(found)
}

func TestFilterPresetRepositorySuite(t *testing.T) {
	suite.Run(t, new(FilterPresetRepositorySuite))
}
