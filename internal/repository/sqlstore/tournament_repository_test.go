package sqlstore_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/seasonrank/internal/db"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/repository"
	"github.com/vytor/seasonrank/internal/repository/sqlstore"
	"github.com/vytor/seasonrank/internal/testutil"
	"github.com/xorcare/pointer"
)

type TournamentRepositorySuite struct {
	suite.Suite
	db       *sql.DB
	fixtures *testutil.Fixtures
	repo     repository.TournamentRepository
}

func (s *TournamentRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.fixtures = testutil.NewFixtures(s.T(), s.db)
	s.repo = sqlstore.NewTournamentRepository(s.db, db.DriverSQLite)
}

func (s *TournamentRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *TournamentRepositorySuite) TestList_SkipsTournamentsWithoutSeasonYear() {
	ctx := context.Background()
	s.fixtures.Tournament("LG24A", "league", pointer.Int(2024), 4, false)
	s.fixtures.Tournament("LGNUL", "league", nil, 4, false)

	got, err := s.repo.List(ctx, models.TournamentFilter{Category: models.CategoryLeague})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Assert().Equal("LG24A", got[0].Code)
	s.Require().NotNil(got[0].SeasonYear)
	s.Assert().Equal(2024, *got[0].SeasonYear)
}

func (s *TournamentRepositorySuite) TestList_FiltersByYearAndMode() {
	ctx := context.Background()
	s.fixtures.Tournament("A4", "league", pointer.Int(2024), 4, false)
	s.fixtures.Tournament("A6", "league", pointer.Int(2024), 6, false)
	s.fixtures.Tournament("B4", "league", pointer.Int(2023), 4, false)
	s.fixtures.Tournament("N4", "normal", pointer.Int(2024), 4, false)

	got, err := s.repo.List(ctx, models.TournamentFilter{
		Category:   models.CategoryLeague,
		SeasonYear: pointer.Int(2024),
		MatchSize:  pointer.Int(4),
	})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Assert().Equal("A4", got[0].Code)

	all, err := s.repo.List(ctx, models.TournamentFilter{Category: models.CategoryLeague})
	s.Require().NoError(err)
	s.Assert().Len(all, 3)
}

func (s *TournamentRepositorySuite) TestGetByCode() {
	ctx := context.Background()
	s.fixtures.Tournament("FUN01", "fun", pointer.Int(2022), 2, true)

	got, err := s.repo.GetByCode(ctx, "FUN01")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(models.CategoryFun, got.Category)
	s.Assert().True(got.SuperfinalEloEnabled)
	s.Assert().Nil(got.LocationID)

	missing, err := s.repo.GetByCode(ctx, "NOPE")
	s.Require().NoError(err)
	s.Assert().Nil(missing)
}

func (s *TournamentRepositorySuite) TestSeasonYears() {
	ctx := context.Background()
	s.fixtures.Tournament("T1", "league", pointer.Int(2023), 4, false)
	s.fixtures.Tournament("T2", "league", pointer.Int(2022), 4, false)
	s.fixtures.Tournament("T3", "normal", pointer.Int(2023), 4, false)
	s.fixtures.Tournament("T4", "league", nil, 4, false)
	s.fixtures.Tournament("T5", "league", pointer.Int(2024), 4, false)

	league, err := s.repo.SeasonYears(ctx, models.CategoryLeague)
	s.Require().NoError(err)
	s.Assert().Equal([]int{2024, 2023, 2022}, league)

	normal, err := s.repo.SeasonYears(ctx, models.CategoryNormal)
	s.Require().NoError(err)
	s.Assert().Equal([]int{2023}, normal)

	all, err := s.repo.SeasonYears(ctx, "")
	s.Require().NoError(err)
	s.Assert().Equal([]int{2024, 2023, 2022}, all)
}

func (s *TournamentRepositorySuite) TestSetSuperfinalElo() {
	ctx := context.Background()
	s.fixtures.Tournament("SF1", "league", pointer.Int(2024), 4, false)

	found, err := s.repo.SetSuperfinalElo(ctx, "SF1", true)
	s.Require().NoError(err)
	s.Assert().True(found)

	got, err := s.repo.GetByCode(ctx, "SF1")
	s.Require().NoError(err)
	s.Assert().True(got.SuperfinalEloEnabled)

	found, err = s.repo.SetSuperfinalElo(ctx, "MISSING", true)
	s.Require().NoError(err)
	s.Assert().False(found)
}

func TestTournamentRepositorySuite(t *testing.T) {
	suite.Run(t, new(TournamentRepositorySuite))
}
