package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/seasonrank/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The pool is pinned to one connection so every query sees the same database.
func NewTestDB(t *testing.T) *sql.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.ApplyMigrations(context.Background(), sqlDB, db.DriverSQLite))
	return sqlDB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Fixtures inserts records through raw SQL so repository tests do not depend
// on write paths the service never uses.
type Fixtures struct {
	t    *testing.T
	db   *sql.DB
	base time.Time
}

func NewFixtures(t *testing.T, sqlDB *sql.DB) *Fixtures {
	return &Fixtures{t: t, db: sqlDB, base: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

// At returns a deterministic timestamp offset from the fixture base time.
func (f *Fixtures) At(minutes int) time.Time {
	return f.base.Add(time.Duration(minutes) * time.Minute)
}

func (f *Fixtures) Tournament(code, category string, seasonYear *int, matchSize int, superfinalElo bool) int64 {
	res, err := f.db.Exec(`
INSERT INTO tournaments (code, name, category, season_year, match_size, status, superfinal_elo_enabled)
VALUES (?, ?, ?, ?, ?, 'finished', ?)
`, code, "Tournament "+code, category, seasonYear, matchSize, superfinalElo)
	require.NoError(f.t, err)
	id, err := res.LastInsertId()
	require.NoError(f.t, err)
	return id
}

func (f *Fixtures) Round(tournamentID int64, number int, isFinal bool, eloEnabled *bool) int64 {
	res, err := f.db.Exec(`
INSERT INTO rounds (tournament_id, number, is_final, elo_enabled)
VALUES (?, ?, ?, ?)
`, tournamentID, number, isFinal, eloEnabled)
	require.NoError(f.t, err)
	id, err := res.LastInsertId()
	require.NoError(f.t, err)
	return id
}

func (f *Fixtures) Player(name string, provisionalMatches int) int64 {
	res, err := f.db.Exec(`
INSERT INTO players (name, rating, matches_played, provisional_matches, color, icon)
VALUES (?, 1200, 10, ?, '#336699', 'knight')
`, name, provisionalMatches)
	require.NoError(f.t, err)
	id, err := res.LastInsertId()
	require.NoError(f.t, err)
	return id
}

func (f *Fixtures) Result(roundID, playerID int64, score float64, createdAt time.Time) int64 {
	res, err := f.db.Exec(`
INSERT INTO results (round_id, player_id, score, created_at)
VALUES (?, ?, ?, ?)
`, roundID, playerID, score, createdAt)
	require.NoError(f.t, err)
	id, err := res.LastInsertId()
	require.NoError(f.t, err)
	return id
}
