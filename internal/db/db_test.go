package db_test

import (
	"context"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/seasonrank/internal/db"
)

func TestOpen_SQLiteAppliesMigrations(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer database.Close()

	var count int
	err = database.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for _, table := range []string{"tournaments", "rounds", "results", "players", "filter_presets"} {
		_, err := database.ExecContext(ctx, "SELECT 1 FROM "+table+" LIMIT 1")
		assert.NoError(t, err, "table %s should exist", table)
	}

	// A second run must be a no-op.
	require.NoError(t, db.ApplyMigrations(ctx, database.DB, db.DriverSQLite))
	err = database.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := db.Open(context.Background(), "mysql", "root@/seasonrank")
	assert.Error(t, err)
}

func TestBuilder_PlaceholderFollowsDriver(t *testing.T) {
	tests := []struct {
		driver   string
		expected string
	}{
		{driver: db.DriverSQLite, expected: "SELECT id FROM rounds WHERE tournament_id = ?"},
		{driver: db.DriverPostgres, expected: "SELECT id FROM rounds WHERE tournament_id = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			query, args, err := db.Builder(tt.driver).Select("id").From("rounds").Where(squirrel.Eq{"tournament_id": 3}).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
			assert.Equal(t, []interface{}{3}, args)
		})
	}
}
