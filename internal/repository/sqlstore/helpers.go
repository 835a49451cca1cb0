package sqlstore

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/seasonrank/internal/db"
)

// Helper functions shared across repository implementations

func builderFor(driver string) squirrel.StatementBuilderType {
	return db.Builder(driver)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
