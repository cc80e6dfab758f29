package database

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// isUndefinedTable reports the postgres undefined_table error. Read paths
// for late-added tables degrade this to an empty list instead of a 500.
func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "42P01"
}
