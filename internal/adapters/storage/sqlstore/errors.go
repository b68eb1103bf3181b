package sqlstore

import (
	"database/sql"
	"errors"
	"strings"

	"shelter-api/internal/errs"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Códigos de MySQL que corresponden a violaciones de constraint.
var mysqlConstraintErrors = map[uint16]struct{}{
	1048: {}, // column cannot be null
	1062: {}, // duplicate entry
	1364: {}, // field doesn't have a default value
	1451: {}, // row is referenced (fk, delete/update padre)
	1452: {}, // fk hijo sin padre
	3819: {}, // check constraint
}

// translate lleva un error de driver a la taxonomía de errs.
// El mensaje del motor se conserva tal cual.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// clase 23: integrity constraint violation; clase 22: data exception
		if strings.HasPrefix(pgErr.Code, "23") || strings.HasPrefix(pgErr.Code, "22") {
			return &errs.ValidationError{Field: pgErr.ColumnName, Message: pgErr.Message, Err: err}
		}
		return errs.Storage(op, err)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return &errs.ValidationError{Err: err}
		}
		return errs.Storage(op, err)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		if _, ok := mysqlConstraintErrors[myErr.Number]; ok {
			return &errs.ValidationError{Message: myErr.Message, Err: err}
		}
		return errs.Storage(op, err)
	}

	return errs.Storage(op, err)
}
