package rowsave

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrKeyAlreadyExists = errors.New("key already exists")
	ErrKeyNotFound      = errors.New("key not found")
	ErrNoRow            = errors.New("no row")
	ErrNoColumns        = errors.New("no columns to insert")
	ErrNoKeyField       = errors.New("no key field declared")
	ErrNotMapped        = errors.New("value is not a mapped type")
)

func wrapSaveError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w. %s", ErrNoRow, err.Error())
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) && pgerrcode.IsIntegrityConstraintViolation(pgxErr.Code) {
		return fmt.Errorf("%w. %s", ErrKeyAlreadyExists, pgxErr.Message)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pgerrcode.IsIntegrityConstraintViolation(string(pqErr.Code)) {
		return fmt.Errorf("%w. %s", ErrKeyAlreadyExists, pqErr.Message)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w. %s", ErrKeyAlreadyExists, liteErr.Error())
	}

	return err
}
