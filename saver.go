package rowsave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Saver executes single-row inserts against a caller-owned database handle.
// Each Save is a stateless one-shot: build the statement, execute, commit.
// Saving the same value twice inserts two rows.
type Saver struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSaver(db *sqlx.DB, options ...SaverOption) *Saver {
	s := &Saver{db: db}
	for _, op := range options {
		op(s)
	}

	return s
}

type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type sqlTransaction struct {
	Tx *sqlx.Tx
}

func (st *sqlTransaction) Rollback(_ context.Context) error {
	return st.Tx.Rollback()
}

func (st *sqlTransaction) Commit(_ context.Context) error {
	return st.Tx.Commit()
}

func (s *Saver) Begin(ctx context.Context) (Transaction, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &sqlTransaction{Tx: tx}, nil
}

// Save inserts the populated columns of value as one row and commits.
// Without WithTransaction the insert runs in its own transaction, rolled
// back when execution fails.
func (s *Saver) Save(ctx context.Context, value any, options ...SaveOption) error {
	opt := &saveOption{}
	for _, op := range options {
		op(opt)
	}

	qry, args, err := BuildInsert(value)
	if err != nil {
		return err
	}

	return s.exec(ctx, opt, qry, args)
}

// SaveAll inserts all values in a single multi-row statement. Every value
// must target the same table and populate the same column set.
func (s *Saver) SaveAll(ctx context.Context, values []any, options ...SaveOption) error {
	opt := &saveOption{}
	for _, op := range options {
		op(opt)
	}

	qry, args, err := buildMultiInsert(values)
	if err != nil {
		return err
	}

	return s.exec(ctx, opt, qry, args)
}

// SaveReturning inserts value and scans the generated key field into dest.
// The dialect must support INSERT ... RETURNING.
func (s *Saver) SaveReturning(ctx context.Context, value any, dest any, options ...SaveOption) error {
	opt := &saveOption{}
	for _, op := range options {
		op(opt)
	}

	def, err := TableDefOf(value)
	if err != nil {
		return err
	}

	if def.KeyField == "" {
		return fmt.Errorf("%w for table %s", ErrNoKeyField, def.FullName())
	}

	qry, args, err := BuildInsert(value)
	if err != nil {
		return err
	}

	qry += fmt.Sprintf(" RETURNING %s", def.KeyField)

	tx, err := s.createTransaction(ctx, opt)
	if err != nil {
		return wrapSaveError(err)
	}

	if opt.Tx == nil {
		defer tx.Rollback()
	}

	qry = tx.Rebind(qry)
	s.logStatement(ctx, qry, args)

	if err := tx.GetContext(ctx, dest, qry, args...); err != nil {
		return wrapSaveError(err)
	}

	if opt.Tx != nil {
		return nil
	}

	return tx.Commit()
}

func (s *Saver) exec(ctx context.Context, opt *saveOption, qry string, args []any) error {
	tx, err := s.createTransaction(ctx, opt)
	if err != nil {
		return wrapSaveError(err)
	}

	if opt.Tx == nil {
		defer tx.Rollback()
	}

	qry = tx.Rebind(qry)
	s.logStatement(ctx, qry, args)

	if _, err := tx.ExecContext(ctx, qry, args...); err != nil {
		return wrapSaveError(err)
	}

	if opt.Tx != nil {
		return nil
	}

	return tx.Commit()
}

func (s *Saver) createTransaction(ctx context.Context, opt *saveOption) (*sqlx.Tx, error) {
	if opt.Tx != nil {
		if tx, ok := opt.Tx.(*sqlTransaction); ok {
			return tx.Tx, nil
		}
	}

	return s.db.BeginTxx(ctx, nil)
}

func (s *Saver) logStatement(ctx context.Context, qry string, args []any) {
	if s.logger == nil {
		return
	}

	s.logger.InfoContext(ctx, "save exec",
		"statement", qry,
		"args", args,
	)
}
