package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"nestodo/internal/core/ports"
)

var errLockOutsideTransaction = errors.New("row lock requested outside a transaction")

type txKey struct{}

// executor is the subset of *sqlx.DB and *sqlx.Tx the repositories use.
type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// conn returns the transaction bound to ctx, or db when there is none.
func conn(ctx context.Context, db *sqlx.DB) executor {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

func inTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return ok
}

// lockingRead turns a SELECT into a locking read inside a transaction so it
// sees the latest committed rows and holds them until commit.
func lockingRead(ctx context.Context, query string) string {
	if inTransaction(ctx) {
		return query + " FOR UPDATE"
	}
	return query
}

// Transactor runs units of work in READ COMMITTED transactions. Sibling sets
// are serialized by locking their parent row (board or task list) first, and
// position reads inside the transaction are locking reads.
type Transactor struct {
	db *sqlx.DB
}

var _ ports.Transactor = (*Transactor)(nil)

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// lockRows takes row locks on ids of table in ascending id order, which keeps
// two transactions locking the same pair of rows from deadlocking.
func lockRows(ctx context.Context, db *sqlx.DB, table string, ids ...uint64) error {
	if !inTransaction(ctx) {
		return errLockOutsideTransaction
	}
	unique := uniqueSorted(ids)
	if len(unique) == 0 {
		return nil
	}

	query, args, err := sqlx.In("SELECT id FROM "+table+" WHERE id IN (?) ORDER BY id FOR UPDATE", unique)
	if err != nil {
		return err
	}

	var locked []uint64
	exec := conn(ctx, db)
	if err := exec.SelectContext(ctx, &locked, exec.Rebind(query), args...); err != nil {
		return fmt.Errorf("lock %s: %w", table, err)
	}
	return nil
}
