// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const txTimeout = time.Minute

type lazyTxKey struct{}

// lazyTx is begun by the first statement that needs it, so a request that
// never writes never opens a transaction.
type lazyTx struct {
	db     *sql.DB
	tx     *sql.Tx
	cancel context.CancelFunc
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	// detached from the request so a client hanging up cannot roll back a
	// handler that already answered
	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)

	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel

	return tx, nil
}

func (lt *lazyTx) finish(fnErr error) error {
	defer func() {
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if lt.tx == nil {
		return fnErr
	}

	if fnErr != nil {
		if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			return errors.Join(fnErr, fmt.Errorf("failed to roll back: %w", err))
		}
		return fnErr
	}

	if err := lt.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	lt, _ := ctx.Value(lazyTxKey{}).(*lazyTx)
	return lt
}

// WithTx runs fn with every Statement built from its context sharing one
// transaction, committed when fn returns nil and rolled back otherwise.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	lt := &lazyTx{db: d.db}

	return lt.finish(fn(context.WithValue(ctx, lazyTxKey{}, lt)))
}
