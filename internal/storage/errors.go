// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// wrap turns constraint violations into the matching sentinel, keeping the
// constraint name, and wraps anything else as is.
func wrap(err error, action string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("failed to %s: %w", action, err)
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("failed to %s (%s): %w", action, pgErr.ConstraintName, ErrDuplicateKey)
	case pgForeignKeyViolation:
		return fmt.Errorf("failed to %s (%s): %w", action, pgErr.ConstraintName, ErrForeignKeyViolation)
	}

	return fmt.Errorf("failed to %s: %w", action, err)
}

// IsNoRows reports an empty result from either pgx or database/sql.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
