// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// EnsureGlobalRole inserts the role only when the identity has none, an existing
// role (admin included) is left untouched.
func (s *Storage) EnsureGlobalRole(ctx context.Context, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.EnsureGlobalRole")
	defer span.End()

	if _, err := s.db.Statement(ctx).
		Insert("global_roles").
		Columns("kratos_identity_id", "role").
		Values(userID, role).
		Suffix("ON CONFLICT (kratos_identity_id) DO NOTHING").
		ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to ensure global role: %w", err)
	}

	return nil
}

func (s *Storage) SetGlobalRole(ctx context.Context, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetGlobalRole")
	defer span.End()

	if _, err := s.db.Statement(ctx).
		Insert("global_roles").
		Columns("kratos_identity_id", "role").
		Values(userID, role).
		Suffix("ON CONFLICT (kratos_identity_id) DO UPDATE SET role = EXCLUDED.role").
		ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to set global role: %w", err)
	}

	return nil
}

func (s *Storage) GetGlobalRole(ctx context.Context, userID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetGlobalRole")
	defer span.End()

	var role string
	err := s.db.Statement(ctx).
		Select("role").
		From("global_roles").
		Where(sq.Eq{"kratos_identity_id": userID}).
		QueryRowContext(ctx).
		Scan(&role)

	if err != nil {
		if IsNoRows(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get global role: %w", err)
	}

	return role, nil
}

// ListGlobalRoles returns every explicit role keyed by identity id.
func (s *Storage) ListGlobalRoles(ctx context.Context) (map[string]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListGlobalRoles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("kratos_identity_id", "role").
		From("global_roles").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list global roles: %w", err)
	}
	defer rows.Close()

	roles := make(map[string]string)
	for rows.Next() {
		var id, role string
		if err := rows.Scan(&id, &role); err != nil {
			return nil, fmt.Errorf("failed to scan global role: %w", err)
		}
		roles[id] = role
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

func (s *Storage) DeleteGlobalRole(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteGlobalRole")
	defer span.End()

	if _, err := s.db.Statement(ctx).
		Delete("global_roles").
		Where(sq.Eq{"kratos_identity_id": userID}).
		ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to delete global role: %w", err)
	}

	return nil
}
