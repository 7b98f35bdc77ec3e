// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/client-portal/internal/types"
)

// UpsertMembership creates the (tenant, identity) membership or updates its role.
// The boolean reports whether a new row was inserted.
func (s *Storage) UpsertMembership(ctx context.Context, tenantID, userID, role string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return false, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var inserted bool
	err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "kratos_identity_id", "role").
		Values(id.String(), tenantID, userID, role).
		Suffix("ON CONFLICT (tenant_id, kratos_identity_id) DO UPDATE SET role = EXCLUDED.role RETURNING (xmax = 0)").
		QueryRowContext(ctx).
		Scan(&inserted)

	if err != nil {
		return false, wrap(err, "upsert membership")
	}

	return inserted, nil
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	return s.listMemberships(ctx, sq.Eq{"tenant_id": tenantID})
}

func (s *Storage) ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsByUserID")
	defer span.End()

	return s.listMemberships(ctx, sq.Eq{"kratos_identity_id": userID})
}

func (s *Storage) listMemberships(ctx context.Context, filter sq.Eq) ([]*types.Membership, error) {
	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "kratos_identity_id", "role", "created_at").
		From("memberships").
		Where(filter).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := make([]*types.Membership, 0)
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.TenantID, &m.KratosIdentityID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) DeleteMembershipsByUserID(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembershipsByUserID")
	defer span.End()

	if _, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"kratos_identity_id": userID}).
		ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}

	return nil
}
