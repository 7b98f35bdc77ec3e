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

var invitationColumns = []string{"id", "tenant_id", "email", "role", "invited_by", "created_at", "expires_at", "claimed_at", "claimed_by"}

func scanInvitation(row rowScanner) (*types.PendingInvitation, error) {
	var inv types.PendingInvitation
	if err := row.Scan(&inv.ID, &inv.TenantID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.CreatedAt, &inv.ExpiresAt, &inv.ClaimedAt, &inv.ClaimedBy); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.PendingInvitation) (*types.PendingInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	created, err := scanInvitation(
		s.db.Statement(ctx).
			Insert("pending_invitations").
			Columns("id", "tenant_id", "email", "role", "invited_by", "expires_at").
			Values(id.String(), inv.TenantID, inv.Email, inv.Role, inv.InvitedBy, inv.ExpiresAt).
			Suffix("RETURNING id, tenant_id, email, role, invited_by, created_at, expires_at, claimed_at, claimed_by").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, wrap(err, "insert invitation")
	}

	return created, nil
}

// ClaimInvitation marks the unclaimed invitations for (tenant, email) as claimed by userID.
// Rows already claimed are never touched, so the call is a no-op the second time.
func (s *Storage) ClaimInvitation(ctx context.Context, tenantID, email, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ClaimInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("pending_invitations").
		Set("claimed_at", sq.Expr("now()")).
		Set("claimed_by", userID).
		Where(sq.Eq{"tenant_id": tenantID, "email": email}).
		Where("claimed_at IS NULL").
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to claim invitation: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n > 0, nil
}

func (s *Storage) ListInvitations(ctx context.Context, tenantID string) ([]*types.PendingInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitations")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("pending_invitations").
		OrderBy("created_at DESC")

	if tenantID != "" {
		query = query.Where(sq.Eq{"tenant_id": tenantID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	invitations := make([]*types.PendingInvitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// FirstUnclaimedInvitation returns the oldest unclaimed, unexpired invitation for the email.
func (s *Storage) FirstUnclaimedInvitation(ctx context.Context, email string) (*types.PendingInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FirstUnclaimedInvitation")
	defer span.End()

	inv, err := scanInvitation(
		s.db.Statement(ctx).
			Select(invitationColumns...).
			From("pending_invitations").
			Where(sq.Eq{"email": email}).
			Where("claimed_at IS NULL").
			Where("expires_at > now()").
			OrderBy("created_at ASC").
			Limit(1).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}
