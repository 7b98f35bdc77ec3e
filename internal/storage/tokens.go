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

func (s *Storage) CreateOneTimeToken(ctx context.Context, t *types.OneTimeToken) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOneTimeToken")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate token ID: %w", err)
	}

	if _, err := s.db.Statement(ctx).
		Insert("one_time_tokens").
		Columns("id", "token_hash", "type", "kratos_identity_id", "email", "tenant_id", "expires_at").
		Values(id.String(), t.TokenHash, t.Type, t.KratosIdentityID, t.Email, t.TenantID, t.ExpiresAt).
		ExecContext(ctx); err != nil {
		return wrap(err, "insert one-time token")
	}

	return nil
}

// ConsumeOneTimeToken redeems a token exactly once: the row is marked used only
// while it is unused and unexpired, otherwise ErrNotFound is returned.
func (s *Storage) ConsumeOneTimeToken(ctx context.Context, tokenHash string, tokenTypes []string) (*types.OneTimeToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ConsumeOneTimeToken")
	defer span.End()

	var t types.OneTimeToken
	err := s.db.Statement(ctx).
		Update("one_time_tokens").
		Set("used_at", sq.Expr("now()")).
		Where(sq.Eq{"token_hash": tokenHash, "type": tokenTypes}).
		Where("used_at IS NULL").
		Where("expires_at > now()").
		Suffix("RETURNING id, token_hash, type, kratos_identity_id, email, tenant_id, created_at, expires_at, used_at").
		QueryRowContext(ctx).
		Scan(&t.ID, &t.TokenHash, &t.Type, &t.KratosIdentityID, &t.Email, &t.TenantID, &t.CreatedAt, &t.ExpiresAt, &t.UsedAt)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to consume one-time token: %w", err)
	}

	return &t, nil
}
