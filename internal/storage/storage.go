// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/client-portal/internal/db"
	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
	"github.com/canonical/client-portal/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var tenantColumns = []string{"id", "company", "name", "email", "phone", "description", "owner_id", "created_at"}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenant(row rowScanner) (*types.Tenant, error) {
	var t types.Tenant
	if err := row.Scan(&t.ID, &t.Company, &t.Name, &t.Email, &t.Phone, &t.Description, &t.OwnerID, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTenants(rows *sql.Rows) ([]*types.Tenant, error) {
	defer rows.Close()

	tenants := make([]*types.Tenant, 0)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	return tenants, rows.Err()
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	created, err := scanTenant(
		s.db.Statement(ctx).
			Insert("tenants").
			Columns("id", "company", "name", "email", "phone", "description", "owner_id").
			Values(id.String(), t.Company, t.Name, t.Email, t.Phone, t.Description, t.OwnerID).
			Suffix("RETURNING id, company, name, email, phone, description, owner_id, created_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, wrap(err, "insert tenant")
	}

	return created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	t, err := scanTenant(
		s.db.Statement(ctx).
			Select(tenantColumns...).
			From("tenants").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

// ListTenants returns one page of tenants ordered by company name.
func (s *Storage) ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("company ASC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	return collectTenants(rows)
}

func (s *Storage) ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("t.id", "t.company", "t.name", "t.email", "t.phone", "t.description", "t.owner_id", "t.created_at").
		From("tenants t").
		Join("memberships m ON t.id = m.tenant_id").
		Where(sq.Eq{"m.kratos_identity_id": userID}).
		OrderBy("m.created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	return collectTenants(rows)
}

// UpdateTenant follows PATCH semantics: only the fields named in paths are written.
func (s *Storage) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	mutable := map[string]string{
		"company":     tenant.Company,
		"name":        tenant.Name,
		"email":       tenant.Email,
		"phone":       tenant.Phone,
		"description": tenant.Description,
	}

	changes := sq.Eq{}
	for _, p := range paths {
		if v, ok := mutable[p]; ok {
			changes[p] = v
		}
	}

	if len(changes) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(changes).
		Where(sq.Eq{"id": tenant.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	if _, err := s.db.Statement(ctx).Delete("tenants").Where(sq.Eq{"id": id}).ExecContext(ctx); err != nil {
		return wrap(err, "delete tenant")
	}

	return nil
}
