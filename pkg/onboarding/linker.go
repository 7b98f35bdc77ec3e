// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"strings"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
	"github.com/canonical/client-portal/internal/types"
)

const (
	stepMembership = "membership"
	stepGlobalRole = "global_role"
	stepInvitation = "invitation"
)

var linkSteps = []string{stepMembership, stepGlobalRole, stepInvitation}

// TenantLinker attaches an onboarded identity to its tenant.
type TenantLinker struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// LinkTenant performs three independent idempotent writes: the member
// membership, the default user global role and the invitation claim. A
// failing write is logged and does not stop the others; the result never
// carries an error to act on.
func (l *TenantLinker) LinkTenant(ctx context.Context, identity *Identity, tenantID string) LinkResult {
	ctx, span := l.tracer.Start(ctx, "onboarding.TenantLinker.LinkTenant")
	defer span.End()

	result := LinkResult{TenantID: tenantID}

	if identity == nil || identity.ID == "" || tenantID == "" {
		return result
	}

	failure := &LinkingPartialFailure{
		TenantID:   tenantID,
		IdentityID: identity.ID,
		Errs:       make(map[string]error),
	}

	created, err := l.storage.UpsertMembership(ctx, tenantID, identity.ID, types.MembershipRoleMember)
	if err != nil {
		failure.Errs[stepMembership] = err
	} else {
		result.MembershipLinked = true
		result.MembershipCreated = created
	}

	// never downgrades an existing admin
	if err := l.storage.EnsureGlobalRole(ctx, identity.ID, types.GlobalRoleUser); err != nil {
		failure.Errs[stepGlobalRole] = err
	} else {
		result.RoleEnsured = true
	}

	if identity.Email != "" {
		claimed, err := l.storage.ClaimInvitation(ctx, tenantID, strings.ToLower(identity.Email), identity.ID)
		if err != nil {
			failure.Errs[stepInvitation] = err
		} else {
			result.InvitationClaimed = claimed
		}
	}

	if len(failure.Errs) > 0 {
		result.Failure = failure
		l.logger.Errorf("%v", failure)
	}

	return result
}

func NewTenantLinker(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TenantLinker {
	l := new(TenantLinker)

	l.storage = storage
	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l
}
