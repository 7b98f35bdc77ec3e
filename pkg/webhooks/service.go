// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/client-portal/internal/kratos"
	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/storage"
	"github.com/canonical/client-portal/internal/tracing"
	"github.com/canonical/client-portal/internal/types"
)

type Service struct {
	storage StorageInterface
	kratos  KratosClientInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	kratos KratosClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		kratos:  kratos,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration gives a new identity the user role and, when it was
// created for a company, a member seat in it.
func (s *Service) HandleRegistration(ctx context.Context, identity *KratosIdentity) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity == nil || identity.ID == "" {
		return fmt.Errorf("identity ID is empty")
	}

	s.logger.Debugf("Handling registration for identity %s", identity.ID)

	if err := s.storage.EnsureGlobalRole(ctx, identity.ID, types.GlobalRoleUser); err != nil {
		return fmt.Errorf("failed to ensure global role: %w", err)
	}

	tenantID := identity.MetadataPublic.ClientID
	if tenantID == "" {
		return nil
	}

	if _, err := s.storage.UpsertMembership(ctx, tenantID, identity.ID, types.MembershipRoleMember); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	s.logger.Infof("Identity %s joined tenant %s on registration", identity.ID, tenantID)
	return nil
}

// HandleTokenHook adds the identity companies and its current company to the
// issued tokens.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req == nil || req.Session == nil || req.Session.DefaultSession == nil || req.Session.DefaultSession.Subject == "" {
		s.logger.Debug("token hook without subject")
		return nil, fmt.Errorf("session subject is missing")
	}

	userID := req.Session.DefaultSession.Subject
	s.logger.Debugf("Handling token hook for %s", userID)

	memberships, err := s.storage.ListMembershipsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	resp := new(TokenHookResponse)
	resp.Session.IDToken = map[string]interface{}{}
	resp.Session.AccessToken = map[string]interface{}{}

	if len(memberships) > 0 {
		tenants := make([]string, 0, len(memberships))
		for _, m := range memberships {
			tenants = append(tenants, m.TenantID)
		}
		resp.Session.IDToken["tenants"] = tenants
		resp.Session.AccessToken["tenants"] = tenants
	}

	if clientID := s.currentTenant(ctx, userID, memberships); clientID != "" {
		metadata := map[string]interface{}{"client_id": clientID}
		resp.Session.IDToken["user_metadata"] = metadata
		resp.Session.AccessToken["user_metadata"] = metadata
	}

	return resp, nil
}

// currentTenant prefers a pending invitation over existing memberships so a
// freshly invited user lands in the company that invited them.
func (s *Service) currentTenant(ctx context.Context, userID string, memberships []*types.Membership) string {
	identity, err := s.kratos.GetIdentity(ctx, userID)
	if err != nil {
		s.logger.Warnf("failed to get identity %s: %v", userID, err)
	} else if email := strings.ToLower(kratos.Email(identity)); email != "" {
		inv, err := s.storage.FirstUnclaimedInvitation(ctx, email)
		switch {
		case err == nil:
			return inv.TenantID
		case !errors.Is(err, storage.ErrNotFound):
			s.logger.Warnf("failed to look up invitations of %s: %v", userID, err)
		}
	}

	if len(memberships) > 0 {
		return memberships[0].TenantID
	}

	return ""
}
