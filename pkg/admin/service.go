// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/client-portal/internal/kratos"
	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/storage"
	"github.com/canonical/client-portal/internal/tracing"
	"github.com/canonical/client-portal/internal/types"
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrCompanyRequired = errors.New("company name or id is required")
	ErrSelfDeletion    = errors.New("administrators cannot delete themselves")
)

// Invitation is what an administrator fills in to onboard someone.
type Invitation struct {
	Email    string
	Name     string
	Company  string
	TenantID string
}

type InviteResult struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"client_id"`
	Existing bool   `json:"existing"`
}

type Service struct {
	storage            StorageInterface
	kratos             KratosClientInterface
	links              LinkSenderInterface
	invitationLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	kratos KratosClientInterface,
	links LinkSenderInterface,
	invitationLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.kratos = kratos
	s.links = links
	s.invitationLifetime = invitationLifetime

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// InviteUser finds or creates the identity and mails it a link into the
// company, creating the company first when only its name is known.
func (s *Service) InviteUser(ctx context.Context, actorID string, inv *Invitation) (*InviteResult, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.InviteUser")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(inv.Email))

	tenant, err := s.resolveTenant(ctx, actorID, inv)
	if err != nil {
		return nil, err
	}

	identityID, err := s.kratos.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check identity: %w", err)
	}

	result := &InviteResult{TenantID: tenant.ID, Existing: identityID != ""}

	if identityID == "" {
		identityID, err = s.kratos.CreateIdentity(ctx, email, inv.Name, tenant.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to provision user: %w", err)
		}
		s.logger.Infof("Created identity %s for invitation into %s", identityID, tenant.ID)
	}

	result.UserID = identityID

	// identities created through the admin API skip the registration hook
	if err := s.storage.EnsureGlobalRole(ctx, identityID, types.GlobalRoleUser); err != nil {
		return nil, fmt.Errorf("failed to ensure global role: %w", err)
	}

	if result.Existing {
		err = s.links.SendMagicLink(ctx, identityID, email, tenant.ID)
	} else {
		err = s.links.SendInvitation(ctx, identityID, email, tenant.Company, tenant.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to send invitation: %w", err)
	}

	now := time.Now().UTC()
	if _, err := s.storage.CreateInvitation(ctx, &types.PendingInvitation{
		TenantID:  tenant.ID,
		Email:     email,
		Role:      types.GlobalRoleUser,
		InvitedBy: actorID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.invitationLifetime),
	}); err != nil {
		// the link is already out, the token hook falls back to memberships
		s.logger.Errorf("failed to record invitation for %s: %v", email, err)
	}

	s.logger.Security().AdminAction(actorID, "invite_user", email)

	return result, nil
}

func (s *Service) resolveTenant(ctx context.Context, actorID string, inv *Invitation) (*types.Tenant, error) {
	if inv.TenantID != "" {
		return s.storage.GetTenantByID(ctx, inv.TenantID)
	}

	company := strings.TrimSpace(inv.Company)
	if company == "" {
		return nil, ErrCompanyRequired
	}

	tenant, err := s.storage.CreateTenant(ctx, &types.Tenant{Company: company, Name: company, OwnerID: actorID})
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return tenant, nil
}

// AddUserToCompany reports true when a membership was created and false when
// an existing one had its role changed.
func (s *Service) AddUserToCompany(ctx context.Context, actorID, userID, tenantID, role string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.AddUserToCompany")
	defer span.End()

	switch role {
	case types.MembershipRoleAdmin, types.MembershipRoleMember, types.MembershipRoleViewer:
	default:
		return false, ErrInvalidRole
	}

	created, err := s.storage.UpsertMembership(ctx, tenantID, userID, role)
	if err != nil {
		return false, fmt.Errorf("failed to add user to company: %w", err)
	}

	s.logger.Security().AdminAction(actorID, "add_user_to_company", userID+"@"+tenantID)

	return created, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListUsers")
	defer span.End()

	identities, err := s.kratos.ListIdentities(ctx)
	if err != nil {
		return nil, err
	}

	roles, err := s.storage.ListGlobalRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	users := make([]*types.User, 0, len(identities))
	for i := range identities {
		identity := &identities[i]

		companies, err := s.storage.ListTenantsByUserID(ctx, identity.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to list companies of %s: %w", identity.Id, err)
		}

		role, ok := roles[identity.Id]
		if !ok {
			role = types.GlobalRoleUser
		}

		user := &types.User{
			ID:        identity.Id,
			Email:     kratos.Email(identity),
			Name:      kratos.Name(identity),
			Role:      role,
			Companies: companies,
		}
		if identity.CreatedAt != nil {
			user.CreatedAt = *identity.CreatedAt
		}

		users = append(users, user)
	}

	return users, nil
}

// DeleteUser removes the portal records before the identity so a failure
// never leaves rows pointing at a deleted identity.
func (s *Service) DeleteUser(ctx context.Context, actorID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.DeleteUser")
	defer span.End()

	if actorID == userID {
		return ErrSelfDeletion
	}

	if err := s.storage.DeleteMembershipsByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}

	if err := s.storage.DeleteGlobalRole(ctx, userID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to delete global role: %w", err)
	}

	if err := s.kratos.DeleteIdentity(ctx, userID); err != nil {
		return err
	}

	s.logger.Security().AdminAction(actorID, "delete_user", userID)

	return nil
}

func (s *Service) SetUserRole(ctx context.Context, actorID, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.SetUserRole")
	defer span.End()

	if role != types.GlobalRoleAdmin && role != types.GlobalRoleUser {
		return ErrInvalidRole
	}

	if err := s.storage.SetGlobalRole(ctx, userID, role); err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}

	s.logger.Security().AdminAction(actorID, "set_role_"+role, userID)

	return nil
}

func (s *Service) ListInvitations(ctx context.Context, tenantID string) ([]*types.PendingInvitation, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListInvitations")
	defer span.End()

	return s.storage.ListInvitations(ctx, tenantID)
}
