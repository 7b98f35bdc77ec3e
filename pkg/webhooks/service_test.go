// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	ory "github.com/ory/client-go"
	"github.com/ory/hydra/v2/oauth2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/client-portal/internal/storage"
	"github.com/canonical/client-portal/internal/types"
)

type serviceMocks struct {
	storage *MockStorageInterface
	kratos  *MockKratosClientInterface
	logger  *MockLoggerInterface
}

func newTestService(ctrl *gomock.Controller, span string) (*Service, *serviceMocks) {
	m := &serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		kratos:  NewMockKratosClientInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), span).
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	return NewService(m.storage, m.kratos, mockTracer, NewMockMonitorInterface(ctrl), m.logger), m
}

func TestService_HandleRegistration(t *testing.T) {
	testCases := []struct {
		name        string
		identity    *KratosIdentity
		setupMocks  func(*serviceMocks)
		expectedErr bool
	}{
		{
			name:     "self registration gets the user role only",
			identity: &KratosIdentity{ID: "identity-1", Traits: KratosTraits{Email: "a@example.com"}},
			setupMocks: func(m *serviceMocks) {
				m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				m.storage.EXPECT().EnsureGlobalRole(gomock.Any(), "identity-1", types.GlobalRoleUser).Return(nil)
			},
		},
		{
			name:     "identity created for a company joins it",
			identity: &KratosIdentity{ID: "identity-2", MetadataPublic: KratosMetadata{ClientID: "tenant-1"}},
			setupMocks: func(m *serviceMocks) {
				m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
				m.storage.EXPECT().EnsureGlobalRole(gomock.Any(), "identity-2", types.GlobalRoleUser).Return(nil)
				m.storage.EXPECT().UpsertMembership(gomock.Any(), "tenant-1", "identity-2", types.MembershipRoleMember).Return(true, nil)
			},
		},
		{
			name:     "membership failure",
			identity: &KratosIdentity{ID: "identity-3", MetadataPublic: KratosMetadata{ClientID: "tenant-1"}},
			setupMocks: func(m *serviceMocks) {
				m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				m.storage.EXPECT().EnsureGlobalRole(gomock.Any(), "identity-3", types.GlobalRoleUser).Return(nil)
				m.storage.EXPECT().UpsertMembership(gomock.Any(), "tenant-1", "identity-3", types.MembershipRoleMember).Return(false, storage.ErrForeignKeyViolation)
			},
			expectedErr: true,
		},
		{
			name:        "missing identity id",
			identity:    &KratosIdentity{},
			setupMocks:  func(*serviceMocks) {},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, "webhooks.Service.HandleRegistration")
			tc.setupMocks(m)

			err := s.HandleRegistration(context.Background(), tc.identity)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_HandleTokenHook(t *testing.T) {
	userID := "user-123"
	memberships := []*types.Membership{
		{TenantID: "tenant-1", KratosIdentityID: userID},
		{TenantID: "tenant-2", KratosIdentityID: userID},
	}
	identity := &ory.Identity{Id: userID, Traits: map[string]interface{}{"email": "User@Example.com"}}

	testCases := []struct {
		name           string
		request        *oauth2.TokenHookRequest
		setupMocks     func(*serviceMocks)
		expectedErr    bool
		expectedClient string
		expectTenants  int
	}{
		{
			name:    "pending invitation wins over memberships",
			request: &oauth2.TokenHookRequest{Session: oauth2.NewSession(userID)},
			setupMocks: func(m *serviceMocks) {
				m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				m.storage.EXPECT().ListMembershipsByUserID(gomock.Any(), userID).Return(memberships, nil)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), userID).Return(identity, nil)
				m.storage.EXPECT().FirstUnclaimedInvitation(gomock.Any(), "user@example.com").Return(&types.PendingInvitation{TenantID: "tenant-9"}, nil)
			},
			expectedClient: "tenant-9",
			expectTenants:  2,
		},
		{
			name:    "first membership without invitation",
			request: &oauth2.TokenHookRequest{Session: oauth2.NewSession(userID)},
			setupMocks: func(m *serviceMocks) {
				m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				m.storage.EXPECT().ListMembershipsByUserID(gomock.Any(), userID).Return(memberships, nil)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), userID).Return(identity, nil)
				m.storage.EXPECT().FirstUnclaimedInvitation(gomock.Any(), "user@example.com").Return(nil, storage.ErrNotFound)
			},
			expectedClient: "tenant-1",
			expectTenants:  2,
		},
		{
			name:    "identity lookup failure falls back to memberships",
			request: &oauth2.TokenHookRequest{Session: oauth2.NewSession(userID)},
			setupMocks: func(m *serviceMocks) {
				m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
				m.storage.EXPECT().ListMembershipsByUserID(gomock.Any(), userID).Return(memberships, nil)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), userID).Return(nil, errors.New("kratos down"))
			},
			expectedClient: "tenant-1",
			expectTenants:  2,
		},
		{
			name:    "user with no companies",
			request: &oauth2.TokenHookRequest{Session: oauth2.NewSession(userID)},
			setupMocks: func(m *serviceMocks) {
				m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				m.storage.EXPECT().ListMembershipsByUserID(gomock.Any(), userID).Return([]*types.Membership{}, nil)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), userID).Return(identity, nil)
				m.storage.EXPECT().FirstUnclaimedInvitation(gomock.Any(), "user@example.com").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name:    "error - no user id in session",
			request: &oauth2.TokenHookRequest{Session: oauth2.NewSession("")},
			setupMocks: func(m *serviceMocks) {
				m.logger.EXPECT().Debug(gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:    "error - nil session",
			request: &oauth2.TokenHookRequest{},
			setupMocks: func(m *serviceMocks) {
				m.logger.EXPECT().Debug(gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:    "error - storage error",
			request: &oauth2.TokenHookRequest{Session: oauth2.NewSession(userID)},
			setupMocks: func(m *serviceMocks) {
				m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				m.storage.EXPECT().ListMembershipsByUserID(gomock.Any(), userID).Return(nil, errors.New("storage error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, "webhooks.Service.HandleTokenHook")
			tc.setupMocks(m)

			resp, err := s.HandleTokenHook(context.Background(), tc.request)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tenants, _ := resp.Session.AccessToken["tenants"].([]string)
			if len(tenants) != tc.expectTenants {
				t.Errorf("expected %d tenants, got %v", tc.expectTenants, resp.Session.AccessToken["tenants"])
			}

			metadata, _ := resp.Session.IDToken["user_metadata"].(map[string]interface{})
			if tc.expectedClient == "" {
				if metadata != nil {
					t.Errorf("expected no user_metadata, got %v", metadata)
				}
				return
			}

			if metadata["client_id"] != tc.expectedClient {
				t.Errorf("expected client_id %q, got %v", tc.expectedClient, metadata["client_id"])
			}
		})
	}
}
