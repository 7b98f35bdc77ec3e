// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/client-portal/internal/storage"
	"github.com/canonical/client-portal/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(ctrl *gomock.Controller, span string) (*Service, *MockStorageInterface, *MockKratosClientInterface, *MockLoggerInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockKratos := NewMockKratosClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), span).Return(context.Background(), trace.SpanFromContext(context.Background()))

	return NewService(mockStorage, mockKratos, mockTracer, mockMonitor, mockLogger), mockStorage, mockKratos, mockLogger
}

func TestService_ListTenantsByUserID(t *testing.T) {
	userID := "user-123"
	expectedTenants := []*types.Tenant{
		{ID: "tenant-1", Company: "Acme"},
		{ID: "tenant-2", Company: "Globex"},
	}
	dbErr := errors.New("db error")

	testCases := []struct {
		name            string
		setupMocks      func(*MockStorageInterface)
		expectedTenants []*types.Tenant
		expectedErr     error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListTenantsByUserID(gomock.Any(), userID).Return(expectedTenants, nil)
			},
			expectedTenants: expectedTenants,
		},
		{
			name: "empty result",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListTenantsByUserID(gomock.Any(), userID).Return([]*types.Tenant{}, nil)
			},
			expectedTenants: []*types.Tenant{},
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListTenantsByUserID(gomock.Any(), userID).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _ := newTestService(ctrl, "tenant.Service.ListTenantsByUserID")
			tc.setupMocks(mockStorage)

			tenants, err := s.ListTenantsByUserID(context.Background(), userID)

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}

			if len(tenants) != len(tc.expectedTenants) {
				t.Errorf("expected %d tenants, got %d", len(tc.expectedTenants), len(tenants))
			}
		})
	}
}

func TestService_CreateTenant(t *testing.T) {
	testCases := []struct {
		name         string
		input        *types.Tenant
		storageErr   error
		expectedName string
		wantErr      bool
	}{
		{
			name:         "name defaults to company",
			input:        &types.Tenant{Company: "Acme"},
			expectedName: "Acme",
		},
		{
			name:         "explicit name kept",
			input:        &types.Tenant{Company: "Acme", Name: "Acme Corp"},
			expectedName: "Acme Corp",
		},
		{
			name:       "duplicate company",
			input:      &types.Tenant{Company: "Acme"},
			storageErr: storage.ErrDuplicateKey,
			wantErr:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _ := newTestService(ctrl, "tenant.Service.CreateTenant")

			mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
					if tc.storageErr != nil {
						return nil, tc.storageErr
					}
					if tenant.Name != tc.expectedName {
						t.Errorf("expected name %q, got %q", tc.expectedName, tenant.Name)
					}
					tenant.ID = "tenant-1"
					return tenant, nil
				},
			)

			created, err := s.CreateTenant(context.Background(), tc.input)

			if tc.wantErr {
				if !errors.Is(err, tc.storageErr) {
					t.Errorf("expected error %v, got %v", tc.storageErr, err)
				}
				return
			}

			if err != nil || created.ID != "tenant-1" {
				t.Errorf("unexpected result %+v, %v", created, err)
			}
		})
	}
}

func TestService_UpdateTenant(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		wantErr    error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateTenant(gomock.Any(), gomock.Any(), []string{"phone"}).Return(nil)
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", Company: "Acme", Phone: "555"}, nil)
			},
		},
		{
			name: "missing tenant",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateTenant(gomock.Any(), gomock.Any(), []string{"phone"}).Return(storage.ErrNotFound)
			},
			wantErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _ := newTestService(ctrl, "tenant.Service.UpdateTenant")
			tc.setupMocks(mockStorage)

			updated, err := s.UpdateTenant(context.Background(), &types.Tenant{ID: "tenant-1", Phone: "555"}, []string{"phone"})

			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}

			if tc.wantErr == nil && updated.Company != "Acme" {
				t.Errorf("expected the stored record, got %+v", updated)
			}
		})
	}
}

func TestService_DeleteTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _, _ := newTestService(ctrl, "tenant.Service.DeleteTenant")
	mockStorage.EXPECT().DeleteTenant(gomock.Any(), "tenant-1").Return(errors.New("db error"))

	if err := s.DeleteTenant(context.Background(), "tenant-1"); err == nil {
		t.Error("expected error")
	}
}

func TestService_ListTenantUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockKratos, mockLogger := newTestService(ctrl, "tenant.Service.ListTenantUsers")

	mockStorage.EXPECT().ListMembersByTenantID(gomock.Any(), "tenant-1").Return([]*types.Membership{
		{TenantID: "tenant-1", KratosIdentityID: "user-1", Role: types.MembershipRoleAdmin},
		{TenantID: "tenant-1", KratosIdentityID: "user-2", Role: types.MembershipRoleMember},
	}, nil)

	identity := &ory.Identity{Id: "user-1", Traits: map[string]interface{}{"email": "jane@example.com"}}
	mockKratos.EXPECT().GetIdentity(gomock.Any(), "user-1").Return(identity, nil)
	mockKratos.EXPECT().GetIdentity(gomock.Any(), "user-2").Return(nil, errors.New("not found"))
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).Times(1)

	users, err := s.ListTenantUsers(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	if users[0].Email != "jane@example.com" || users[0].Role != types.MembershipRoleAdmin {
		t.Errorf("unexpected first user %+v", users[0])
	}

	if users[1].Email != "unknown" {
		t.Errorf("expected unknown email for missing identity, got %q", users[1].Email)
	}
}
