// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/client-portal/internal/identity"
	"github.com/canonical/client-portal/internal/session"
	"github.com/canonical/client-portal/internal/storage"
	"github.com/canonical/client-portal/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		authHeader         string
		session            *session.Session
		identityID         string
		setupMocks         func(*MockTokenVerifierInterface, *MockRoleReaderInterface, *MockLoggerInterface)
		expectedStatusCode int
		expectedCaps       *Capabilities
	}{
		{
			name:               "Anonymous request passes through",
			setupMocks:         func(*MockTokenVerifierInterface, *MockRoleReaderInterface, *MockLoggerInterface) {},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:       "Invalid token format is treated as anonymous",
			authHeader: "InvalidToken",
			setupMocks: func(*MockTokenVerifierInterface, *MockRoleReaderInterface, *MockLoggerInterface) {},

			expectedStatusCode: http.StatusOK,
		},
		{
			name:       "Token verification fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockRoleReaderInterface, l *MockLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return("", fmt.Errorf("invalid token"))
				l.EXPECT().Debugf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid token resolves a service client",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockRoleReaderInterface, _ *MockLoggerInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return("client-123", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedCaps:       &Capabilities{IdentityID: "client-123", Role: types.GlobalRoleAdmin, Source: SourceBearer},
		},
		{
			name:       "Session wins over bearer token",
			authHeader: "Bearer valid-token",
			session:    &session.Session{IdentityID: "user-1", Email: "a@example.com"},
			setupMocks: func(_ *MockTokenVerifierInterface, r *MockRoleReaderInterface, _ *MockLoggerInterface) {
				r.EXPECT().GetGlobalRole(gomock.Any(), "user-1").Return(types.GlobalRoleAdmin, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedCaps:       &Capabilities{IdentityID: "user-1", Email: "a@example.com", Role: types.GlobalRoleAdmin, Source: SourceSession},
		},
		{
			name:       "Identity header without recorded role defaults to user",
			identityID: "user-2",
			setupMocks: func(_ *MockTokenVerifierInterface, r *MockRoleReaderInterface, _ *MockLoggerInterface) {
				r.EXPECT().GetGlobalRole(gomock.Any(), "user-2").Return("", storage.ErrNotFound)
			},
			expectedStatusCode: http.StatusOK,
			expectedCaps:       &Capabilities{IdentityID: "user-2", Role: types.GlobalRoleUser, Source: SourceHeader},
		},
		{
			name:       "Role lookup failure defaults to user",
			identityID: "user-3",
			setupMocks: func(_ *MockTokenVerifierInterface, r *MockRoleReaderInterface, l *MockLoggerInterface) {
				r.EXPECT().GetGlobalRole(gomock.Any(), "user-3").Return("", fmt.Errorf("connection reset"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedStatusCode: http.StatusOK,
			expectedCaps:       &Capabilities{IdentityID: "user-3", Role: types.GlobalRoleUser, Source: SourceHeader},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockRoles := NewMockRoleReaderInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)

			tt.setupMocks(mockVerifier, mockRoles, mockLogger)

			middleware := NewMiddleware(mockVerifier, mockRoles, mockTracer, mockMonitor, mockLogger)

			var got *Capabilities
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			ctx := req.Context()
			if tt.session != nil {
				ctx = session.WithSession(ctx, tt.session)
			}
			if tt.identityID != "" {
				ctx = identity.WithIdentityID(ctx, tt.identityID)
			}

			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req.WithContext(ctx))

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedCaps == nil {
				if got != nil {
					t.Errorf("expected anonymous request, got %+v", got)
				}
				return
			}

			if got == nil || *got != *tt.expectedCaps {
				t.Errorf("expected capabilities %+v, got %+v", tt.expectedCaps, got)
			}
		})
	}
}

func TestMiddleware_RequireAdmin(t *testing.T) {
	tests := []struct {
		name               string
		caps               *Capabilities
		expectAuthzFailure bool
		expectedStatusCode int
	}{
		{
			name:               "Anonymous",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Regular user",
			caps:               &Capabilities{IdentityID: "user-1", Role: types.GlobalRoleUser},
			expectAuthzFailure: true,
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:               "Admin",
			caps:               &Capabilities{IdentityID: "user-2", Role: types.GlobalRoleAdmin},
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurityLogger := NewMockSecurityLoggerInterface(ctrl)

			if tt.expectAuthzFailure {
				mockLogger.EXPECT().Security().Return(mockSecurityLogger)
				mockSecurityLogger.EXPECT().AuthzFailure(tt.caps.IdentityID, "DELETE /api/v0/users/1")
			}

			middleware := NewMiddleware(NewMockTokenVerifierInterface(ctrl), NewMockRoleReaderInterface(ctrl), NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), mockLogger)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/users/1", nil)
			if tt.caps != nil {
				req = req.WithContext(WithCapabilities(req.Context(), tt.caps))
			}
			rr := httptest.NewRecorder()

			middleware.RequireAdmin(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}
		})
	}
}

func TestMiddleware_RequireAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	middleware := NewMiddleware(NewMockTokenVerifierInterface(ctrl), NewMockRoleReaderInterface(ctrl), NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

	handler := middleware.RequireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/me/companies", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/me/companies", nil)
	req = req.WithContext(WithCapabilities(req.Context(), &Capabilities{IdentityID: "user-1", Role: types.GlobalRoleUser}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "No Authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "Raw token without Bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			middleware := NewMiddleware(NewMockTokenVerifierInterface(ctrl), NewMockRoleReaderInterface(ctrl), NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}
