// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func tokenHookResponse(tenants []string, clientID string) *TokenHookResponse {
	resp := new(TokenHookResponse)
	resp.Session.IDToken = map[string]any{
		"tenants":       tenants,
		"user_metadata": map[string]any{"client_id": clientID},
	}
	resp.Session.AccessToken = resp.Session.IDToken
	return resp
}

func post(t *testing.T, svc ServiceInterface, logger *MockLoggerInterface, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	mux := chi.NewMux()
	NewAPI(svc, logger).RegisterEndpoints(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

	return rr
}

func hookRequest(t *testing.T, subject string) string {
	t.Helper()

	b, err := json.Marshal(&oauth2.TokenHookRequest{Session: oauth2.NewSession(subject)})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	return string(b)
}

func TestAPI_TokenHook(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantCode   int
		check      func(*testing.T, *TokenHookResponse)
	}{
		{
			name: "success",
			body: hookRequest(t, "user-123"),
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(tokenHookResponse([]string{"tenant-1", "tenant-2"}, "tenant-1"), nil)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, result *TokenHookResponse) {
				if result.Session.IDToken["tenants"] == nil {
					t.Error("expected tenants in ID token")
				}
				metadata, ok := result.Session.AccessToken["user_metadata"].(map[string]any)
				if !ok || metadata["client_id"] != "tenant-1" {
					t.Errorf("expected client_id in access token, got %v", result.Session.AccessToken["user_metadata"])
				}
			},
		},
		{
			name: "invalid request body",
			body: "not-json",
			setupMocks: func(_ *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: hookRequest(t, "user-123"),
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockService, mockLogger)

			rr := post(t, mockService, mockLogger, "/api/v0/webhooks/token", tt.body)

			if rr.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d: %s", tt.wantCode, rr.Code, rr.Body.String())
			}

			if tt.check == nil {
				return
			}

			result := new(TokenHookResponse)
			if err := json.NewDecoder(rr.Body).Decode(result); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			tt.check(t, result)
		})
	}
}

func TestAPI_Registration(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantCode   int
	}{
		{
			name: "success",
			body: `{"id":"identity-123","traits":{"email":"user@example.com"},"metadata_public":{"client_id":"tenant-1"}}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, identity *KratosIdentity) error {
						if identity.ID != "identity-123" || identity.Traits.Email != "user@example.com" || identity.MetadataPublic.ClientID != "tenant-1" {
							t.Errorf("unexpected identity %+v", identity)
						}
						return nil
					},
				)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "invalid request body",
			body: "not-json",
			setupMocks: func(_ *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"id":"identity-456","traits":{"email":"error@example.com"}}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockService, mockLogger)

			if rr := post(t, mockService, mockLogger, "/api/v0/webhooks/registration", tt.body); rr.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d: %s", tt.wantCode, rr.Code, rr.Body.String())
			}
		})
	}
}
