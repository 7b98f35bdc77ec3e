// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
)

func TestCredentialSetterSetPassword(t *testing.T) {
	tests := []struct {
		name            string
		session         *Session
		password        string
		confirm         string
		setupMocks      func(*MockProviderInterface)
		expectedField   string
		expectedErr     error
		expectedProvErr bool
	}{
		{
			name:          "too short",
			session:       testSession(MethodOneTimeToken),
			password:      "short1",
			confirm:       "short1",
			expectedField: "password",
		},
		{
			name:          "mismatch",
			session:       testSession(MethodOneTimeToken),
			password:      "longenough1",
			confirm:       "different",
			expectedField: "confirm_password",
		},
		{
			name:          "mismatch is reported before length",
			session:       testSession(MethodOneTimeToken),
			password:      "a",
			confirm:       "b",
			expectedField: "confirm_password",
		},
		{
			name:          "length counts characters not bytes",
			session:       testSession(MethodOneTimeToken),
			password:      "ééééééé",
			confirm:       "ééééééé",
			expectedField: "password",
		},
		{
			name:        "no session",
			password:    "longenough1",
			confirm:     "longenough1",
			expectedErr: ErrNoCredential,
		},
		{
			name:     "provider failure",
			session:  testSession(MethodOneTimeToken),
			password: "longenough1",
			confirm:  "longenough1",
			setupMocks: func(p *MockProviderInterface) {
				p.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), "longenough1").Return(nil, errors.New("password too common"))
			},
			expectedProvErr: true,
		},
		{
			name:     "success",
			session:  testSession(MethodOneTimeToken),
			password: "longenough1",
			confirm:  "longenough1",
			setupMocks: func(p *MockProviderInterface) {
				p.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), "longenough1").Return(&Identity{ID: "id-1", Email: "user@example.com"}, nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			if test.setupMocks != nil {
				test.setupMocks(mockProvider)
			}

			c := NewCredentialSetter(mockProvider, spanTracer(ctrl), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			identity, err := c.SetPassword(context.TODO(), test.session, test.password, test.confirm)

			switch {
			case test.expectedField != "":
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if verr.Field != test.expectedField {
					t.Errorf("expected field %s, got %s", test.expectedField, verr.Field)
				}
			case test.expectedErr != nil:
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
			case test.expectedProvErr:
				var perr *ProviderError
				if !errors.As(err, &perr) {
					t.Fatalf("expected ProviderError, got %v", err)
				}
				if perr.Err.Error() != "password too common" {
					t.Errorf("expected provider message to be kept, got %q", perr.Err.Error())
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if identity == nil || identity.ID != "id-1" {
					t.Errorf("unexpected identity %+v", identity)
				}
				return
			}

			if identity != nil {
				t.Errorf("expected no identity, got %+v", identity)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345678", "12345678"); err != nil {
		t.Errorf("8 characters should be accepted, got %v", err)
	}

	if err := ValidatePassword("1234567", "1234567"); err == nil {
		t.Error("7 characters should be rejected")
	}
}
