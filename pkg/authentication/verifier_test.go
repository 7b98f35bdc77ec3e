// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
)

const testIssuer = "https://auth.example.com"

func signedToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()

	if _, ok := claims["iss"]; !ok {
		claims["iss"] = testIssuer
	}
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	return raw
}

func testVerifier(t *testing.T, key *rsa.PrivateKey, subjects []string, scope string) *JWTVerifier {
	t.Helper()

	keySet := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}
	idTokenVerifier := oidc.NewVerifier(testIssuer, keySet, &oidc.Config{SkipClientIDCheck: true})

	return NewJWTVerifier(idTokenVerifier, subjects, scope, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	tests := []struct {
		name     string
		subjects []string
		scope    string
		claims   jwt.MapClaims
		wantSub  string
		wantErr  bool
	}{
		{
			name:     "Allowed subject",
			subjects: []string{"service-a"},
			claims:   jwt.MapClaims{"sub": "service-a"},
			wantSub:  "service-a",
		},
		{
			name:    "Required scope in space separated claim",
			scope:   "portal:admin",
			claims:  jwt.MapClaims{"sub": "service-b", "scope": "openid portal:admin"},
			wantSub: "service-b",
		},
		{
			name:    "Required scope in scp array",
			scope:   "portal:admin",
			claims:  jwt.MapClaims{"sub": "service-c", "scp": []string{"portal:admin"}},
			wantSub: "service-c",
		},
		{
			name:     "Subject not allowed and scope missing",
			subjects: []string{"service-a"},
			scope:    "portal:admin",
			claims:   jwt.MapClaims{"sub": "service-d", "scope": "openid"},
			wantErr:  true,
		},
		{
			name:    "No policy configured",
			claims:  jwt.MapClaims{"sub": "service-a"},
			wantErr: true,
		},
		{
			name:     "Expired token",
			subjects: []string{"service-a"},
			claims:   jwt.MapClaims{"sub": "service-a", "exp": time.Now().Add(-time.Hour).Unix()},
			wantErr:  true,
		},
		{
			name:     "Foreign issuer",
			subjects: []string{"service-a"},
			claims:   jwt.MapClaims{"sub": "service-a", "iss": "https://elsewhere.example.com"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVerifier(t, key, tt.subjects, tt.scope)

			sub, err := v.VerifyToken(context.TODO(), signedToken(t, key, tt.claims))

			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}

			if sub != tt.wantSub {
				t.Errorf("expected subject %q, got %q", tt.wantSub, sub)
			}
		})
	}
}

func TestJWTVerifier_VerifySignature(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	// no subject or scope policy, signature alone decides
	v := testVerifier(t, key, nil, "")

	ok, err := v.VerifySignature(context.TODO(), signedToken(t, key, jwt.MapClaims{"sub": "user-1"}))
	if !ok || err != nil {
		t.Errorf("expected valid signature, got %v, %v", ok, err)
	}

	ok, err = v.VerifySignature(context.TODO(), signedToken(t, other, jwt.MapClaims{"sub": "user-1"}))
	if ok || err == nil {
		t.Errorf("expected invalid signature, got %v, %v", ok, err)
	}

	ok, _ = v.VerifySignature(context.TODO(), "not-a-jwt")
	if ok {
		t.Error("expected malformed token to fail")
	}
}

func TestNoopVerifier(t *testing.T) {
	v := NewNoopVerifier()

	if _, err := v.VerifyToken(context.TODO(), "anything"); err != ErrNoIssuer {
		t.Errorf("expected ErrNoIssuer, got %v", err)
	}

	if ok, err := v.VerifySignature(context.TODO(), "anything"); ok || err != nil {
		t.Errorf("expected no opinion, got %v, %v", ok, err)
	}
}

func TestNewJWTAuthenticator_NoIssuer(t *testing.T) {
	_, err := NewJWTAuthenticator(context.TODO(), "", "", nil, "", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	if !errors.Is(err, ErrNoIssuer) {
		t.Errorf("expected ErrNoIssuer, got %v", err)
	}
}

func TestJWTVerifier_Authorize(t *testing.T) {
	tests := []struct {
		name     string
		subjects []string
		scope    string
		claims   serviceClaims
		wantErr  error
	}{
		{"no policy", nil, "", serviceClaims{Subject: "a"}, ErrNoAccessPolicy},
		{"subject allowed", []string{"a"}, "", serviceClaims{Subject: "a"}, nil},
		{"scope present", nil, "portal:admin", serviceClaims{Subject: "b", Scope: "openid portal:admin"}, nil},
		{"scope prefix is not the scope", nil, "portal:admin", serviceClaims{Subject: "b", Scope: "portal:admins"}, ErrNotAllowed},
		{"neither", []string{"a"}, "portal:admin", serviceClaims{Subject: "b"}, ErrNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewJWTVerifier(nil, tt.subjects, tt.scope, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			if err := v.authorize(&tt.claims); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
