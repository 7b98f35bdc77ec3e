// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/client-portal/internal/logging"
)

func newStore() *CookieStore {
	return NewCookieStore("0123456789abcdef0123456789abcdef", time.Hour, false, logging.NewNoopLogger())
}

func requestWithCookies(rr *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestCookieStoreRoundTrip(t *testing.T) {
	store := newStore()

	rr := httptest.NewRecorder()
	in := &Session{IdentityID: "identity-1", Email: "a@b.com", TenantID: "tenant-1", TenantTrusted: true, Method: "token_pair"}
	require.NoError(t, store.Save(rr, httptest.NewRequest(http.MethodGet, "/", nil), in))

	out, err := store.Load(requestWithCookies(rr))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, out)
}

func TestCookieStoreMissingCookie(t *testing.T) {
	out, err := newStore().Load(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestCookieStoreForeignKey(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, newStore().Save(rr, httptest.NewRequest(http.MethodGet, "/", nil), &Session{IdentityID: "identity-1"}))

	other := NewCookieStore("another-secret-another-secret-00", time.Hour, false, logging.NewNoopLogger())
	out, err := other.Load(requestWithCookies(rr))

	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestMiddlewareInjectsSession(t *testing.T) {
	store := newStore()

	rr := httptest.NewRecorder()
	require.NoError(t, store.Save(rr, httptest.NewRequest(http.MethodGet, "/", nil), &Session{IdentityID: "identity-1"}))

	var got *Session
	handler := store.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), requestWithCookies(rr))

	require.NotNil(t, got)
	assert.Equal(t, "identity-1", got.IdentityID)
}

func TestCookieStoreExpiry(t *testing.T) {
	store := NewCookieStore("0123456789abcdef0123456789abcdef", time.Second, false, logging.NewNoopLogger())

	rr := httptest.NewRecorder()
	require.NoError(t, store.Save(rr, httptest.NewRequest(http.MethodGet, "/", nil), &Session{IdentityID: "identity-1"}))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 1, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	// a replayed cookie is rejected server side once the lifetime has passed
	time.Sleep(2100 * time.Millisecond)

	out, err := store.Load(requestWithCookies(rr))
	assert.NoError(t, err)
	assert.Nil(t, out)
}
