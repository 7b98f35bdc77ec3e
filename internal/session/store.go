// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/canonical/client-portal/internal/logging"
)

const (
	cookieName = "portal_session"

	keyIdentityID    = "identity_id"
	keyEmail         = "email"
	keyTenantID      = "tenant_id"
	keyTenantTrusted = "tenant_trusted"
	keyMethod        = "method"
)

var _ StoreInterface = (*CookieStore)(nil)

// CookieStore keeps the session in an HMAC-signed cookie.
type CookieStore struct {
	store *sessions.CookieStore

	logger logging.LoggerInterface
}

func (c *CookieStore) Load(r *http.Request) (*Session, error) {
	sess, err := c.store.Get(r, cookieName)
	if err != nil {
		// tampered or rotated-key cookies are treated as absent
		c.logger.Debugf("discarding undecodable session cookie: %v", err)
		return nil, nil
	}

	if sess.IsNew {
		return nil, nil
	}

	id, _ := sess.Values[keyIdentityID].(string)
	if id == "" {
		return nil, nil
	}

	s := &Session{IdentityID: id}
	s.Email, _ = sess.Values[keyEmail].(string)
	s.TenantID, _ = sess.Values[keyTenantID].(string)
	s.TenantTrusted, _ = sess.Values[keyTenantTrusted].(bool)
	s.Method, _ = sess.Values[keyMethod].(string)

	return s, nil
}

func (c *CookieStore) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	sess, _ := c.store.Get(r, cookieName)

	sess.Values[keyIdentityID] = s.IdentityID
	sess.Values[keyEmail] = s.Email
	sess.Values[keyTenantID] = s.TenantID
	sess.Values[keyTenantTrusted] = s.TenantTrusted
	sess.Values[keyMethod] = s.Method

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (c *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := c.store.Get(r, cookieName)
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// Middleware loads the cookie session, if any, into the request context.
func (c *CookieStore) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := c.Load(r)
		if err != nil || s == nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

func NewCookieStore(secret string, maxAge time.Duration, secure bool, logger logging.LoggerInterface) *CookieStore {
	c := new(CookieStore)

	c.store = sessions.NewCookieStore([]byte(secret))
	// MaxAge bounds the signed timestamp check as well as the cookie attribute
	c.store.MaxAge(int(maxAge.Seconds()))
	c.store.Options.Path = "/"
	c.store.Options.HttpOnly = true
	c.store.Options.Secure = secure
	c.store.Options.SameSite = http.SameSiteLaxMode
	c.logger = logger

	return c
}
