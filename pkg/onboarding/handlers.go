// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/client-portal/internal/http/types"
	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/session"
	"github.com/canonical/client-portal/internal/tracing"
)

type SessionLinkRequest struct {
	URL string `json:"url" validate:"required"`
}

type PasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	ClientID        string `json:"client_id" validate:"omitempty,uuid"`
}

type ResendRequest struct {
	Email    string `json:"email" validate:"required,email"`
	ClientID string `json:"client_id" validate:"omitempty,uuid"`
}

// FlowResponse is the json view of a Flow.
type FlowResponse struct {
	State     State       `json:"state"`
	Reason    Reason      `json:"reason,omitempty"`
	Email     string      `json:"email,omitempty"`
	ClientID  string      `json:"client_id,omitempty"`
	CanResend bool        `json:"can_resend"`
	Field     string      `json:"field,omitempty"`
	Next      string      `json:"next"`
	Link      *LinkResult `json:"link,omitempty"`
}

// resendTimeout bounds a background resend once the request has been answered.
const resendTimeout = 30 * time.Second

type API struct {
	router   RouterInterface
	sessions session.StoreInterface

	// resends in flight, answered before the mail goes out
	resends sync.WaitGroup

	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/auth/callback", a.callback)
	mux.Get("/api/v0/auth/setup", a.setup)
	mux.Post("/api/v0/auth/session", a.sessionFromLink)
	mux.Post("/api/v0/auth/password", a.password)
	mux.Post("/api/v0/auth/resend", a.resend)
	mux.Post("/api/v0/auth/logout", a.logout)
}

func (a *API) callback(w http.ResponseWriter, r *http.Request) {
	f := a.router.Begin(r.Context(), r.URL.Query(), "")
	a.persist(w, r, f)

	http.Redirect(w, r, f.NextPath(), http.StatusSeeOther)
}

func (a *API) setup(w http.ResponseWriter, r *http.Request) {
	f := a.router.Begin(r.Context(), r.URL.Query(), "")
	a.persist(w, r, f)
	a.writeFlow(w, f)
}

func (a *API) sessionFromLink(w http.ResponseWriter, r *http.Request) {
	req := new(SessionLinkRequest)
	if !a.decode(w, r, req) {
		return
	}

	f := a.router.BeginIntent(r.Context(), ParseURL(req.URL))
	a.persist(w, r, f)
	a.writeFlow(w, f)
}

func (a *API) password(w http.ResponseWriter, r *http.Request) {
	req := new(PasswordRequest)
	if !a.decode(w, r, req) {
		return
	}

	f := a.router.SubmitPassword(r.Context(), req.ClientID, req.Password, req.ConfirmPassword)
	a.persist(w, r, f)
	a.writeFlow(w, f)
}

func (a *API) resend(w http.ResponseWriter, r *http.Request) {
	req := new(ResendRequest)
	if !a.decode(w, r, req) {
		return
	}

	// the answer must not depend on whether the address is registered, so
	// the lookup and the send happen after it
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), resendTimeout)

	a.resends.Add(1)
	go func() {
		defer a.resends.Done()
		defer cancel()

		a.router.Resend(ctx, req.Email, req.ClientID)
	}()

	a.write(w, http.StatusAccepted, nil, "if the address is registered, a new link is on its way")
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Clear(w, r); err != nil {
		a.logger.Errorf("failed to clear session: %v", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.logger.Debugf("invalid request body: %v", err)
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

// persist writes the established session to the browser. The pending tenant
// is dropped once the flow is done.
func (a *API) persist(w http.ResponseWriter, r *http.Request, f *Flow) {
	if f.Session == nil || f.Session.Identity == nil || f.State == StateFailed {
		return
	}

	s := &session.Session{
		IdentityID:    f.Session.Identity.ID,
		Email:         f.Session.Identity.Email,
		TenantID:      f.TenantID,
		TenantTrusted: f.TenantTrusted,
		Method:        f.Session.Method,
	}

	if f.State == StateDone {
		s.TenantID = ""
		s.TenantTrusted = false
	}

	if err := a.sessions.Save(w, r, s); err != nil {
		a.logger.Errorf("failed to save session: %v", err)
	}
}

func (a *API) writeFlow(w http.ResponseWriter, f *Flow) {
	resp := FlowResponse{
		State:     f.State,
		Reason:    f.Reason,
		Email:     f.Email,
		ClientID:  f.TenantID,
		CanResend: f.CanResend,
		Next:      f.NextPath(),
		Link:      f.Link,
	}

	status := http.StatusOK
	switch {
	case f.Validation != nil:
		status = http.StatusBadRequest
		resp.Field = f.Validation.Field
	case f.State == StateFailed && f.Reason == ReasonNoCredential:
		status = http.StatusUnauthorized
	case f.State == StateFailed:
		status = http.StatusBadGateway
	}

	a.write(w, status, resp, f.Message())
}

func (a *API) write(w http.ResponseWriter, status int, data any, message string) {
	if err := httptypes.WriteResponse(w, status, data, message); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	if err := httptypes.WriteError(w, status, message); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

// Wait blocks until background resends have finished.
func (a *API) Wait() {
	a.resends.Wait()
}

func NewAPI(router RouterInterface, sessions session.StoreInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.router = router
	a.sessions = sessions
	a.validate = validator.New(validator.WithRequiredStructEnabled())
	a.tracer = tracer
	a.logger = logger

	return a
}
