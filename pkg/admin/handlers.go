// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/client-portal/internal/http/types"
	"github.com/canonical/client-portal/internal/kratos"
	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/storage"
	"github.com/canonical/client-portal/pkg/authentication"
)

type InviteRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	Company  string `json:"company" validate:"required_without=ClientID"`
	ClientID string `json:"client_id" validate:"omitempty,uuid"`
}

type MembershipRequest struct {
	ClientID string `json:"client_id" validate:"required,uuid"`
	Role     string `json:"role" validate:"required,oneof=admin member viewer"`
}

type RoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

type MembershipResponse struct {
	Status string `json:"status"`
}

type API struct {
	service ServiceInterface
	guard   GuardInterface

	validate *validator.Validate

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/api/v0/admin", func(r chi.Router) {
		r.Use(a.guard.RequireAdmin)
		r.Post("/invitations", a.invite)
		r.Get("/invitations", a.listInvitations)
		r.Get("/users", a.listUsers)
		r.Delete("/users/{id}", a.deleteUser)
		r.Put("/users/{id}/role", a.setRole)
		r.Put("/users/{id}/companies", a.addToCompany)
	})
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	req := new(InviteRequest)
	if !a.decode(w, r, req) {
		return
	}

	actorID, _ := authentication.GetUserID(r.Context())

	result, err := a.service.InviteUser(r.Context(), actorID, &Invitation{
		Email:    req.Email,
		Name:     req.Name,
		Company:  req.Company,
		TenantID: req.ClientID,
	})
	if err != nil {
		a.writeServiceError(w, "failed to invite user", err)
		return
	}

	a.write(w, http.StatusCreated, result, "invitation sent")
}

func (a *API) listInvitations(w http.ResponseWriter, r *http.Request) {
	invitations, err := a.service.ListInvitations(r.Context(), r.URL.Query().Get("client_id"))
	if err != nil {
		a.writeServiceError(w, "failed to list invitations", err)
		return
	}

	a.write(w, http.StatusOK, invitations, "")
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.service.ListUsers(r.Context())
	if err != nil {
		a.writeServiceError(w, "failed to list users", err)
		return
	}

	a.write(w, http.StatusOK, users, "")
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, _ := authentication.GetUserID(r.Context())

	if err := a.service.DeleteUser(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, "failed to delete user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) setRole(w http.ResponseWriter, r *http.Request) {
	req := new(RoleRequest)
	if !a.decode(w, r, req) {
		return
	}

	actorID, _ := authentication.GetUserID(r.Context())

	if err := a.service.SetUserRole(r.Context(), actorID, chi.URLParam(r, "id"), req.Role); err != nil {
		a.writeServiceError(w, "failed to set role", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) addToCompany(w http.ResponseWriter, r *http.Request) {
	req := new(MembershipRequest)
	if !a.decode(w, r, req) {
		return
	}

	actorID, _ := authentication.GetUserID(r.Context())

	created, err := a.service.AddUserToCompany(r.Context(), actorID, chi.URLParam(r, "id"), req.ClientID, req.Role)
	if err != nil {
		a.writeServiceError(w, "failed to add user to company", err)
		return
	}

	if created {
		a.write(w, http.StatusCreated, MembershipResponse{Status: "created"}, "")
		return
	}

	a.write(w, http.StatusOK, MembershipResponse{Status: "updated"}, "")
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

func (a *API) writeServiceError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, ErrInvalidRole), errors.Is(err, ErrCompanyRequired), errors.Is(err, ErrSelfDeletion):
		a.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, kratos.ErrIdentityNotFound):
		a.writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		a.writeError(w, http.StatusNotFound, "unknown company or user")
	case errors.Is(err, storage.ErrDuplicateKey):
		a.writeError(w, http.StatusConflict, "already exists")
	default:
		a.logger.Errorf("%s: %v", message, err)
		a.writeError(w, http.StatusInternalServerError, message)
	}
}

func (a *API) write(w http.ResponseWriter, status int, data any, message string) {
	if err := httptypes.WriteResponse(w, status, data, message); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	if err := httptypes.WriteError(w, status, message); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewAPI(service ServiceInterface, guard GuardInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.guard = guard
	a.validate = validator.New(validator.WithRequiredStructEnabled())
	a.logger = logger

	return a
}
