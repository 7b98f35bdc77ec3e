// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/client-portal/internal/http/types"
	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/storage"
	"github.com/canonical/client-portal/internal/types"
	"github.com/canonical/client-portal/pkg/authentication"
)

type CompanyRequest struct {
	Company     string `json:"company" validate:"required"`
	Name        string `json:"name"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// CompanyPatchRequest only carries the fields to change.
type CompanyPatchRequest struct {
	Company     *string `json:"company"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
}

type MeResponse struct {
	User      *authentication.Capabilities `json:"user"`
	IsAdmin   bool                         `json:"is_admin"`
	Companies []*types.Tenant              `json:"companies"`
}

type API struct {
	service ServiceInterface
	guard   GuardInterface

	validate *validator.Validate

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.With(a.guard.RequireAuthenticated).Get("/api/v0/me", a.me)
	mux.With(a.guard.RequireAuthenticated).Get("/api/v0/me/companies", a.myCompanies)

	mux.Route("/api/v0/admin/companies", func(r chi.Router) {
		r.Use(a.guard.RequireAdmin)
		r.Get("/", a.listCompanies)
		r.Post("/", a.createCompany)
		r.Get("/{id}", a.getCompany)
		r.Patch("/{id}", a.updateCompany)
		r.Delete("/{id}", a.deleteCompany)
		r.Get("/{id}/users", a.listCompanyUsers)
	})
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	caps := authentication.FromContext(r.Context())

	companies, err := a.service.ListTenantsByUserID(r.Context(), caps.IdentityID)
	if err != nil {
		a.logger.Errorf("failed to list tenants: %v", err)
		a.writeError(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	a.write(w, http.StatusOK, MeResponse{User: caps, IsAdmin: caps.IsAdmin(), Companies: companies})
}

func (a *API) myCompanies(w http.ResponseWriter, r *http.Request) {
	userID, _ := authentication.GetUserID(r.Context())

	companies, err := a.service.ListTenantsByUserID(r.Context(), userID)
	if err != nil {
		a.logger.Errorf("failed to list tenants: %v", err)
		a.writeError(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	a.write(w, http.StatusOK, companies)
}

func (a *API) listCompanies(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	companies, err := a.service.ListTenants(r.Context(), page, size)
	if err != nil {
		a.logger.Errorf("failed to list all tenants: %v", err)
		a.writeError(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	a.write(w, http.StatusOK, companies)
}

func (a *API) createCompany(w http.ResponseWriter, r *http.Request) {
	req := new(CompanyRequest)
	if !a.decode(w, r, req) {
		return
	}

	ownerID, _ := authentication.GetUserID(r.Context())

	company, err := a.service.CreateTenant(r.Context(), &types.Tenant{
		Company:     strings.TrimSpace(req.Company),
		Name:        strings.TrimSpace(req.Name),
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		a.writeServiceError(w, "failed to create company", err)
		return
	}

	a.write(w, http.StatusCreated, company)
}

func (a *API) getCompany(w http.ResponseWriter, r *http.Request) {
	company, err := a.service.GetTenant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, "failed to get company", err)
		return
	}

	a.write(w, http.StatusOK, company)
}

func (a *API) updateCompany(w http.ResponseWriter, r *http.Request) {
	req := new(CompanyPatchRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tenant, paths := req.apply(chi.URLParam(r, "id"))

	if tenant.Email != "" {
		if err := a.validate.Var(tenant.Email, "email"); err != nil {
			a.writeError(w, http.StatusBadRequest, "invalid email")
			return
		}
	}

	if req.Company != nil && tenant.Company == "" {
		a.writeError(w, http.StatusBadRequest, "company cannot be empty")
		return
	}

	company, err := a.service.UpdateTenant(r.Context(), tenant, paths)
	if err != nil {
		a.writeServiceError(w, "failed to update company", err)
		return
	}

	a.write(w, http.StatusOK, company)
}

func (a *API) deleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteTenant(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, "failed to delete company", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listCompanyUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.service.ListTenantUsers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, "failed to list company users", err)
		return
	}

	a.write(w, http.StatusOK, users)
}

// apply turns the set fields into a tenant and the update paths naming them.
func (p *CompanyPatchRequest) apply(id string) (*types.Tenant, []string) {
	t := &types.Tenant{ID: id}
	paths := make([]string, 0, 5)

	if p.Company != nil {
		t.Company = strings.TrimSpace(*p.Company)
		paths = append(paths, "company")
	}
	if p.Name != nil {
		t.Name = strings.TrimSpace(*p.Name)
		paths = append(paths, "name")
	}
	if p.Email != nil {
		t.Email = strings.TrimSpace(*p.Email)
		paths = append(paths, "email")
	}
	if p.Phone != nil {
		t.Phone = *p.Phone
		paths = append(paths, "phone")
	}
	if p.Description != nil {
		t.Description = *p.Description
		paths = append(paths, "description")
	}

	return t, paths
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
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, "company not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		a.writeError(w, http.StatusConflict, "company already exists")
	default:
		a.logger.Errorf("%s: %v", message, err)
		a.writeError(w, http.StatusInternalServerError, message)
	}
}

func (a *API) write(w http.ResponseWriter, status int, data any) {
	if err := httptypes.WriteResponse(w, status, data, ""); err != nil {
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
