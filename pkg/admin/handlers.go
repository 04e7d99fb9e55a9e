// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
)

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/admin", a.overview)
	mux.Get("/api/admin/agencies", a.listAgencies)
	mux.Post("/api/admin/agencies", a.createAgency)
}

func (a *API) overview(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.overview")
	defer span.End()

	access, ok := authorization.AccessForPath(ctx, authorization.ParsePath(r.URL.Path).Path)
	if !ok {
		http.Redirect(w, r, authorization.LoginPath, http.StatusFound)
		return
	}

	agencies, err := a.service.ListAgencies(ctx, access)

	switch {
	case errors.Is(err, ErrForbidden):
		http.Redirect(w, r, authorization.UnauthorizedPath, http.StatusFound)
	case err != nil:
		a.logger.Errorf("failed to build admin overview: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		_ = types.WriteData(w, http.StatusOK, "admin overview", &Overview{Agencies: agencies})
	}
}

func (a *API) listAgencies(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.listAgencies")
	defer span.End()

	access, ok := authorization.AccessForPath(ctx, authorization.ParsePath(r.URL.Path).Path)
	if !ok {
		_ = types.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	agencies, err := a.service.ListAgencies(ctx, access)

	switch {
	case errors.Is(err, ErrForbidden):
		_ = types.WriteError(w, http.StatusForbidden, err.Error())
	case err != nil:
		a.logger.Errorf("failed to list agencies: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		_ = types.WriteData(w, http.StatusOK, "list of agencies", agencies)
	}
}

func (a *API) createAgency(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.createAgency")
	defer span.End()

	access, ok := authorization.AccessForPath(ctx, authorization.ParsePath(r.URL.Path).Path)
	if !ok {
		_ = types.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	input := new(AgencyInput)
	if err := json.NewDecoder(r.Body).Decode(input); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			_ = types.WriteError(w, http.StatusBadRequest, "invalid field "+verrs[0].Field()+": "+verrs[0].Tag())
			return
		}
		_ = types.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	agency, err := a.service.CreateAgency(ctx, access, input)

	switch {
	case errors.Is(err, ErrForbidden):
		_ = types.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidSlug):
		_ = types.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicate):
		_ = types.WriteError(w, http.StatusConflict, err.Error())
	case err != nil:
		a.logger.Errorf("failed to create agency: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		_ = types.WriteData(w, http.StatusCreated, "agency created", agency)
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.service = service
	a.validator = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
