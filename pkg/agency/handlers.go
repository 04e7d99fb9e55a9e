// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

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
	"github.com/canonical/agency-service/pkg/authentication"
)

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/agency/{agencySlug}", a.agencyDashboard)
	mux.Get("/agency/{agencySlug}/artist/{artistSlug}", a.artistDashboard)
	mux.Get("/api/agencies/{agencySlug}/members", a.listMembers)
	mux.Post("/api/agencies/{agencySlug}/members", a.addMember)
	mux.Get(authorization.UnauthorizedPath, a.unauthorized)
}

// deny answers a verdict the gatekeeper would have answered itself
func (a *API) deny(w http.ResponseWriter, r *http.Request, verdict *authorization.Verdict) {
	switch verdict.Outcome {
	case authorization.OutcomeNotFound:
		_ = types.WriteError(w, http.StatusNotFound, "not found")
	default:
		http.Redirect(w, r, verdict.RedirectTo, http.StatusFound)
	}
}

func (a *API) agencyDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.agencyDashboard")
	defer span.End()

	dashboard, verdict, err := a.service.AgencyDashboard(ctx, authentication.SessionFromContext(ctx), chi.URLParam(r, "agencySlug"))
	if err != nil {
		a.logger.Errorf("failed to build agency dashboard: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if !verdict.Allowed() {
		a.deny(w, r, verdict)
		return
	}

	_ = types.WriteData(w, http.StatusOK, "agency dashboard", dashboard)
}

func (a *API) artistDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.artistDashboard")
	defer span.End()

	dashboard, verdict, err := a.service.ArtistDashboard(
		ctx,
		authentication.SessionFromContext(ctx),
		chi.URLParam(r, "agencySlug"),
		chi.URLParam(r, "artistSlug"),
	)

	if err != nil {
		a.logger.Errorf("failed to build artist dashboard: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if !verdict.Allowed() {
		a.deny(w, r, verdict)
		return
	}

	_ = types.WriteData(w, http.StatusOK, "artist dashboard", dashboard)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.listMembers")
	defer span.End()

	access, ok := authorization.AccessForPath(ctx, authorization.ParsePath(r.URL.Path).Path)
	if !ok {
		_ = types.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	users, err := a.service.ListMembers(ctx, access)

	switch {
	case errors.Is(err, ErrForbidden):
		_ = types.WriteError(w, http.StatusForbidden, err.Error())
	case err != nil:
		a.logger.Errorf("failed to list members: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		_ = types.WriteData(w, http.StatusOK, "list of members", users)
	}
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agency.API.addMember")
	defer span.End()

	access, ok := authorization.AccessForPath(ctx, authorization.ParsePath(r.URL.Path).Path)
	if !ok {
		_ = types.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	input := new(MemberInput)
	if err := json.NewDecoder(r.Body).Decode(input); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.Struct(input); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := a.service.AddMember(ctx, access, input)

	switch {
	case errors.Is(err, ErrForbidden):
		_ = types.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidRole), errors.Is(err, ErrInvalidArtist):
		_ = types.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrMemberExists):
		_ = types.WriteError(w, http.StatusConflict, err.Error())
	case err != nil:
		a.logger.Errorf("failed to add member: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		_ = types.WriteData(w, http.StatusCreated, "member added", user)
	}
}

func (a *API) unauthorized(w http.ResponseWriter, r *http.Request) {
	_ = types.WriteRedirectError(w, http.StatusForbidden, "you do not have access to this page", authorization.LoginPath)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}

	return "invalid field " + verrs[0].Field() + ": " + verrs[0].Tag()
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
