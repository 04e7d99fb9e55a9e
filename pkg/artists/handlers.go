// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package artists

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
	mux.Get("/api/agencies/{agencySlug}/artists", a.listArtists)
	mux.Post("/api/agencies/{agencySlug}/artists", a.createArtist)
	mux.Get("/api/agencies/{agencySlug}/artists/{artistSlug}/metrics", a.artistMetrics)
}

// access returns what the gatekeeper resolved for this very path
func (a *API) access(w http.ResponseWriter, r *http.Request) (*authorization.Access, bool) {
	access, ok := authorization.AccessForPath(r.Context(), authorization.ParsePath(r.URL.Path).Path)
	if !ok || access.Agency == nil || access.User == nil {
		_ = types.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	return access, true
}

func (a *API) listArtists(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "artists.API.listArtists")
	defer span.End()

	access, ok := a.access(w, r)
	if !ok {
		return
	}

	artists, err := a.service.ListArtists(ctx, access)
	if err != nil {
		a.logger.Errorf("failed to list artists: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	_ = types.WriteData(w, http.StatusOK, "list of artists", artists)
}

func (a *API) createArtist(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "artists.API.createArtist")
	defer span.End()

	access, ok := a.access(w, r)
	if !ok {
		return
	}

	input := new(ArtistInput)
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

	artist, err := a.service.CreateArtist(ctx, access, input)

	switch {
	case errors.Is(err, ErrForbidden):
		_ = types.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidSlug):
		_ = types.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrLimitExceeded):
		_ = types.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrDuplicate):
		_ = types.WriteError(w, http.StatusConflict, err.Error())
	case err != nil:
		a.logger.Errorf("failed to create artist: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		_ = types.WriteData(w, http.StatusCreated, "artist created", artist)
	}
}

func (a *API) artistMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "artists.API.artistMetrics")
	defer span.End()

	access, ok := a.access(w, r)
	if !ok {
		return
	}

	metrics, err := a.service.ArtistMetrics(ctx, access)

	switch {
	case errors.Is(err, ErrNoTenant):
		_ = types.WriteError(w, http.StatusNotFound, "not found")
	case err != nil:
		a.logger.Errorf("failed to get artist metrics: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		_ = types.WriteData(w, http.StatusOK, "artist metrics", metrics)
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
