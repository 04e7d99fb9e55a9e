// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
)

const apiKeyHeader = "Authorization"

type API struct {
	service ServiceInterface
	apiKey  string
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, apiKey string, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		apiKey:  apiKey,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/webhooks/registration", a.registration)
	mux.Post("/webhooks/token", a.tokenHook)
}

// authorized checks the shared key the identity services are configured with,
// without a configured key every call is rejected
func (a *API) authorized(w http.ResponseWriter, r *http.Request) bool {
	if a.apiKey != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(apiKeyHeader)), []byte(a.apiKey)) == 1 {
		return true
	}

	a.logger.Security().AuthzFailure("", "webhooks")
	_ = types.WriteError(w, http.StatusUnauthorized, "unauthorized")
	return false
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	if !a.authorized(w, r) {
		return
	}

	identity := new(KratosIdentity)
	if err := json.NewDecoder(r.Body).Decode(identity); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.service.HandleRegistration(r.Context(), identity); err != nil {
		a.logger.Errorf("failed to handle registration: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	if !a.authorized(w, r) {
		return
	}

	req := new(oauth2.TokenHookRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), req)
	if err != nil {
		a.logger.Errorf("failed to handle token hook: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	_ = types.WriteJSON(w, http.StatusOK, resp)
}
