// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

const (
	AuthCodeErrorPath = "/auth/auth-code-error"

	stateCookieSuffix = "_state"
	nextCookieSuffix  = "_next"
	flowCookieTTL     = 10 * time.Minute
)

// CookieConfig controls the session cookie issued after an OIDC login
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type API struct {
	baseURL     string
	cookie      CookieConfig
	oauth2      OAuth2ConfigInterface
	verifier    TokenVerifierInterface
	kratos      KratosClientInterface
	landing     LandingInterface
	provisioner DemoProvisionerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/auth/login", a.handleLogin)
	mux.Get("/auth/callback", a.handleCallback)
	mux.Get("/auth/logout", a.handleLogout)
	mux.Post("/auth/logout", a.handleLogout)
	mux.Get(AuthCodeErrorPath, a.handleAuthCodeError)
}

// WithOIDC enables the authorization code flow
func (a *API) WithOIDC(config OAuth2ConfigInterface, verifier TokenVerifierInterface) *API {
	a.oauth2 = config
	a.verifier = verifier
	return a
}

// WithKratos delegates login and logout to the Kratos browser flows
func (a *API) WithKratos(client KratosClientInterface) *API {
	a.kratos = client
	return a
}

// WithDemoProvisioning creates demo users for first-time logins
func (a *API) WithDemoProvisioning(p DemoProvisionerInterface) *API {
	a.provisioner = p
	return a
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.handleLogin")
	defer span.End()

	next := r.URL.Query().Get("next")

	if session := SessionFromContext(ctx); session != nil {
		if err := a.provision(ctx, session); err != nil {
			http.Redirect(w, r, AuthCodeErrorPath, http.StatusFound)
			return
		}

		a.redirectToLanding(ctx, w, r, session, next)
		return
	}

	switch {
	case a.oauth2 != nil:
		state := uuid.NewString()
		a.setFlowCookie(w, a.cookie.Name+stateCookieSuffix, state)
		a.setFlowCookie(w, a.cookie.Name+nextCookieSuffix, next)

		http.Redirect(w, r, a.oauth2.AuthCodeURL(state), http.StatusFound)
	case a.kratos != nil:
		returnTo := a.baseURL + "/auth/callback"
		if next != "" {
			returnTo += "?next=" + url.QueryEscape(next)
		}

		http.Redirect(w, r, a.kratos.LoginURL(returnTo), http.StatusFound)
	default:
		// the upstream proxy owns the login flow
		_ = httptypes.WriteData(w, http.StatusOK, "Login is handled by the identity proxy", map[string]string{"next": next})
	}
}

func (a *API) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.handleCallback")
	defer span.End()

	next := r.URL.Query().Get("next")
	session := SessionFromContext(ctx)

	if a.oauth2 != nil {
		var err error

		session, next, err = a.exchange(ctx, w, r)
		if err != nil {
			a.logger.Security().AuthnFailure("", err.Error())
			http.Redirect(w, r, AuthCodeErrorPath, http.StatusFound)
			return
		}
	}

	if session == nil {
		a.logger.Security().AuthnFailure("", "no session after login")
		http.Redirect(w, r, AuthCodeErrorPath, http.StatusFound)
		return
	}

	if err := a.provision(ctx, session); err != nil {
		http.Redirect(w, r, AuthCodeErrorPath, http.StatusFound)
		return
	}

	a.logger.Security().AuthnLoginSuccess(session.UserID)
	a.redirectToLanding(ctx, w, r, session, next)
}

// provision creates the demo user behind session when demo provisioning is enabled,
// it runs before any landing path is computed
func (a *API) provision(ctx context.Context, session *types.Session) error {
	if a.provisioner == nil {
		return nil
	}

	if _, err := a.provisioner.EnsureDemoUser(ctx, session); err != nil {
		a.logger.Errorf("failed to provision demo user %s: %v", session.UserID, err)
		return err
	}

	return nil
}

// exchange completes the authorization code flow and issues the session cookie
func (a *API) exchange(ctx context.Context, w http.ResponseWriter, r *http.Request) (*types.Session, string, error) {
	q := r.URL.Query()

	if e := q.Get("error"); e != "" {
		return nil, "", &flowError{reason: "provider returned " + e}
	}

	state, err := r.Cookie(a.cookie.Name + stateCookieSuffix)
	if err != nil || state.Value == "" || state.Value != q.Get("state") {
		return nil, "", &flowError{reason: "state mismatch"}
	}

	next := ""
	if c, err := r.Cookie(a.cookie.Name + nextCookieSuffix); err == nil {
		next = c.Value
	}

	a.clearCookie(w, a.cookie.Name+stateCookieSuffix)
	a.clearCookie(w, a.cookie.Name+nextCookieSuffix)

	token, err := a.oauth2.Exchange(ctx, q.Get("code"))
	if err != nil {
		return nil, "", err
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, "", &flowError{reason: "token response has no id_token"}
	}

	session, err := a.verifier.VerifyToken(ctx, rawIDToken)
	if err != nil {
		return nil, "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     a.cookie.Name,
		Value:    rawIDToken,
		Path:     "/",
		MaxAge:   int(a.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   a.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return session, next, nil
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.handleLogout")
	defer span.End()

	a.clearCookie(w, a.cookie.Name)

	if a.kratos != nil {
		if cookie := r.Header.Get("Cookie"); cookie != "" {
			logoutURL, err := a.kratos.LogoutURL(ctx, cookie)
			if err == nil && logoutURL != "" {
				http.Redirect(w, r, logoutURL, http.StatusFound)
				return
			}

			a.logger.Debugf("failed to create kratos logout flow: %v", err)
		}
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (a *API) handleAuthCodeError(w http.ResponseWriter, r *http.Request) {
	_ = httptypes.WriteError(w, http.StatusUnauthorized, "Authentication failed, please sign in again")
}

func (a *API) redirectToLanding(ctx context.Context, w http.ResponseWriter, r *http.Request, session *types.Session, next string) {
	target, err := a.landing.LandingPath(ctx, session, next)
	if err != nil {
		a.logger.Errorf("failed to compute landing path: %v", err)
		target = "/"
	}

	http.Redirect(w, r, target, http.StatusFound)
}

func (a *API) setFlowCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/auth",
		MaxAge:   int(flowCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   a.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *API) clearCookie(w http.ResponseWriter, name string) {
	path := "/"
	if name != a.cookie.Name {
		path = "/auth"
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cookie.Secure,
	})
}

type flowError struct {
	reason string
}

func (e *flowError) Error() string {
	return "login flow failed: " + e.reason
}

func NewAPI(
	baseURL string,
	cookie CookieConfig,
	landing LandingInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.baseURL = baseURL
	a.cookie = cookie
	a.landing = landing

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
