// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gatekeeper

import (
	"net/http"

	"github.com/canonical/agency-service/internal/authorization"
	httptypes "github.com/canonical/agency-service/internal/http/types"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/pkg/authentication"
)

const (
	AgencySlugHeader = "X-Agency-Slug"
	ArtistSlugHeader = "X-Artist-Slug"
)

// Middleware enforces the access verdict on every request before it reaches a handler
type Middleware struct {
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "gatekeeper.Middleware.Handler")
		defer span.End()

		path := authorization.ParsePath(r.URL.Path)
		session := authentication.SessionFromContext(ctx)

		verdict, err := m.resolver.ResolveAccess(ctx, session, path)
		if err != nil {
			m.logger.Errorf("failed to resolve access for %s: %v", path.Path, err)
			_ = httptypes.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		switch verdict.Outcome {
		case authorization.OutcomeAllow:
			// slugs only ever come from the verified path
			r.Header.Del(AgencySlugHeader)
			r.Header.Del(ArtistSlugHeader)

			if path.AgencySlug != "" {
				r.Header.Set(AgencySlugHeader, path.AgencySlug)
			}
			if path.ArtistSlug != "" {
				r.Header.Set(ArtistSlugHeader, path.ArtistSlug)
			}

			if verdict.Access != nil {
				ctx = authorization.WithAccess(ctx, path.Path, verdict.Access)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		case authorization.OutcomeNotFound:
			_ = httptypes.WriteError(w, http.StatusNotFound, "Not found")
		case authorization.OutcomeRedirectLogin:
			m.deny(w, r, path, http.StatusUnauthorized, "Authentication required", verdict.RedirectTo)
		default:
			m.deny(w, r, path, http.StatusForbidden, "Access denied", verdict.RedirectTo)
		}
	})
}

// deny redirects page requests and answers API requests with a JSON error
func (m *Middleware) deny(w http.ResponseWriter, r *http.Request, path authorization.PathContext, status int, message, redirectTo string) {
	if path.API {
		_ = httptypes.WriteRedirectError(w, status, message, redirectTo)
		return
	}

	http.Redirect(w, r, redirectTo, http.StatusFound)
}

func NewMiddleware(resolver ResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)
	m.resolver = resolver

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
