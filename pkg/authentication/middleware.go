// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
)

type Middleware struct {
	provider SessionProviderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Sessions resolves the session once per request and stores it in the context.
// It never rejects, access decisions are left to the gatekeeper.
func (m *Middleware) Sessions() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Sessions")
			defer span.End()

			session, err := m.provider.Session(ctx, r)
			if err != nil {
				m.logger.Debugf("session resolution failed: %v", err)
				m.logger.Security().AuthnFailure("", err.Error())
				session = nil
			}

			if session != nil {
				ctx = WithSession(ctx, session)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewMiddleware(provider SessionProviderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		provider: provider,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
