// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"
	"strings"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
)

const (
	// HeaderName is the header used by the upstream proxy to pass the authenticated identity ID
	HeaderName = "X-Kratos-Authenticated-Identity-Id"
	// EmailHeaderName carries the identity email when the proxy forwards it
	EmailHeaderName = "X-Kratos-Authenticated-Identity-Email"
)

type contextKey struct{}

// Identity is what the trusted proxy asserts about the caller
type Identity struct {
	ID    string
	Email string
}

// FromContext returns the identity placed in the context by the middleware
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(*Identity)
	return id, ok && id != nil
}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := strings.TrimSpace(r.Header.Get(HeaderName))
		if userID == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		ctx = WithIdentity(
			ctx,
			&Identity{
				ID:    userID,
				Email: strings.TrimSpace(r.Header.Get(EmailHeaderName)),
			},
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
