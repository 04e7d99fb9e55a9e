// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/agency-service/internal/identity"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/pkg/admin"
	"github.com/canonical/agency-service/pkg/agency"
	"github.com/canonical/agency-service/pkg/artists"
	"github.com/canonical/agency-service/pkg/authentication"
	"github.com/canonical/agency-service/pkg/gatekeeper"
	"github.com/canonical/agency-service/pkg/metrics"
	"github.com/canonical/agency-service/pkg/status"
	"github.com/canonical/agency-service/pkg/webhooks"
)

// Services groups what the HTTP surface is built on
type Services struct {
	Admin    admin.ServiceInterface
	Agency   agency.ServiceInterface
	Artists  artists.ServiceInterface
	Webhooks webhooks.ServiceInterface
}

// Config carries the HTTP settings that are not services
type Config struct {
	CORSAllowedOrigins []string
	WebhookAPIKey      string
}

func NewRouter(
	cfg Config,
	services Services,
	auth *authentication.API,
	sessions *authentication.Middleware,
	gate *gatekeeper.Middleware,
	pinger status.PingerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(origins),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
		sessions.Sessions(),
		gate.Handler,
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(pinger, tracer, monitor, logger).RegisterEndpoints(router)
	auth.RegisterEndpoints(router)
	webhooks.NewAPI(services.Webhooks, cfg.WebhookAPIKey, logger).RegisterEndpoints(router)
	admin.NewAPI(services.Admin, tracer, monitor, logger).RegisterEndpoints(router)
	agency.NewAPI(services.Agency, tracer, monitor, logger).RegisterEndpoints(router)
	artists.NewAPI(services.Artists, tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
