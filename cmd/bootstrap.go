// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/cache"
	"github.com/canonical/agency-service/internal/config"
	"github.com/canonical/agency-service/internal/db"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/monitoring/prometheus"
	"github.com/canonical/agency-service/internal/openfga"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
)

// infra is the shared backbone of the serve and seed commands
type infra struct {
	specs *config.EnvSpec

	db         *db.DBClient
	storage    *storage.Storage
	authorizer *authorization.Authorizer
	cache      cache.CacheInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (i *infra) Close() {
	if c, ok := i.cache.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			i.logger.Warnf("failed to close cache: %v", err)
		}
	}

	i.db.Close()
	_ = i.logger.Sync()
}

func newInfra(ctx context.Context, specs *config.EnvSpec) (*infra, error) {
	logger := logging.NewLogger(specs.LogLevel)

	i := new(infra)
	i.specs = specs
	i.logger = logger
	i.monitor = prometheus.NewMonitor("agency-service", logger)
	i.tracer = tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		i.tracer,
		i.monitor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	i.db = dbClient
	i.storage = storage.NewStorage(dbClient, i.tracer, i.monitor, logger)

	if specs.RedisAddr != "" {
		i.cache = cache.NewRedisCache(
			cache.Config{Addr: specs.RedisAddr, Password: specs.RedisPassword, DB: specs.RedisDB},
			i.tracer,
			i.monitor,
			logger,
		)
		logger.Infof("Caching principals in redis at %s", specs.RedisAddr)
	} else {
		i.cache = cache.NewNoopCache()
	}

	if err := i.setupAuthorizer(ctx); err != nil {
		dbClient.Close()
		return nil, err
	}

	return i, nil
}

// setupAuthorizer picks OpenFGA relationships when authorization is enabled,
// otherwise membership is read from the user records
func (i *infra) setupAuthorizer(ctx context.Context) error {
	if !i.specs.AuthorizationEnabled {
		i.authorizer = authorization.NewAuthorizer(
			i.storage,
			authorization.NewRecordChecker(),
			openfga.NewNoopClient(i.tracer, i.monitor, i.logger),
			i.cache,
			i.specs.PrincipalCacheTTL,
			i.tracer,
			i.monitor,
			i.logger,
		)
		i.logger.Info("Using record based authorizer")
		return nil
	}

	ofga, err := openfga.NewClient(
		openfga.NewConfig(
			i.specs.OpenfgaApiScheme,
			i.specs.OpenfgaApiHost,
			i.specs.OpenfgaStoreId,
			i.specs.OpenfgaApiToken,
			i.specs.OpenfgaModelId,
			i.specs.Debug,
			i.tracer,
			i.monitor,
			i.logger,
		),
	)
	if err != nil {
		return err
	}

	i.authorizer = authorization.NewAuthorizer(
		i.storage,
		authorization.NewFGAChecker(ofga, i.tracer, i.monitor, i.logger),
		ofga,
		i.cache,
		i.specs.PrincipalCacheTTL,
		i.tracer,
		i.monitor,
		i.logger,
	)

	if err := i.authorizer.ValidateModel(ctx); err != nil {
		return fmt.Errorf("invalid authorization model: %w", err)
	}

	i.logger.Info("Authorization is enabled")
	return nil
}
