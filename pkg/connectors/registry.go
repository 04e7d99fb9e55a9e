// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connectors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

var _ CollectorInterface = (*Registry)(nil)

type Config struct {
	Enabled []string
	Timeout time.Duration
	Spotify SpotifyConfig
}

// Collection is what every configured source reported for one artist
type Collection struct {
	Updates []types.MetricUpdate `json:"updates"`
	Sources []types.DataSource   `json:"sources"`
}

// Registry fans metric collection out to the configured connectors
type Registry struct {
	connectors []Connector
	timeout    time.Duration
	now        func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Registry) Connectors() []Connector {
	return r.connectors
}

// Collect queries every connector concurrently, a failing source is reported in
// its DataSource status and never fails the whole collection
func (r *Registry) Collect(ctx context.Context, artist *types.Artist) *Collection {
	ctx, span := r.tracer.Start(ctx, "connectors.Registry.Collect")
	defer span.End()

	updates := make([][]types.MetricUpdate, len(r.connectors))
	sources := make([]types.DataSource, len(r.connectors))

	g, gctx := errgroup.WithContext(ctx)

	for i, c := range r.connectors {
		g.Go(func() error {
			updates[i], sources[i] = r.collectOne(gctx, c, artist)
			return nil
		})
	}

	_ = g.Wait()

	collection := &Collection{Sources: sources, Updates: make([]types.MetricUpdate, 0)}
	for _, u := range updates {
		collection.Updates = append(collection.Updates, u...)
	}

	return collection
}

func (r *Registry) collectOne(ctx context.Context, c Connector, artist *types.Artist) ([]types.MetricUpdate, types.DataSource) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	source := types.DataSource{Name: c.Name(), Type: c.SourceType()}

	if !c.IsConnected() {
		if err := c.Connect(ctx); err != nil {
			r.logger.Warnf("failed to connect %s: %v", c.SourceType(), err)
			r.availability(c, false)

			source.Status = types.DataSourceError
			source.Error = "connection failed"
			return nil, source
		}
	}

	updates, err := c.FetchMetrics(ctx, artist)

	switch {
	case errors.Is(err, ErrArtistNotLinked):
		source.Status = types.DataSourceDisconnected
		return nil, source
	case err != nil:
		r.logger.Warnf("failed to fetch %s metrics for artist %s: %v", c.SourceType(), artist.ID, err)
		r.availability(c, false)

		source.Status = types.DataSourceError
		source.Error = "fetch failed"
		return nil, source
	}

	r.availability(c, true)

	synced := r.now()
	source.Status = types.DataSourceConnected
	source.LastSync = &synced

	return updates, source
}

func (r *Registry) availability(c Connector, up bool) {
	value := 0.0
	if up {
		value = 1.0
	}

	if err := r.monitor.SetDependencyAvailability(map[string]string{"component": "connector_" + c.SourceType()}, value); err != nil {
		r.logger.Debugf("failed to record connector availability: %v", err)
	}
}

// Close disconnects every connector
func (r *Registry) Close(ctx context.Context) {
	for _, c := range r.connectors {
		if err := c.Disconnect(ctx); err != nil {
			r.logger.Warnf("failed to disconnect %s: %v", c.SourceType(), err)
		}
	}
}

// NewRegistry builds the connectors named in cfg.Enabled, unknown names are rejected
func NewRegistry(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Registry, error) {
	connectors := make([]Connector, 0, len(cfg.Enabled))

	for _, name := range cfg.Enabled {
		switch name {
		case SourceMock:
			connectors = append(connectors, NewDemoConnector())
		case SourceSpotify:
			c, err := NewSpotifyConnector(cfg.Spotify, tracer, monitor, logger)
			if err != nil {
				return nil, err
			}
			connectors = append(connectors, c)
		case "":
			continue
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
		}
	}

	return NewRegistryWith(connectors, cfg.Timeout, tracer, monitor, logger), nil
}

func NewRegistryWith(connectors []Connector, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Registry {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	r := new(Registry)
	r.connectors = connectors
	r.timeout = timeout
	r.now = time.Now

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
