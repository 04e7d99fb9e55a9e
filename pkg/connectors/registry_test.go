// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connectors

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package connectors -destination ./mock_interfaces.go -source=./interfaces.go

func newConnector(ctrl *gomock.Controller, source string) *MockConnector {
	c := NewMockConnector(ctrl)
	c.EXPECT().SourceType().Return(source).AnyTimes()
	c.EXPECT().Name().Return(source).AnyTimes()
	return c
}

func TestRegistry_Collect(t *testing.T) {
	artist := &types.Artist{ID: "artist-1", Name: "Jane Doe"}
	update := types.MetricUpdate{Type: types.MetricStreaming, Source: "healthy", Data: map[string]interface{}{"streams": 10}}

	tests := []struct {
		name            string
		setupMocks      func(*MockConnector)
		expectedStatus  types.DataSourceStatus
		expectedUpdates int
	}{
		{
			name: "connected source",
			setupMocks: func(c *MockConnector) {
				c.EXPECT().IsConnected().Return(true)
				c.EXPECT().FetchMetrics(gomock.Any(), artist).Return([]types.MetricUpdate{update}, nil)
			},
			expectedStatus:  types.DataSourceConnected,
			expectedUpdates: 1,
		},
		{
			name: "connects lazily",
			setupMocks: func(c *MockConnector) {
				c.EXPECT().IsConnected().Return(false)
				c.EXPECT().Connect(gomock.Any()).Return(nil)
				c.EXPECT().FetchMetrics(gomock.Any(), artist).Return([]types.MetricUpdate{update, update}, nil)
			},
			expectedStatus:  types.DataSourceConnected,
			expectedUpdates: 2,
		},
		{
			name: "connection failure",
			setupMocks: func(c *MockConnector) {
				c.EXPECT().IsConnected().Return(false)
				c.EXPECT().Connect(gomock.Any()).Return(errors.New("bad credentials"))
			},
			expectedStatus: types.DataSourceError,
		},
		{
			name: "artist without account",
			setupMocks: func(c *MockConnector) {
				c.EXPECT().IsConnected().Return(true)
				c.EXPECT().FetchMetrics(gomock.Any(), artist).Return(nil, ErrArtistNotLinked)
			},
			expectedStatus: types.DataSourceDisconnected,
		},
		{
			name: "fetch failure",
			setupMocks: func(c *MockConnector) {
				c.EXPECT().IsConnected().Return(true)
				c.EXPECT().FetchMetrics(gomock.Any(), artist).Return(nil, errors.New("503"))
			},
			expectedStatus: types.DataSourceError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := logging.NewNoopLogger()
			c := newConnector(ctrl, "healthy")
			test.setupMocks(c)

			r := NewRegistryWith([]Connector{c}, time.Second, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			collection := r.Collect(context.Background(), artist)

			if len(collection.Sources) != 1 {
				t.Fatalf("expected one source, got %d", len(collection.Sources))
			}

			if s := collection.Sources[0]; s.Status != test.expectedStatus {
				t.Errorf("expected status %s, got %s", test.expectedStatus, s.Status)
			}

			if len(collection.Updates) != test.expectedUpdates {
				t.Errorf("expected %d updates, got %d", test.expectedUpdates, len(collection.Updates))
			}

			if test.expectedStatus == types.DataSourceConnected && collection.Sources[0].LastSync == nil {
				t.Errorf("expected last sync on connected source")
			}
		})
	}
}

func TestRegistry_CollectIsolatesSlowSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := logging.NewNoopLogger()
	artist := &types.Artist{ID: "artist-1"}

	slow := newConnector(ctrl, "slow")
	slow.EXPECT().IsConnected().Return(true)
	slow.EXPECT().FetchMetrics(gomock.Any(), artist).DoAndReturn(func(ctx context.Context, _ *types.Artist) ([]types.MetricUpdate, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	fast := newConnector(ctrl, "fast")
	fast.EXPECT().IsConnected().Return(true)
	fast.EXPECT().FetchMetrics(gomock.Any(), artist).Return([]types.MetricUpdate{{Type: types.MetricSocial, Source: "fast"}}, nil)

	r := NewRegistryWith([]Connector{slow, fast}, 50*time.Millisecond, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	collection := r.Collect(context.Background(), artist)

	if collection.Sources[0].Type != "slow" || collection.Sources[0].Status != types.DataSourceError {
		t.Errorf("expected slow source to time out, got %+v", collection.Sources[0])
	}

	if collection.Sources[1].Type != "fast" || collection.Sources[1].Status != types.DataSourceConnected {
		t.Errorf("expected fast source to succeed, got %+v", collection.Sources[1])
	}

	if len(collection.Updates) != 1 {
		t.Errorf("expected the fast update only, got %d", len(collection.Updates))
	}
}

func TestNewRegistry(t *testing.T) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	tests := []struct {
		name          string
		cfg           Config
		expectedTypes []string
		expectedErr   error
	}{
		{
			name:          "demo only",
			cfg:           Config{Enabled: []string{"mock"}},
			expectedTypes: []string{SourceMock},
		},
		{
			name:          "spotify and demo",
			cfg:           Config{Enabled: []string{"spotify", "mock"}, Spotify: SpotifyConfig{ClientID: "id", ClientSecret: "secret"}},
			expectedTypes: []string{SourceSpotify, SourceMock},
		},
		{
			name:        "spotify without credentials",
			cfg:         Config{Enabled: []string{"spotify"}},
			expectedErr: ErrMissingConfig,
		},
		{
			name:        "unknown source",
			cfg:         Config{Enabled: []string{"myspace"}},
			expectedErr: ErrUnknownSource,
		},
		{
			name: "nothing enabled",
			cfg:  Config{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, err := NewRegistry(test.cfg, tracer, monitor, logger)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(r.Connectors()) != len(test.expectedTypes) {
				t.Fatalf("expected %d connectors, got %d", len(test.expectedTypes), len(r.Connectors()))
			}

			for i, c := range r.Connectors() {
				if c.SourceType() != test.expectedTypes[i] {
					t.Errorf("expected %s at %d, got %s", test.expectedTypes[i], i, c.SourceType())
				}
			}
		})
	}
}

func TestDemoConnector(t *testing.T) {
	c := NewDemoConnector()
	artist := &types.Artist{ID: "artist-1"}

	if _, err := c.FetchMetrics(context.Background(), artist); !errors.Is(err, ErrNotConnected) {
		t.Errorf("expected not connected error, got %v", err)
	}

	if err := c.Connect(context.Background()); err != nil || !c.IsConnected() {
		t.Fatalf("expected connection, got %v", err)
	}

	updates, err := c.FetchMetrics(context.Background(), artist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(updates) != 3 || updates[0].Type != types.MetricStreaming || updates[0].Source != SourceMock {
		t.Errorf("unexpected updates %+v", updates)
	}

	_ = c.Disconnect(context.Background())

	if c.IsConnected() {
		t.Errorf("expected disconnected")
	}
}
