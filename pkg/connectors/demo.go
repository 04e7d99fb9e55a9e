// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connectors

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/canonical/agency-service/internal/types"
)

const SourceMock = "mock"

var _ Connector = (*DemoConnector)(nil)

// DemoConnector produces random figures for demos and local development
type DemoConnector struct {
	connected atomic.Bool
	now       func() time.Time
}

func (c *DemoConnector) SourceType() string {
	return SourceMock
}

func (c *DemoConnector) Name() string {
	return "Demo data"
}

func (c *DemoConnector) Connect(context.Context) error {
	c.connected.Store(true)
	return nil
}

func (c *DemoConnector) IsConnected() bool {
	return c.connected.Load()
}

func (c *DemoConnector) FetchMetrics(_ context.Context, artist *types.Artist) ([]types.MetricUpdate, error) {
	if !c.IsConnected() {
		return nil, ErrNotConnected
	}

	now := c.now()

	return []types.MetricUpdate{
		{
			Type:   types.MetricStreaming,
			Source: SourceMock,
			Data: map[string]interface{}{
				"artistId":         artist.ID,
				"streams":          rand.IntN(100000),
				"monthlyListeners": rand.IntN(50000),
				"followers":        rand.IntN(10000),
			},
			Timestamp: now,
		},
		{
			Type:   types.MetricSocial,
			Source: SourceMock,
			Data: map[string]interface{}{
				"artistId":  artist.ID,
				"instagram": rand.IntN(20000),
				"tiktok":    rand.IntN(30000),
			},
			Timestamp: now,
		},
		{
			Type:   types.MetricFanBase,
			Source: SourceMock,
			Data: map[string]interface{}{
				"artistId":  artist.ID,
				"superFans": rand.IntN(2000),
				"fans":      rand.IntN(10000),
			},
			Timestamp: now,
		},
	}, nil
}

func (c *DemoConnector) Disconnect(context.Context) error {
	c.connected.Store(false)
	return nil
}

func NewDemoConnector() *DemoConnector {
	c := new(DemoConnector)
	c.now = time.Now

	return c
}
