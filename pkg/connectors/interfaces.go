// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connectors

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
)

// Connector is the capability every external data source provides
type Connector interface {
	SourceType() string
	Name() string
	Connect(ctx context.Context) error
	IsConnected() bool
	FetchMetrics(ctx context.Context, artist *types.Artist) ([]types.MetricUpdate, error)
	Disconnect(ctx context.Context) error
}

type CollectorInterface interface {
	Collect(ctx context.Context, artist *types.Artist) *Collection
}
