// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package artists

import (
	"context"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/connectors"
)

type ServiceInterface interface {
	ListArtists(context.Context, *authorization.Access) ([]*types.Artist, error)
	CreateArtist(context.Context, *authorization.Access, *ArtistInput) (*types.Artist, error)
	ArtistMetrics(context.Context, *authorization.Access) (*Metrics, error)
}

type DBClientInterface interface {
	WithTx(context.Context, func(context.Context) error) error
	AdvisoryLock(context.Context, int64) error
}

type StorageInterface interface {
	ListActiveArtistsByAgency(context.Context, string) ([]*types.Artist, error)
	CountArtistsByAgency(context.Context, string) (int, error)
	CreateArtist(context.Context, *types.Artist) (*types.Artist, error)
	GetArtistByID(context.Context, string) (*types.Artist, error)
	CreateTenant(context.Context, *types.Tenant) (*types.Tenant, error)
	CreateTenantMetrics(context.Context, *types.Tenant) error
	GetTenantMetrics(context.Context, string) (*types.TenantMetrics, error)
}

type AuthzInterface interface {
	LinkTenantToAgency(context.Context, string, string) error
}

type CollectorInterface interface {
	Collect(context.Context, *types.Artist) *connectors.Collection
}
