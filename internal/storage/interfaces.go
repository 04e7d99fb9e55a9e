// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
)

type AgencyStorageInterface interface {
	CreateAgency(ctx context.Context, a *types.Agency) (*types.Agency, error)
	InsertAgencyIfAbsent(ctx context.Context, a *types.Agency) (bool, error)
	GetAgencyBySlug(ctx context.Context, slug string) (*types.Agency, error)
	GetAgencyByID(ctx context.Context, id string) (*types.Agency, error)
	ListAgencies(ctx context.Context) ([]*types.Agency, error)
}

type UserStorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	ListUsersByAgency(ctx context.Context, agencyID string) ([]*types.User, error)
}

type ArtistStorageInterface interface {
	CreateArtist(ctx context.Context, a *types.Artist) (*types.Artist, error)
	GetArtistByID(ctx context.Context, id string) (*types.Artist, error)
	ListActiveArtistsByAgency(ctx context.Context, agencyID string) ([]*types.Artist, error)
	CountArtistsByAgency(ctx context.Context, agencyID string) (int, error)
}

type TenantStorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantBySlug(ctx context.Context, agencyID, slug string) (*types.Tenant, error)
}

type MetricsStorageInterface interface {
	GetLatestAgencyAnalytics(ctx context.Context, agencyID, period string) (*types.AgencyAnalytics, error)
	CreateTenantMetrics(ctx context.Context, t *types.Tenant) error
	GetTenantMetrics(ctx context.Context, tenantID string) (*types.TenantMetrics, error)
}

type StorageInterface interface {
	AgencyStorageInterface
	UserStorageInterface
	ArtistStorageInterface
	TenantStorageInterface
	MetricsStorageInterface
}
