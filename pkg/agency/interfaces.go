// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

import (
	"context"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/connectors"
)

type ServiceInterface interface {
	AgencyDashboard(context.Context, *types.Session, string) (*Dashboard, *authorization.Verdict, error)
	ArtistDashboard(context.Context, *types.Session, string, string) (*ArtistDashboard, *authorization.Verdict, error)
	ListMembers(context.Context, *authorization.Access) ([]*types.User, error)
	AddMember(context.Context, *authorization.Access, *MemberInput) (*types.User, error)
}

type StorageInterface interface {
	ListActiveArtistsByAgency(context.Context, string) ([]*types.Artist, error)
	GetLatestAgencyAnalytics(context.Context, string, string) (*types.AgencyAnalytics, error)
	GetArtistByID(context.Context, string) (*types.Artist, error)
	GetTenantMetrics(context.Context, string) (*types.TenantMetrics, error)
	ListUsersByAgency(context.Context, string) ([]*types.User, error)
	CreateUser(context.Context, *types.User) (*types.User, error)
}

type AuthorizerInterface interface {
	ResolveAccess(context.Context, *types.Session, authorization.PathContext) (*authorization.Verdict, error)
	ForgetPrincipal(context.Context, string)
	AssignAgencyAdmin(context.Context, string, string) error
	AssignAgencyMember(context.Context, string, string) error
	AssignTenantArtist(context.Context, string, string) error
}

type CollectorInterface interface {
	Collect(context.Context, *types.Artist) *connectors.Collection
}
