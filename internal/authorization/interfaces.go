// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"time"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/agency-service/internal/openfga"
	"github.com/canonical/agency-service/internal/types"
)

type AuthorizerInterface interface {
	ResolveAccess(context.Context, *types.Session, PathContext) (*Verdict, error)
	LandingPath(context.Context, *types.Session, string) (string, error)
	ForgetPrincipal(context.Context, string)
	ValidateModel(context.Context) error

	AssignAgencyAdmin(context.Context, string, string) error
	AssignAgencyMember(context.Context, string, string) error
	LinkTenantToAgency(context.Context, string, string) error
	AssignTenantArtist(context.Context, string, string) error
}

type StorageInterface interface {
	GetUserByID(context.Context, string) (*types.User, error)
	GetAgencyBySlug(context.Context, string) (*types.Agency, error)
	GetAgencyByID(context.Context, string) (*types.Agency, error)
	GetTenantBySlug(context.Context, string, string) (*types.Tenant, error)
}

// MembershipCheckerInterface decides the relationship part of access resolution
type MembershipCheckerInterface interface {
	IsAgencyMember(context.Context, *types.User, *types.Agency) (bool, error)
	IsTenantArtist(context.Context, *types.User, *types.Tenant) (bool, error)
}

type AuthzClientInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	WriteTuples(context.Context, ...openfga.Tuple) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
}

type CacheInterface interface {
	Get(context.Context, string, interface{}) (bool, error)
	Set(context.Context, string, interface{}, time.Duration) error
	Delete(context.Context, string) error
}
