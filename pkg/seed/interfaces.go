// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
)

type DBClientInterface interface {
	WithTx(context.Context, func(context.Context) error) error
	AdvisoryLock(context.Context, int64) error
}

type StorageInterface interface {
	InsertAgencyIfAbsent(context.Context, *types.Agency) (bool, error)
	GetAgencyBySlug(context.Context, string) (*types.Agency, error)
	GetUserByID(context.Context, string) (*types.User, error)
	CreateUser(context.Context, *types.User) (*types.User, error)
}

type AuthzInterface interface {
	AssignAgencyAdmin(context.Context, string, string) error
}

type SeederInterface interface {
	EnsureSeedData(context.Context) (*types.Agency, error)
	EnsureDemoUser(context.Context, *types.Session) (*types.User, error)
	EnsureSuperAdmin(context.Context, string, string) (*types.User, error)
}
