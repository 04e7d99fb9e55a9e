// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/types"
)

type ServiceInterface interface {
	ListAgencies(context.Context, *authorization.Access) ([]*types.Agency, error)
	CreateAgency(context.Context, *authorization.Access, *AgencyInput) (*types.Agency, error)
}

type StorageInterface interface {
	ListAgencies(context.Context) ([]*types.Agency, error)
	CreateAgency(context.Context, *types.Agency) (*types.Agency, error)
}
