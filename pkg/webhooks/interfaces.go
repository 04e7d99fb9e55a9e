// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/agency-service/internal/types"
)

// StorageInterface is the subset of internal/storage the token hook reads from
type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetAgencyByID(ctx context.Context, id string) (*types.Agency, error)
}

// ProvisionerInterface is the demo user provisioning of pkg/seed
type ProvisionerInterface interface {
	EnsureDemoUser(ctx context.Context, session *types.Session) (*types.User, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity *KratosIdentity) error
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
