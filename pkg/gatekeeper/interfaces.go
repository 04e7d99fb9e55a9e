// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gatekeeper

import (
	"context"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/types"
)

type ResolverInterface interface {
	ResolveAccess(context.Context, *types.Session, authorization.PathContext) (*authorization.Verdict, error)
}
