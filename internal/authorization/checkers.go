// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

var (
	_ MembershipCheckerInterface = (*RecordChecker)(nil)
	_ MembershipCheckerInterface = (*FGAChecker)(nil)
)

// RecordChecker answers membership questions from the user record alone
type RecordChecker struct{}

func (c *RecordChecker) IsAgencyMember(_ context.Context, user *types.User, agency *types.Agency) (bool, error) {
	return user.AgencyID != "" && user.AgencyID == agency.ID, nil
}

func (c *RecordChecker) IsTenantArtist(_ context.Context, user *types.User, tenant *types.Tenant) (bool, error) {
	return user.ArtistID != "" && user.ArtistID == tenant.ArtistID, nil
}

func NewRecordChecker() *RecordChecker {
	return new(RecordChecker)
}

// FGAChecker delegates membership to OpenFGA relationships
type FGAChecker struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *FGAChecker) IsAgencyMember(ctx context.Context, user *types.User, agency *types.Agency) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "authorization.FGAChecker.IsAgencyMember")
	defer span.End()

	return c.client.Check(ctx, UserTuple(user.ID), MEMBER_RELATION, AgencyTuple(agency.ID))
}

func (c *FGAChecker) IsTenantArtist(ctx context.Context, user *types.User, tenant *types.Tenant) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "authorization.FGAChecker.IsTenantArtist")
	defer span.End()

	return c.client.Check(ctx, UserTuple(user.ID), ARTIST_RELATION, TenantTuple(tenant.ID))
}

func NewFGAChecker(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *FGAChecker {
	c := new(FGAChecker)
	c.client = client

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
