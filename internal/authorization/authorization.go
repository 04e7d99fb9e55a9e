// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/openfga"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	store   StorageInterface
	checker MembershipCheckerInterface
	client  AuthzClientInterface

	cache    CacheInterface
	cacheTTL time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResolveAccess decides whether the session may reach the path.
// Store failures are returned as errors and never turned into a verdict.
func (a *Authorizer) ResolveAccess(ctx context.Context, session *types.Session, path PathContext) (*Verdict, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ResolveAccess")
	defer span.End()

	verdict, err := a.resolve(ctx, session, path)
	if err != nil {
		return nil, err
	}

	a.record(session, path, verdict)

	return verdict, nil
}

func (a *Authorizer) resolve(ctx context.Context, session *types.Session, path PathContext) (*Verdict, error) {
	if path.Public {
		return allow(nil), nil
	}

	if session == nil || session.UserID == "" {
		return redirectLogin(path.Path), nil
	}

	if !path.TenantScoped() {
		return allow(nil), nil
	}

	user, err := a.principal(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	switch {
	case user == nil:
		return unauthorized("unknown user"), nil
	case !user.IsActive:
		return unauthorized("inactive user"), nil
	case !user.Role.Valid():
		return unauthorized("unknown role"), nil
	}

	superAdmin := user.Role == types.RoleSuperAdmin

	if path.Section == SectionAdmin {
		if !superAdmin {
			return unauthorized("admin section requires super_admin"), nil
		}
		return allow(&Access{User: user}), nil
	}

	agency, err := a.agency(ctx, path.AgencySlug)
	if err != nil {
		return nil, err
	}

	if agency == nil {
		// only operators learn whether a slug exists
		if superAdmin {
			return notFound("unknown agency"), nil
		}
		return unauthorized("unknown agency"), nil
	}

	if !superAdmin {
		member, err := a.checker.IsAgencyMember(ctx, user, agency)
		if err != nil {
			return nil, fmt.Errorf("failed to check agency membership: %w", err)
		}

		if !member {
			return unauthorized("not a member of agency"), nil
		}
	}

	access := &Access{User: user, Agency: agency}

	if path.ArtistSlug == "" {
		return allow(access), nil
	}

	tenant, err := a.store.GetTenantBySlug(ctx, agency.ID, path.ArtistSlug)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if user.Role == types.RoleArtist {
		if tenant == nil {
			return unauthorized("unknown tenant"), nil
		}

		own, err := a.checker.IsTenantArtist(ctx, user, tenant)
		if err != nil {
			return nil, fmt.Errorf("failed to check tenant ownership: %w", err)
		}

		if !own {
			return unauthorized("artist accessing foreign tenant"), nil
		}
	}

	if tenant == nil || !tenant.IsActive {
		return notFound("unknown tenant"), nil
	}

	access.Tenant = tenant

	return allow(access), nil
}

func (a *Authorizer) record(session *types.Session, path PathContext, verdict *Verdict) {
	if err := a.monitor.IncAccessVerdict(map[string]string{"outcome": string(verdict.Outcome), "section": string(path.Section)}); err != nil {
		a.logger.Debugf("failed to record access verdict: %v", err)
	}

	switch verdict.Outcome {
	case OutcomeRedirectUnauthorized:
		a.logger.Security().AuthzFailure(session.UserID, path.Path)
		a.logger.Debugw("access denied", "path", path.Path, "reason", verdict.Reason)
	case OutcomeNotFound:
		a.logger.Debugw("access target not found", "path", path.Path, "reason", verdict.Reason)
	}
}

// principal loads the user behind a session, nil when no record exists
func (a *Authorizer) principal(ctx context.Context, userID string) (*types.User, error) {
	user := new(types.User)

	found, err := a.cache.Get(ctx, principalKey(userID), user)
	if err != nil {
		a.logger.Warnf("principal cache unavailable: %v", err)
	}

	if found {
		return user, nil
	}

	user, err = a.store.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := a.cache.Set(ctx, principalKey(userID), user, a.cacheTTL); err != nil {
		a.logger.Warnf("failed to cache principal %s: %v", userID, err)
	}

	return user, nil
}

func (a *Authorizer) agency(ctx context.Context, slug string) (*types.Agency, error) {
	if slug == "" {
		return nil, nil
	}

	agency, err := a.store.GetAgencyBySlug(ctx, slug)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	return agency, nil
}

// ForgetPrincipal drops the cached user record, callers use it after changing a user
func (a *Authorizer) ForgetPrincipal(ctx context.Context, userID string) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ForgetPrincipal")
	defer span.End()

	if err := a.cache.Delete(ctx, principalKey(userID)); err != nil {
		a.logger.Warnf("failed to evict principal %s: %v", userID, err)
	}
}

// LandingPath is where a freshly authenticated session is sent
func (a *Authorizer) LandingPath(ctx context.Context, session *types.Session, next string) (string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.LandingPath")
	defer span.End()

	if session == nil || session.UserID == "" {
		return LoginPath, nil
	}

	user, err := a.principal(ctx, session.UserID)
	if err != nil {
		return "", err
	}

	if user == nil || !user.IsActive {
		return SafeRedirect(next), nil
	}

	if user.Role == types.RoleSuperAdmin {
		return "/admin", nil
	}

	if user.AgencyID == "" {
		return SafeRedirect(next), nil
	}

	agency, err := a.store.GetAgencyByID(ctx, user.AgencyID)
	if errors.Is(err, storage.ErrNotFound) {
		return SafeRedirect(next), nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to get agency: %w", err)
	}

	return "/agency/" + url.PathEscape(agency.Slug), nil
}

// SafeRedirect only lets local absolute paths through, anything else becomes the root
func SafeRedirect(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}

	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}

	return next
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignAgencyAdmin(ctx context.Context, agencyId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignAgencyAdmin")
	defer span.End()

	return a.client.WriteTuples(ctx, *openfga.NewTuple(UserTuple(userId), ADMIN_RELATION, AgencyTuple(agencyId)))
}

func (a *Authorizer) AssignAgencyMember(ctx context.Context, agencyId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignAgencyMember")
	defer span.End()

	return a.client.WriteTuples(ctx, *openfga.NewTuple(UserTuple(userId), MEMBER_RELATION, AgencyTuple(agencyId)))
}

func (a *Authorizer) LinkTenantToAgency(ctx context.Context, tenantId, agencyId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.LinkTenantToAgency")
	defer span.End()

	return a.client.WriteTuples(ctx, *openfga.NewTuple(AgencyTuple(agencyId), AGENCY_RELATION, TenantTuple(tenantId)))
}

func (a *Authorizer) AssignTenantArtist(ctx context.Context, tenantId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignTenantArtist")
	defer span.End()

	return a.client.WriteTuples(ctx, *openfga.NewTuple(UserTuple(userId), ARTIST_RELATION, TenantTuple(tenantId)))
}

func NewAuthorizer(
	store StorageInterface,
	checker MembershipCheckerInterface,
	client AuthzClientInterface,
	cache CacheInterface,
	cacheTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.store = store
	authorizer.checker = checker
	authorizer.client = client
	authorizer.cache = cache
	authorizer.cacheTTL = cacheTTL
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
