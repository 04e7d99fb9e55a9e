// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	authz     AuthorizerInterface
	collector CollectorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// resolve reuses the access the gatekeeper resolved for the same path, if any
func (s *Service) resolve(ctx context.Context, session *types.Session, p string) (*authorization.Verdict, error) {
	path := authorization.ParsePath(p)

	if access, ok := authorization.AccessForPath(ctx, path.Path); ok {
		return &authorization.Verdict{Outcome: authorization.OutcomeAllow, Access: access}, nil
	}

	return s.authz.ResolveAccess(ctx, session, path)
}

func (s *Service) AgencyDashboard(ctx context.Context, session *types.Session, agencySlug string) (*Dashboard, *authorization.Verdict, error) {
	ctx, span := s.tracer.Start(ctx, "agency.Service.AgencyDashboard")
	defer span.End()

	verdict, err := s.resolve(ctx, session, "/agency/"+agencySlug)
	if err != nil {
		return nil, nil, err
	}

	if !verdict.Allowed() {
		return nil, verdict, nil
	}

	agency := verdict.Access.Agency

	var (
		artists   []*types.Artist
		analytics *types.AgencyAnalytics
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.storage.ListActiveArtistsByAgency(gctx, agency.ID)
		if err != nil {
			s.logger.Errorf("failed to list artists of agency %s: %v", agency.ID, err)
			return nil
		}
		artists = list
		return nil
	})

	g.Go(func() error {
		latest, err := s.storage.GetLatestAgencyAnalytics(gctx, agency.ID, analyticsPeriod)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				s.logger.Errorf("failed to get analytics of agency %s: %v", agency.ID, err)
			}
			return nil
		}
		analytics = latest
		return nil
	})

	_ = g.Wait()

	if artists == nil {
		artists = make([]*types.Artist, 0)
	}

	user := verdict.Access.User

	dashboard := &Dashboard{
		Agency:           agency,
		User:             user,
		Artists:          artists,
		Analytics:        analytics,
		Stats:            stats(agency, artists, analytics),
		CanManageArtists: user != nil && (user.Role == types.RoleAgencyAdmin || user.Role == types.RoleSuperAdmin),
	}

	return dashboard, verdict, nil
}

func stats(agency *types.Agency, artists []*types.Artist, analytics *types.AgencyAnalytics) Stats {
	st := Stats{
		TotalArtists: len(artists),
		ArtistLimit:  agency.Settings.Features.MaxArtists,
	}

	for _, a := range artists {
		if a.IsActive {
			st.ActiveArtists++
		}
	}

	if analytics != nil {
		st.TotalStreams = analytics.TotalStreams
		st.TotalFans = analytics.TotalFans
	}

	st.LimitReached = st.ArtistLimit > 0 && st.TotalArtists >= st.ArtistLimit

	return st
}

func (s *Service) ArtistDashboard(ctx context.Context, session *types.Session, agencySlug, artistSlug string) (*ArtistDashboard, *authorization.Verdict, error) {
	ctx, span := s.tracer.Start(ctx, "agency.Service.ArtistDashboard")
	defer span.End()

	verdict, err := s.resolve(ctx, session, "/agency/"+agencySlug+"/artist/"+artistSlug)
	if err != nil {
		return nil, nil, err
	}

	if !verdict.Allowed() {
		return nil, verdict, nil
	}

	tenant := verdict.Access.Tenant
	if tenant == nil {
		return nil, &authorization.Verdict{Outcome: authorization.OutcomeNotFound, Reason: "no tenant resolved"}, nil
	}

	artist, err := s.storage.GetArtistByID(ctx, tenant.ArtistID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load artist of tenant %s: %w", tenant.ID, err)
	}

	dashboard := &ArtistDashboard{
		Agency: verdict.Access.Agency,
		Artist: artist,
		Tenant: tenant,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		dashboard.Metrics = s.metrics(gctx, tenant)
		return nil
	})

	g.Go(func() error {
		collection := s.collector.Collect(gctx, artist)
		dashboard.Updates = collection.Updates
		dashboard.DataSources = collection.Sources
		return nil
	})

	_ = g.Wait()

	return dashboard, verdict, nil
}

// metrics degrades to zero valued rows, a dashboard without figures still renders
func (s *Service) metrics(ctx context.Context, tenant *types.Tenant) *types.TenantMetrics {
	m, err := s.storage.GetTenantMetrics(ctx, tenant.ID)
	if err == nil {
		return m
	}

	if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Errorf("failed to get metrics of tenant %s: %v", tenant.ID, err)
	}

	return types.EmptyTenantMetrics(tenant)
}

// ListMembers returns the users of the agency of access, artists cannot see their peers
func (s *Service) ListMembers(ctx context.Context, access *authorization.Access) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "agency.Service.ListMembers")
	defer span.End()

	if access == nil || access.User == nil || access.Agency == nil {
		return nil, ErrForbidden
	}

	if access.User.Role == types.RoleArtist {
		s.logger.Security().AuthzFailure(access.User.ID, "agency:"+access.Agency.ID+":members")
		return nil, ErrForbidden
	}

	users, err := s.storage.ListUsersByAgency(ctx, access.Agency.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return users, nil
}

// AddMember provisions a user inside the agency of access
func (s *Service) AddMember(ctx context.Context, access *authorization.Access, input *MemberInput) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "agency.Service.AddMember")
	defer span.End()

	if access == nil || access.User == nil || access.Agency == nil {
		return nil, ErrForbidden
	}

	caller, agency := access.User, access.Agency

	if caller.Role != types.RoleAgencyAdmin && caller.Role != types.RoleSuperAdmin {
		s.logger.Security().AuthzFailure(caller.ID, "agency:"+agency.ID+":members")
		return nil, ErrForbidden
	}

	if !input.Role.Valid() || input.Role == types.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, input.Role)
	}

	var tenant *types.Tenant

	if input.Role == types.RoleArtist {
		artist, err := s.storage.GetArtistByID(ctx, input.ArtistID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidArtist
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up artist: %w", err)
		}

		if artist.AgencyID != agency.ID {
			return nil, ErrInvalidArtist
		}

		tenant = artist.Tenant
	} else {
		input.ArtistID = ""
	}

	user, err := s.storage.CreateUser(
		ctx,
		&types.User{
			ID:          input.UserID,
			Email:       input.Email,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Role:        input.Role,
			AgencyID:    agency.ID,
			ArtistID:    input.ArtistID,
			Permissions: input.Permissions,
			IsActive:    true,
		},
	)

	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrMemberExists
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.authz.ForgetPrincipal(ctx, user.ID)
	s.assign(ctx, agency, tenant, user)

	s.logger.Security().AdminAction(caller.ID, "add_member", "user:"+user.ID)

	return user, nil
}

// assign writes the relationship tuples of a new member, failures are logged
// as the user record already grants access through the record checker
func (s *Service) assign(ctx context.Context, agency *types.Agency, tenant *types.Tenant, user *types.User) {
	var err error

	if user.Role == types.RoleAgencyAdmin {
		err = s.authz.AssignAgencyAdmin(ctx, agency.ID, user.ID)
	} else {
		err = s.authz.AssignAgencyMember(ctx, agency.ID, user.ID)
	}

	if err != nil {
		s.logger.Errorf("failed to assign user %s to agency %s: %v", user.ID, agency.ID, err)
	}

	if user.Role != types.RoleArtist || tenant == nil {
		return
	}

	if err := s.authz.AssignTenantArtist(ctx, tenant.ID, user.ID); err != nil {
		s.logger.Errorf("failed to assign user %s to tenant %s: %v", user.ID, tenant.ID, err)
	}
}

func NewService(storage StorageInterface, authz AuthorizerInterface, collector CollectorInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)
	s.storage = storage
	s.authz = authz
	s.collector = collector

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
