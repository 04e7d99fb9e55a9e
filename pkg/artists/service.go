// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package artists

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	db        DBClientInterface
	storage   StorageInterface
	authz     AuthzInterface
	collector CollectorInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListArtists(ctx context.Context, access *authorization.Access) ([]*types.Artist, error) {
	ctx, span := s.tracer.Start(ctx, "artists.Service.ListArtists")
	defer span.End()

	return s.storage.ListActiveArtistsByAgency(ctx, access.Agency.ID)
}

// provisionLockKey serializes artist creation per agency so the plan limit holds under concurrency
func provisionLockKey(agencyID string) int64 {
	return int64(xxhash.Sum64String("artists:" + agencyID))
}

// CreateArtist provisions the artist, its tenant and its metric rows in one transaction
func (s *Service) CreateArtist(ctx context.Context, access *authorization.Access, input *ArtistInput) (*types.Artist, error) {
	ctx, span := s.tracer.Start(ctx, "artists.Service.CreateArtist")
	defer span.End()

	agency := access.Agency

	if !access.User.Can(ResourceArtists, ActionCreate) {
		s.logger.Security().AuthzFailure(access.User.ID, "agency:"+agency.ID+":artists")
		return nil, ErrForbidden
	}

	slug := Slugify(input.Name)
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	var (
		artist *types.Artist
		tenant *types.Tenant
	)

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.db.AdvisoryLock(ctx, provisionLockKey(agency.ID)); err != nil {
			return err
		}

		count, err := s.storage.CountArtistsByAgency(ctx, agency.ID)
		if err != nil {
			return err
		}

		if limit := agency.Settings.Features.MaxArtists; limit > 0 && count >= limit {
			return fmt.Errorf("%w: %d of %d", ErrLimitExceeded, count, limit)
		}

		artist, err = s.storage.CreateArtist(
			ctx,
			&types.Artist{
				AgencyID:    agency.ID,
				Name:        input.Name,
				Email:       input.Email,
				Phone:       input.Phone,
				Bio:         input.Bio,
				ImageURL:    input.ImageURL,
				Genres:      input.Genres,
				SocialLinks: input.SocialLinks,
				IsActive:    true,
			},
		)
		if err != nil {
			return err
		}

		tenant, err = s.storage.CreateTenant(
			ctx,
			&types.Tenant{
				AgencyID: agency.ID,
				ArtistID: artist.ID,
				Name:     input.Name,
				Slug:     slug,
				IsActive: true,
			},
		)
		if err != nil {
			return err
		}

		return s.storage.CreateTenantMetrics(ctx, tenant)
	})

	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		return nil, fmt.Errorf("%w: slug %s", ErrDuplicate, slug)
	case err != nil:
		return nil, err
	}

	if err := s.authz.LinkTenantToAgency(ctx, tenant.ID, agency.ID); err != nil {
		s.logger.Errorf("failed to link tenant %s to agency %s: %v", tenant.ID, agency.ID, err)
	}

	s.logger.Security().AdminAction(access.User.ID, "create_artist", "tenant:"+tenant.ID)

	artist.Tenant = tenant

	return artist, nil
}

// ArtistMetrics returns the stored metric rows of the resolved tenant along with live connector data
func (s *Service) ArtistMetrics(ctx context.Context, access *authorization.Access) (*Metrics, error) {
	ctx, span := s.tracer.Start(ctx, "artists.Service.ArtistMetrics")
	defer span.End()

	if access.Tenant == nil {
		return nil, ErrNoTenant
	}

	tenant := access.Tenant

	artist, err := s.storage.GetArtistByID(ctx, tenant.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load artist of tenant %s: %w", tenant.ID, err)
	}

	metrics, err := s.storage.GetTenantMetrics(ctx, tenant.ID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to get metrics of tenant %s: %v", tenant.ID, err)
		}
		metrics = types.EmptyTenantMetrics(tenant)
	}

	collection := s.collector.Collect(ctx, artist)

	return &Metrics{
		Artist:      artist,
		Metrics:     metrics,
		Updates:     collection.Updates,
		DataSources: collection.Sources,
		GeneratedAt: s.now(),
	}, nil
}

func NewService(db DBClientInterface, storage StorageInterface, authz AuthzInterface, collector CollectorInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)
	s.db = db
	s.storage = storage
	s.authz = authz
	s.collector = collector
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
