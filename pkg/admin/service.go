// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/artists"
)

const defaultPrimaryColor = "#3B82F6"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) operator(access *authorization.Access, resource string) error {
	if access == nil || access.User == nil {
		return ErrForbidden
	}

	if access.User.Role != types.RoleSuperAdmin {
		s.logger.Security().AuthzFailure(access.User.ID, resource)
		return ErrForbidden
	}

	return nil
}

func (s *Service) ListAgencies(ctx context.Context, access *authorization.Access) ([]*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListAgencies")
	defer span.End()

	if err := s.operator(access, "agencies"); err != nil {
		return nil, err
	}

	agencies, err := s.storage.ListAgencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agencies: %w", err)
	}

	return agencies, nil
}

// CreateAgency onboards an agency, the slug is derived from the name unless given
func (s *Service) CreateAgency(ctx context.Context, access *authorization.Access, input *AgencyInput) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.CreateAgency")
	defer span.End()

	if err := s.operator(access, "agencies"); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = input.Name
	}

	slug = artists.Slugify(slug)
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	plan := types.Plan(input.Plan)

	maxArtists := input.MaxArtists
	if maxArtists == 0 {
		maxArtists = planArtistLimits[plan]
	}

	color := input.PrimaryColor
	if color == "" {
		color = defaultPrimaryColor
	}

	agency, err := s.storage.CreateAgency(
		ctx,
		&types.Agency{
			Name: input.Name,
			Slug: slug,
			Plan: plan,
			Settings: types.AgencySettings{
				Branding: types.Branding{PrimaryColor: color},
				Features: types.Features{MaxArtists: maxArtists},
				Billing:  types.Billing{Status: "active"},
			},
		},
	)

	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, slug)
	case err != nil:
		return nil, fmt.Errorf("failed to create agency: %w", err)
	}

	s.logger.Security().AdminAction(access.User.ID, "create_agency", "agency:"+agency.ID)

	return agency, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)
	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
