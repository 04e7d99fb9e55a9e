// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	provisioner ProvisionerInterface
	tracer      tracing.TracingInterface
	monitor     monitoring.MonitorInterface
	logger      logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	provisioner ProvisionerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		provisioner: provisioner,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// HandleRegistration provisions the demo user of a freshly registered identity,
// it does nothing unless demo provisioning is enabled
func (s *Service) HandleRegistration(ctx context.Context, identity *KratosIdentity) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity == nil || identity.ID == "" || identity.Traits.Email == "" {
		return fmt.Errorf("identity ID or email is empty")
	}

	if s.provisioner == nil {
		s.logger.Debugf("demo provisioning disabled, ignoring registration of %s", identity.ID)
		return nil
	}

	user, err := s.provisioner.EnsureDemoUser(
		ctx,
		&types.Session{
			UserID:    identity.ID,
			Email:     identity.Traits.Email,
			FirstName: identity.Traits.Name.First,
			LastName:  identity.Traits.Name.Last,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to provision user: %w", err)
	}

	s.logger.Infof("provisioned user %s in agency %s", user.ID, user.AgencyID)
	return nil
}

// HandleTokenHook adds the role and agency of the subject to the tokens Hydra issues.
// Unknown subjects get no extra claims.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	resp := new(TokenHookResponse)

	if req == nil || req.Session == nil || req.Session.DefaultSession == nil || req.Session.DefaultSession.Subject == "" {
		return nil, fmt.Errorf("token hook request carries no subject")
	}

	subject := req.Session.DefaultSession.Subject

	user, err := s.storage.GetUserByID(ctx, subject)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Debugf("no user record for subject %s", subject)
		return resp, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to look up subject: %w", err)
	}

	claims := map[string]interface{}{
		"role": string(user.Role),
	}

	if user.AgencyID != "" {
		claims["agency_id"] = user.AgencyID

		agency, err := s.storage.GetAgencyByID(ctx, user.AgencyID)
		switch {
		case err == nil:
			claims["agency_slug"] = agency.Slug
		case !errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("failed to look up agency: %w", err)
		}
	}

	if user.ArtistID != "" {
		claims["artist_id"] = user.ArtistID
	}

	resp.Session.IDToken = claims
	resp.Session.AccessToken = claims

	return resp, nil
}
