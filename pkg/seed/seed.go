// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

const (
	DemoAgencySlug = "demo-agency"

	// seedLockKey serializes concurrent seeders across replicas
	seedLockKey int64 = 0x68727273656564
)

var (
	ErrInvalidSession = errors.New("session carries no user id")
	ErrRoleConflict   = errors.New("user exists with a different role")
)

var _ SeederInterface = (*Seeder)(nil)

// DemoAgency is the agency every fresh installation starts with
func DemoAgency() *types.Agency {
	return &types.Agency{
		Name: "Home Run Records",
		Slug: DemoAgencySlug,
		Plan: types.PlanProfessional,
		Settings: types.AgencySettings{
			Branding: types.Branding{PrimaryColor: "#3B82F6"},
			Features: types.Features{MaxArtists: 25},
			Billing:  types.Billing{Status: "active"},
		},
	}
}

type Seeder struct {
	db      DBClientInterface
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// EnsureSeedData creates the demo agency when it does not exist yet, running it
// any number of times leaves exactly one row behind
func (s *Seeder) EnsureSeedData(ctx context.Context) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "seed.Seeder.EnsureSeedData")
	defer span.End()

	var (
		agency  *types.Agency
		created bool
	)

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.db.AdvisoryLock(ctx, seedLockKey); err != nil {
			return err
		}

		inserted, err := s.storage.InsertAgencyIfAbsent(ctx, DemoAgency())
		if err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
			return err
		}

		created = inserted

		agency, err = s.storage.GetAgencyBySlug(ctx, DemoAgencySlug)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to seed demo agency: %w", err)
	}

	if created {
		s.logger.Infof("created demo agency %s", agency.ID)
		s.logger.Security().AdminAction("system", "seed", "agency:"+agency.ID)
	} else {
		s.logger.Debugf("demo agency %s already present", agency.ID)
	}

	return agency, nil
}

func (s *Seeder) demoAgency(ctx context.Context) (*types.Agency, error) {
	agency, err := s.storage.GetAgencyBySlug(ctx, DemoAgencySlug)
	if err == nil {
		return agency, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	return s.EnsureSeedData(ctx)
}

// EnsureDemoUser makes the signed in identity an admin of the demo agency.
// It is only meant for demo deployments, existing users are returned untouched.
func (s *Seeder) EnsureDemoUser(ctx context.Context, session *types.Session) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "seed.Seeder.EnsureDemoUser")
	defer span.End()

	if session == nil || session.UserID == "" {
		return nil, ErrInvalidSession
	}

	user, err := s.storage.GetUserByID(ctx, session.UserID)
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	agency, err := s.demoAgency(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load demo agency: %w", err)
	}

	firstName := session.FirstName
	if firstName == "" {
		firstName, _, _ = strings.Cut(session.Email, "@")
	}

	user, err = s.storage.CreateUser(
		ctx,
		&types.User{
			ID:        session.UserID,
			Email:     session.Email,
			FirstName: firstName,
			LastName:  session.LastName,
			Role:      types.RoleAgencyAdmin,
			AgencyID:  agency.ID,
			IsActive:  true,
		},
	)

	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		// a concurrent login got there first
		return s.storage.GetUserByID(ctx, session.UserID)
	case err != nil:
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}

	if err := s.authz.AssignAgencyAdmin(ctx, agency.ID, user.ID); err != nil {
		s.logger.Errorf("failed to assign demo user %s to agency %s: %v", user.ID, agency.ID, err)
	}

	s.logger.Security().AdminAction("system", "provision_demo_user", "user:"+user.ID)

	return user, nil
}

// EnsureSuperAdmin bootstraps an operator account
func (s *Seeder) EnsureSuperAdmin(ctx context.Context, id, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "seed.Seeder.EnsureSuperAdmin")
	defer span.End()

	if id == "" || email == "" {
		return nil, fmt.Errorf("super admin id and email are required")
	}

	user, err := s.storage.GetUserByID(ctx, id)
	if err == nil {
		if user.Role != types.RoleSuperAdmin {
			return nil, fmt.Errorf("%w: %s is %s", ErrRoleConflict, id, user.Role)
		}
		return user, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	firstName, _, _ := strings.Cut(email, "@")

	user, err = s.storage.CreateUser(
		ctx,
		&types.User{
			ID:        id,
			Email:     email,
			FirstName: firstName,
			Role:      types.RoleSuperAdmin,
			IsActive:  true,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create super admin: %w", err)
	}

	s.logger.Security().AdminAction("system", "create_super_admin", "user:"+user.ID)

	return user, nil
}

func NewSeeder(db DBClientInterface, storage StorageInterface, authz AuthzInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Seeder {
	s := new(Seeder)
	s.db = db
	s.storage = storage
	s.authz = authz

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
