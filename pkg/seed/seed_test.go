// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package seed -destination ./mock_interfaces.go -source=./interfaces.go

func runTx(db *MockDBClientInterface) {
	db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func newTestSeeder(db DBClientInterface, s StorageInterface, a AuthzInterface) *Seeder {
	logger := logging.NewNoopLogger()
	return NewSeeder(db, s, a, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestSeeder_EnsureSeedData(t *testing.T) {
	demo := &types.Agency{ID: "agency-demo", Slug: DemoAgencySlug, Name: "Home Run Records", Plan: types.PlanProfessional}

	tests := []struct {
		name        string
		setupMocks  func(*MockDBClientInterface, *MockStorageInterface)
		expectedID  string
		expectedErr bool
	}{
		{
			name: "first run creates the agency",
			setupMocks: func(db *MockDBClientInterface, s *MockStorageInterface) {
				runTx(db)
				db.EXPECT().AdvisoryLock(gomock.Any(), seedLockKey).Return(nil)
				s.EXPECT().InsertAgencyIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.Agency) (bool, error) {
						if a.Slug != DemoAgencySlug || a.Plan != types.PlanProfessional || a.Settings.Features.MaxArtists != 25 {
							t.Errorf("unexpected demo agency %+v", a)
						}
						if a.Settings.Branding.PrimaryColor != "#3B82F6" || a.Settings.Billing.Status != "active" {
							t.Errorf("unexpected demo settings %+v", a.Settings)
						}
						return true, nil
					},
				)
				s.EXPECT().GetAgencyBySlug(gomock.Any(), DemoAgencySlug).Return(demo, nil)
			},
			expectedID: demo.ID,
		},
		{
			name: "second run is a no-op",
			setupMocks: func(db *MockDBClientInterface, s *MockStorageInterface) {
				runTx(db)
				db.EXPECT().AdvisoryLock(gomock.Any(), seedLockKey).Return(nil)
				s.EXPECT().InsertAgencyIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
				s.EXPECT().GetAgencyBySlug(gomock.Any(), DemoAgencySlug).Return(demo, nil)
			},
			expectedID: demo.ID,
		},
		{
			name: "duplicate key race re-reads the row",
			setupMocks: func(db *MockDBClientInterface, s *MockStorageInterface) {
				runTx(db)
				db.EXPECT().AdvisoryLock(gomock.Any(), seedLockKey).Return(nil)
				s.EXPECT().InsertAgencyIfAbsent(gomock.Any(), gomock.Any()).Return(false, storage.ErrDuplicateKey)
				s.EXPECT().GetAgencyBySlug(gomock.Any(), DemoAgencySlug).Return(demo, nil)
			},
			expectedID: demo.ID,
		},
		{
			name: "lock failure",
			setupMocks: func(db *MockDBClientInterface, s *MockStorageInterface) {
				runTx(db)
				db.EXPECT().AdvisoryLock(gomock.Any(), seedLockKey).Return(fmt.Errorf("connection reset"))
			},
			expectedErr: true,
		},
		{
			name: "insert failure",
			setupMocks: func(db *MockDBClientInterface, s *MockStorageInterface) {
				runTx(db)
				db.EXPECT().AdvisoryLock(gomock.Any(), seedLockKey).Return(nil)
				s.EXPECT().InsertAgencyIfAbsent(gomock.Any(), gomock.Any()).Return(false, fmt.Errorf("disk full"))
			},
			expectedErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := NewMockDBClientInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			test.setupMocks(mockDB, mockStorage)

			agency, err := newTestSeeder(mockDB, mockStorage, mockAuthz).EnsureSeedData(context.Background())

			if test.expectedErr {
				if err == nil {
					t.Errorf("expected error, got %+v", agency)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if agency.ID != test.expectedID {
				t.Errorf("expected agency %s, got %s", test.expectedID, agency.ID)
			}
		})
	}
}

func TestSeeder_EnsureDemoUser(t *testing.T) {
	demo := &types.Agency{ID: "agency-demo", Slug: DemoAgencySlug}
	existing := &types.User{ID: "user-1", Role: types.RoleAgencyMember, AgencyID: "agency-acme"}

	tests := []struct {
		name          string
		session       *types.Session
		setupMocks    func(*MockDBClientInterface, *MockStorageInterface, *MockAuthzInterface)
		expectedRole  types.Role
		expectedFirst string
		expectedErr   error
		expectAnyErr  bool
	}{
		{
			name:         "missing session",
			session:      &types.Session{},
			setupMocks:   func(*MockDBClientInterface, *MockStorageInterface, *MockAuthzInterface) {},
			expectedErr:  ErrInvalidSession,
			expectAnyErr: true,
		},
		{
			name:    "existing user is left untouched",
			session: &types.Session{UserID: "user-1", Email: "jane@homerun.example"},
			setupMocks: func(_ *MockDBClientInterface, s *MockStorageInterface, _ *MockAuthzInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(existing, nil)
			},
			expectedRole: types.RoleAgencyMember,
		},
		{
			name:    "new user becomes demo agency admin",
			session: &types.Session{UserID: "user-2", Email: "jane@homerun.example"},
			setupMocks: func(_ *MockDBClientInterface, s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "user-2").Return(nil, storage.ErrNotFound)
				s.EXPECT().GetAgencyBySlug(gomock.Any(), DemoAgencySlug).Return(demo, nil)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.AgencyID != demo.ID || !u.IsActive {
							t.Errorf("unexpected user %+v", u)
						}
						return u, nil
					},
				)
				a.EXPECT().AssignAgencyAdmin(gomock.Any(), demo.ID, "user-2").Return(nil)
			},
			expectedRole:  types.RoleAgencyAdmin,
			expectedFirst: "jane",
		},
		{
			name:    "claims names are kept and missing agency is seeded",
			session: &types.Session{UserID: "user-3", Email: "john@homerun.example", FirstName: "John", LastName: "Roe"},
			setupMocks: func(db *MockDBClientInterface, s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "user-3").Return(nil, storage.ErrNotFound)
				s.EXPECT().GetAgencyBySlug(gomock.Any(), DemoAgencySlug).Return(nil, storage.ErrNotFound)
				runTx(db)
				db.EXPECT().AdvisoryLock(gomock.Any(), seedLockKey).Return(nil)
				s.EXPECT().InsertAgencyIfAbsent(gomock.Any(), gomock.Any()).Return(true, nil)
				s.EXPECT().GetAgencyBySlug(gomock.Any(), DemoAgencySlug).Return(demo, nil)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) { return u, nil },
				)
				a.EXPECT().AssignAgencyAdmin(gomock.Any(), demo.ID, "user-3").Return(nil)
			},
			expectedRole:  types.RoleAgencyAdmin,
			expectedFirst: "John",
		},
		{
			name:    "concurrent creation re-reads the user",
			session: &types.Session{UserID: "user-4", Email: "race@homerun.example"},
			setupMocks: func(_ *MockDBClientInterface, s *MockStorageInterface, _ *MockAuthzInterface) {
				gomock.InOrder(
					s.EXPECT().GetUserByID(gomock.Any(), "user-4").Return(nil, storage.ErrNotFound),
					s.EXPECT().GetUserByID(gomock.Any(), "user-4").Return(&types.User{ID: "user-4", Role: types.RoleAgencyAdmin, FirstName: "race"}, nil),
				)
				s.EXPECT().GetAgencyBySlug(gomock.Any(), DemoAgencySlug).Return(demo, nil)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedRole:  types.RoleAgencyAdmin,
			expectedFirst: "race",
		},
		{
			name:    "authz failure does not fail provisioning",
			session: &types.Session{UserID: "user-5", Email: "solo@homerun.example"},
			setupMocks: func(_ *MockDBClientInterface, s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "user-5").Return(nil, storage.ErrNotFound)
				s.EXPECT().GetAgencyBySlug(gomock.Any(), DemoAgencySlug).Return(demo, nil)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) { return u, nil },
				)
				a.EXPECT().AssignAgencyAdmin(gomock.Any(), demo.ID, "user-5").Return(fmt.Errorf("openfga down"))
			},
			expectedRole:  types.RoleAgencyAdmin,
			expectedFirst: "solo",
		},
		{
			name:    "store failure",
			session: &types.Session{UserID: "user-6"},
			setupMocks: func(_ *MockDBClientInterface, s *MockStorageInterface, _ *MockAuthzInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "user-6").Return(nil, fmt.Errorf("connection refused"))
			},
			expectAnyErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := NewMockDBClientInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			test.setupMocks(mockDB, mockStorage, mockAuthz)

			user, err := newTestSeeder(mockDB, mockStorage, mockAuthz).EnsureDemoUser(context.Background(), test.session)

			if test.expectAnyErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", user)
				}
				if test.expectedErr != nil && !errors.Is(err, test.expectedErr) {
					t.Errorf("expected error %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if user.Role != test.expectedRole {
				t.Errorf("expected role %s, got %s", test.expectedRole, user.Role)
			}

			if test.expectedFirst != "" && user.FirstName != test.expectedFirst {
				t.Errorf("expected first name %s, got %s", test.expectedFirst, user.FirstName)
			}
		})
	}
}

func TestSeeder_EnsureSuperAdmin(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		email       string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
		expectErr   bool
	}{
		{
			name:       "missing arguments",
			setupMocks: func(*MockStorageInterface) {},
			expectErr:  true,
		},
		{
			name:  "creates operator",
			id:    "op-1",
			email: "ops@homerun.example",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "op-1").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.Role != types.RoleSuperAdmin || u.AgencyID != "" || u.FirstName != "ops" {
							t.Errorf("unexpected operator %+v", u)
						}
						return u, nil
					},
				)
			},
		},
		{
			name:  "existing operator is a no-op",
			id:    "op-1",
			email: "ops@homerun.example",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "op-1").Return(&types.User{ID: "op-1", Role: types.RoleSuperAdmin}, nil)
			},
		},
		{
			name:  "existing user with another role",
			id:    "user-1",
			email: "jane@homerun.example",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", Role: types.RoleArtist}, nil)
			},
			expectedErr: ErrRoleConflict,
			expectErr:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			user, err := newTestSeeder(NewMockDBClientInterface(ctrl), mockStorage, NewMockAuthzInterface(ctrl)).
				EnsureSuperAdmin(context.Background(), test.id, test.email)

			if test.expectErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", user)
				}
				if test.expectedErr != nil && !errors.Is(err, test.expectedErr) {
					t.Errorf("expected error %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if user.Role != types.RoleSuperAdmin {
				t.Errorf("expected super admin, got %s", user.Role)
			}
		})
	}
}
