// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/openfga"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go

type verdictMonitor struct {
	*monitoring.NoopMonitor

	verdicts []map[string]string
}

func (m *verdictMonitor) IncAccessVerdict(tags map[string]string) error {
	m.verdicts = append(m.verdicts, tags)
	return nil
}

var (
	acme  = &types.Agency{ID: "agency-acme", Slug: "acme", Name: "Acme Records"}
	other = &types.Agency{ID: "agency-other", Slug: "other", Name: "Other Records"}

	superAdmin   = &types.User{ID: "u-super", Role: types.RoleSuperAdmin, IsActive: true}
	acmeAdmin    = &types.User{ID: "u-admin", Role: types.RoleAgencyAdmin, AgencyID: acme.ID, IsActive: true}
	otherAdmin   = &types.User{ID: "u-other", Role: types.RoleAgencyAdmin, AgencyID: other.ID, IsActive: true}
	acmeMember   = &types.User{ID: "u-member", Role: types.RoleAgencyMember, AgencyID: acme.ID, IsActive: true}
	janeArtist   = &types.User{ID: "u-jane", Role: types.RoleArtist, AgencyID: acme.ID, ArtistID: "artist-jane", IsActive: true}
	inactiveUser = &types.User{ID: "u-inactive", Role: types.RoleAgencyAdmin, AgencyID: acme.ID, IsActive: false}
	unknownRole  = &types.User{ID: "u-weird", Role: types.Role("owner"), AgencyID: acme.ID, IsActive: true}

	janeTenant     = &types.Tenant{ID: "tenant-jane", AgencyID: acme.ID, ArtistID: "artist-jane", Slug: "jane-doe", IsActive: true}
	johnTenant     = &types.Tenant{ID: "tenant-john", AgencyID: acme.ID, ArtistID: "artist-john", Slug: "john-roe", IsActive: true}
	archivedTenant = &types.Tenant{ID: "tenant-old", AgencyID: acme.ID, ArtistID: "artist-old", Slug: "old-act", IsActive: false}
)

func session(u *types.User) *types.Session {
	return &types.Session{UserID: u.ID}
}

func expectUser(s *MockStorageInterface, u *types.User) {
	s.EXPECT().GetUserByID(gomock.Any(), u.ID).Return(u, nil)
}

func expectAgency(s *MockStorageInterface, a *types.Agency) {
	s.EXPECT().GetAgencyBySlug(gomock.Any(), a.Slug).Return(a, nil)
}

func expectTenant(s *MockStorageInterface, agencyID string, t *types.Tenant) {
	s.EXPECT().GetTenantBySlug(gomock.Any(), agencyID, t.Slug).Return(t, nil)
}

func newTestAuthorizer(ctrl *gomock.Controller, store StorageInterface, checker MembershipCheckerInterface) (*Authorizer, *verdictMonitor) {
	logger := logging.NewNoopLogger()
	monitor := &verdictMonitor{NoopMonitor: monitoring.NewNoopMonitor("test", logger)}

	cache := NewMockCacheInterface(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(nil).AnyTimes()

	a := NewAuthorizer(store, checker, NewMockAuthzClientInterface(ctrl), cache, time.Minute, tracing.NewNoopTracer(), monitor, logger)

	return a, monitor
}

func TestAuthorizer_ResolveAccess(t *testing.T) {
	storeErr := errors.New("connection reset")

	testCases := []struct {
		name            string
		session         *types.Session
		path            string
		setupMocks      func(*MockStorageInterface)
		expectedOutcome Outcome
		expectedTarget  string
		expectedTenant  *types.Tenant
		expectedErr     bool
	}{
		{
			name:            "public root without session",
			path:            "/",
			setupMocks:      func(*MockStorageInterface) {},
			expectedOutcome: OutcomeAllow,
		},
		{
			name:            "public login page with session",
			session:         session(acmeAdmin),
			path:            "/auth/login",
			setupMocks:      func(*MockStorageInterface) {},
			expectedOutcome: OutcomeAllow,
		},
		{
			name:            "no session on agency page",
			path:            "/agency/acme",
			setupMocks:      func(*MockStorageInterface) {},
			expectedOutcome: OutcomeRedirectLogin,
			expectedTarget:  "/auth/login?next=%2Fagency%2Facme",
		},
		{
			name:            "no session on non tenant page",
			path:            "/dashboard",
			setupMocks:      func(*MockStorageInterface) {},
			expectedOutcome: OutcomeRedirectLogin,
			expectedTarget:  "/auth/login?next=%2Fdashboard",
		},
		{
			name:            "session on non tenant page",
			session:         session(acmeMember),
			path:            "/dashboard",
			setupMocks:      func(*MockStorageInterface) {},
			expectedOutcome: OutcomeAllow,
		},
		{
			name:    "unknown user is not provisioned on read",
			session: &types.Session{UserID: "u-ghost"},
			path:    "/agency/acme",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "u-ghost").Return(nil, storage.ErrNotFound)
			},
			expectedOutcome: OutcomeRedirectUnauthorized,
			expectedTarget:  UnauthorizedPath,
		},
		{
			name:    "inactive user",
			session: session(inactiveUser),
			path:    "/agency/acme",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, inactiveUser)
			},
			expectedOutcome: OutcomeRedirectUnauthorized,
			expectedTarget:  UnauthorizedPath,
		},
		{
			name:    "unknown role is never privileged",
			session: session(unknownRole),
			path:    "/agency/acme",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, unknownRole)
			},
			expectedOutcome: OutcomeRedirectUnauthorized,
			expectedTarget:  UnauthorizedPath,
		},
		{
			name:    "agency admin on own agency",
			session: session(acmeAdmin),
			path:    "/agency/acme",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, acmeAdmin)
				expectAgency(s, acme)
			},
			expectedOutcome: OutcomeAllow,
		},
		{
			name:    "agency admin on foreign agency",
			session: session(otherAdmin),
			path:    "/agency/acme",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, otherAdmin)
				expectAgency(s, acme)
			},
			expectedOutcome: OutcomeRedirectUnauthorized,
			expectedTarget:  UnauthorizedPath,
		},
		{
			name:    "agency member on unknown agency",
			session: session(acmeMember),
			path:    "/agency/nowhere",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, acmeMember)
				s.EXPECT().GetAgencyBySlug(gomock.Any(), "nowhere").Return(nil, storage.ErrNotFound)
			},
			expectedOutcome: OutcomeRedirectUnauthorized,
			expectedTarget:  UnauthorizedPath,
		},
		{
			name:    "super admin on any agency",
			session: session(superAdmin),
			path:    "/agency/other",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, superAdmin)
				expectAgency(s, other)
			},
			expectedOutcome: OutcomeAllow,
		},
		{
			name:    "super admin on unknown agency",
			session: session(superAdmin),
			path:    "/agency/nowhere",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, superAdmin)
				s.EXPECT().GetAgencyBySlug(gomock.Any(), "nowhere").Return(nil, storage.ErrNotFound)
			},
			expectedOutcome: OutcomeNotFound,
		},
		{
			name:    "super admin on admin section",
			session: session(superAdmin),
			path:    "/admin",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, superAdmin)
			},
			expectedOutcome: OutcomeAllow,
		},
		{
			name:    "agency admin on admin section",
			session: session(acmeAdmin),
			path:    "/admin/agencies",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, acmeAdmin)
			},
			expectedOutcome: OutcomeRedirectUnauthorized,
			expectedTarget:  UnauthorizedPath,
		},
		{
			name:    "artist on own tenant",
			session: session(janeArtist),
			path:    "/agency/acme/artist/jane-doe",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, janeArtist)
				expectAgency(s, acme)
				expectTenant(s, acme.ID, janeTenant)
			},
			expectedOutcome: OutcomeAllow,
			expectedTenant:  janeTenant,
		},
		{
			name:    "artist on foreign tenant",
			session: session(janeArtist),
			path:    "/agency/acme/artist/john-roe",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, janeArtist)
				expectAgency(s, acme)
				expectTenant(s, acme.ID, johnTenant)
			},
			expectedOutcome: OutcomeRedirectUnauthorized,
			expectedTarget:  UnauthorizedPath,
		},
		{
			name:    "artist on unknown tenant",
			session: session(janeArtist),
			path:    "/agency/acme/artist/nobody",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, janeArtist)
				expectAgency(s, acme)
				s.EXPECT().GetTenantBySlug(gomock.Any(), acme.ID, "nobody").Return(nil, storage.ErrNotFound)
			},
			expectedOutcome: OutcomeRedirectUnauthorized,
			expectedTarget:  UnauthorizedPath,
		},
		{
			name:    "artist on agency overview",
			session: session(janeArtist),
			path:    "/agency/acme",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, janeArtist)
				expectAgency(s, acme)
			},
			expectedOutcome: OutcomeAllow,
		},
		{
			name:    "agency member on any tenant of own agency",
			session: session(acmeMember),
			path:    "/api/agencies/acme/artists/john-roe/metrics",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, acmeMember)
				expectAgency(s, acme)
				expectTenant(s, acme.ID, johnTenant)
			},
			expectedOutcome: OutcomeAllow,
			expectedTenant:  johnTenant,
		},
		{
			name:    "agency admin on unknown tenant",
			session: session(acmeAdmin),
			path:    "/agency/acme/artist/nobody",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, acmeAdmin)
				expectAgency(s, acme)
				s.EXPECT().GetTenantBySlug(gomock.Any(), acme.ID, "nobody").Return(nil, storage.ErrNotFound)
			},
			expectedOutcome: OutcomeNotFound,
		},
		{
			name:    "agency admin on inactive tenant",
			session: session(acmeAdmin),
			path:    "/agency/acme/artist/old-act",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, acmeAdmin)
				expectAgency(s, acme)
				expectTenant(s, acme.ID, archivedTenant)
			},
			expectedOutcome: OutcomeNotFound,
		},
		{
			name:    "user store failure",
			session: session(acmeAdmin),
			path:    "/agency/acme",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), acmeAdmin.ID).Return(nil, storeErr)
			},
			expectedErr: true,
		},
		{
			name:    "agency store failure",
			session: session(acmeAdmin),
			path:    "/agency/acme",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, acmeAdmin)
				s.EXPECT().GetAgencyBySlug(gomock.Any(), "acme").Return(nil, storeErr)
			},
			expectedErr: true,
		},
		{
			name:    "tenant store failure",
			session: session(acmeAdmin),
			path:    "/agency/acme/artist/jane-doe",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, acmeAdmin)
				expectAgency(s, acme)
				s.EXPECT().GetTenantBySlug(gomock.Any(), acme.ID, "jane-doe").Return(nil, storeErr)
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			a, monitor := newTestAuthorizer(ctrl, mockStorage, NewRecordChecker())

			verdict, err := a.ResolveAccess(context.Background(), tc.session, ParsePath(tc.path))

			if tc.expectedErr {
				if err == nil {
					t.Fatalf("expected error, got verdict %+v", verdict)
				}
				if len(monitor.verdicts) != 0 {
					t.Errorf("store failures must not be counted as verdicts")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if verdict.Outcome != tc.expectedOutcome {
				t.Errorf("expected outcome %s, got %s (%s)", tc.expectedOutcome, verdict.Outcome, verdict.Reason)
			}

			if verdict.RedirectTo != tc.expectedTarget {
				t.Errorf("expected redirect %q, got %q", tc.expectedTarget, verdict.RedirectTo)
			}

			if tc.expectedTenant != nil && (verdict.Access == nil || verdict.Access.Tenant != tc.expectedTenant) {
				t.Errorf("expected tenant %s in access, got %+v", tc.expectedTenant.ID, verdict.Access)
			}

			if len(monitor.verdicts) != 1 || monitor.verdicts[0]["outcome"] != string(tc.expectedOutcome) {
				t.Errorf("expected one verdict metric for %s, got %v", tc.expectedOutcome, monitor.verdicts)
			}
		})
	}
}

func TestAuthorizer_ResolveAccessAllowCarriesAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	expectUser(mockStorage, acmeAdmin)
	expectAgency(mockStorage, acme)

	a, _ := newTestAuthorizer(ctrl, mockStorage, NewRecordChecker())

	verdict, err := a.ResolveAccess(context.Background(), session(acmeAdmin), ParsePath("/agency/acme"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !verdict.Allowed() || verdict.Access == nil {
		t.Fatalf("expected allowed verdict with access, got %+v", verdict)
	}

	if verdict.Access.User != acmeAdmin || verdict.Access.Agency != acme || verdict.Access.Tenant != nil {
		t.Errorf("unexpected access %+v", verdict.Access)
	}
}

func TestAuthorizer_ResolveAccessUsesCachedPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := logging.NewNoopLogger()
	mockStorage := NewMockStorageInterface(ctrl)
	mockCache := NewMockCacheInterface(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "principal:"+acmeAdmin.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, v interface{}) (bool, error) {
			*(v.(*types.User)) = *acmeAdmin
			return true, nil
		},
	)
	expectAgency(mockStorage, acme)

	a := NewAuthorizer(mockStorage, NewRecordChecker(), NewMockAuthzClientInterface(ctrl), mockCache, time.Minute, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	verdict, err := a.ResolveAccess(context.Background(), session(acmeAdmin), ParsePath("/agency/acme"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !verdict.Allowed() {
		t.Errorf("expected allow, got %+v", verdict)
	}
}

func TestAuthorizer_ResolveAccessCacheFailureFallsBackToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := logging.NewNoopLogger()
	mockStorage := NewMockStorageInterface(ctrl)
	mockCache := NewMockCacheInterface(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	mockCache.EXPECT().Set(gomock.Any(), "principal:"+acmeAdmin.ID, acmeAdmin, time.Minute).Return(errors.New("redis down"))
	expectUser(mockStorage, acmeAdmin)
	expectAgency(mockStorage, acme)

	a := NewAuthorizer(mockStorage, NewRecordChecker(), NewMockAuthzClientInterface(ctrl), mockCache, time.Minute, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	verdict, err := a.ResolveAccess(context.Background(), session(acmeAdmin), ParsePath("/agency/acme"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !verdict.Allowed() {
		t.Errorf("expected allow, got %+v", verdict)
	}
}

func TestAuthorizer_ResolveAccessWithRelationshipChecker(t *testing.T) {
	testCases := []struct {
		name            string
		user            *types.User
		path            string
		setupMocks      func(*MockStorageInterface, *MockMembershipCheckerInterface)
		expectedOutcome Outcome
		expectedErr     bool
	}{
		{
			name: "member relation granted",
			user: otherAdmin,
			path: "/agency/acme",
			setupMocks: func(s *MockStorageInterface, c *MockMembershipCheckerInterface) {
				expectUser(s, otherAdmin)
				expectAgency(s, acme)
				c.EXPECT().IsAgencyMember(gomock.Any(), otherAdmin, acme).Return(true, nil)
			},
			expectedOutcome: OutcomeAllow,
		},
		{
			name: "member relation missing",
			user: acmeAdmin,
			path: "/agency/acme",
			setupMocks: func(s *MockStorageInterface, c *MockMembershipCheckerInterface) {
				expectUser(s, acmeAdmin)
				expectAgency(s, acme)
				c.EXPECT().IsAgencyMember(gomock.Any(), acmeAdmin, acme).Return(false, nil)
			},
			expectedOutcome: OutcomeRedirectUnauthorized,
		},
		{
			name: "super admin skips membership",
			user: superAdmin,
			path: "/agency/acme",
			setupMocks: func(s *MockStorageInterface, c *MockMembershipCheckerInterface) {
				expectUser(s, superAdmin)
				expectAgency(s, acme)
			},
			expectedOutcome: OutcomeAllow,
		},
		{
			name: "artist relation checked for artist role",
			user: janeArtist,
			path: "/agency/acme/artist/john-roe",
			setupMocks: func(s *MockStorageInterface, c *MockMembershipCheckerInterface) {
				expectUser(s, janeArtist)
				expectAgency(s, acme)
				expectTenant(s, acme.ID, johnTenant)
				c.EXPECT().IsAgencyMember(gomock.Any(), janeArtist, acme).Return(true, nil)
				c.EXPECT().IsTenantArtist(gomock.Any(), janeArtist, johnTenant).Return(true, nil)
			},
			expectedOutcome: OutcomeAllow,
		},
		{
			name: "checker failure",
			user: acmeAdmin,
			path: "/agency/acme",
			setupMocks: func(s *MockStorageInterface, c *MockMembershipCheckerInterface) {
				expectUser(s, acmeAdmin)
				expectAgency(s, acme)
				c.EXPECT().IsAgencyMember(gomock.Any(), acmeAdmin, acme).Return(false, errors.New("fga unavailable"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockChecker := NewMockMembershipCheckerInterface(ctrl)
			tc.setupMocks(mockStorage, mockChecker)

			a, _ := newTestAuthorizer(ctrl, mockStorage, mockChecker)

			verdict, err := a.ResolveAccess(context.Background(), session(tc.user), ParsePath(tc.path))

			if tc.expectedErr {
				if err == nil {
					t.Errorf("expected error, got %+v", verdict)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if verdict.Outcome != tc.expectedOutcome {
				t.Errorf("expected %s, got %s", tc.expectedOutcome, verdict.Outcome)
			}
		})
	}
}

func TestAuthorizer_LandingPath(t *testing.T) {
	testCases := []struct {
		name       string
		session    *types.Session
		next       string
		setupMocks func(*MockStorageInterface)
		expected   string
	}{
		{
			name:       "no session",
			setupMocks: func(*MockStorageInterface) {},
			expected:   LoginPath,
		},
		{
			name:    "super admin",
			session: session(superAdmin),
			next:    "/agency/acme",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, superAdmin)
			},
			expected: "/admin",
		},
		{
			name:    "agency user",
			session: session(acmeAdmin),
			next:    "/somewhere",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, acmeAdmin)
				s.EXPECT().GetAgencyByID(gomock.Any(), acme.ID).Return(acme, nil)
			},
			expected: "/agency/acme",
		},
		{
			name:    "unknown user keeps next",
			session: &types.Session{UserID: "u-ghost"},
			next:    "/welcome",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "u-ghost").Return(nil, storage.ErrNotFound)
			},
			expected: "/welcome",
		},
		{
			name:    "unknown user with external next",
			session: &types.Session{UserID: "u-ghost"},
			next:    "https://evil.example.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "u-ghost").Return(nil, storage.ErrNotFound)
			},
			expected: "/",
		},
		{
			name:    "agency record gone",
			session: session(acmeMember),
			next:    "/welcome",
			setupMocks: func(s *MockStorageInterface) {
				expectUser(s, acmeMember)
				s.EXPECT().GetAgencyByID(gomock.Any(), acme.ID).Return(nil, storage.ErrNotFound)
			},
			expected: "/welcome",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			a, _ := newTestAuthorizer(ctrl, mockStorage, NewRecordChecker())

			got, err := a.LandingPath(context.Background(), tc.session, tc.next)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestAuthorizer_ForgetPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := logging.NewNoopLogger()
	mockCache := NewMockCacheInterface(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), "principal:u-1").Return(nil)

	a := NewAuthorizer(NewMockStorageInterface(ctrl), NewRecordChecker(), NewMockAuthzClientInterface(ctrl), mockCache, time.Minute, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	a.ForgetPrincipal(context.Background(), "u-1")
}

func TestAuthorizer_TupleAssignments(t *testing.T) {
	testCases := []struct {
		name     string
		call     func(*Authorizer) error
		expected openfga.Tuple
	}{
		{
			name:     "agency admin",
			call:     func(a *Authorizer) error { return a.AssignAgencyAdmin(context.Background(), "a1", "u1") },
			expected: openfga.Tuple{User: "user:u1", Relation: ADMIN_RELATION, Object: "agency:a1"},
		},
		{
			name:     "agency member",
			call:     func(a *Authorizer) error { return a.AssignAgencyMember(context.Background(), "a1", "u1") },
			expected: openfga.Tuple{User: "user:u1", Relation: MEMBER_RELATION, Object: "agency:a1"},
		},
		{
			name:     "tenant to agency",
			call:     func(a *Authorizer) error { return a.LinkTenantToAgency(context.Background(), "t1", "a1") },
			expected: openfga.Tuple{User: "agency:a1", Relation: AGENCY_RELATION, Object: "tenant:t1"},
		},
		{
			name:     "tenant artist",
			call:     func(a *Authorizer) error { return a.AssignTenantArtist(context.Background(), "t1", "u1") },
			expected: openfga.Tuple{User: "user:u1", Relation: ARTIST_RELATION, Object: "tenant:t1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := logging.NewNoopLogger()
			mockClient := NewMockAuthzClientInterface(ctrl)
			mockClient.EXPECT().WriteTuples(gomock.Any(), tc.expected).Return(nil)

			a := NewAuthorizer(NewMockStorageInterface(ctrl), NewRecordChecker(), mockClient, NewMockCacheInterface(ctrl), time.Minute, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			if err := tc.call(a); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_ValidateModel(t *testing.T) {
	testCases := []struct {
		name        string
		equal       bool
		clientErr   error
		expectedErr error
	}{
		{name: "model matches", equal: true},
		{name: "model differs", equal: false, expectedErr: ErrInvalidAuthModel},
		{name: "client error", clientErr: errors.New("unreachable")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := logging.NewNoopLogger()
			mockClient := NewMockAuthzClientInterface(ctrl)
			mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(tc.equal, tc.clientErr)

			a := NewAuthorizer(NewMockStorageInterface(ctrl), NewRecordChecker(), mockClient, NewMockCacheInterface(ctrl), time.Minute, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			err := a.ValidateModel(context.Background())

			switch {
			case tc.clientErr != nil:
				if !errors.Is(err, tc.clientErr) {
					t.Errorf("expected client error, got %v", err)
				}
			case tc.expectedErr != nil:
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
			default:
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}
