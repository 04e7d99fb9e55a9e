// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/connectors"
)

//go:generate mockgen -build_flags=--mod=mod -package agency -destination ./mock_interfaces.go -source=./interfaces.go

var (
	acme = &types.Agency{
		ID:       "agency-acme",
		Slug:     "acme",
		Settings: types.AgencySettings{Features: types.Features{MaxArtists: 2}},
	}
	acmeAdmin  = &types.User{ID: "user-admin", Role: types.RoleAgencyAdmin, AgencyID: acme.ID, IsActive: true}
	acmeMember = &types.User{ID: "user-member", Role: types.RoleAgencyMember, AgencyID: acme.ID, IsActive: true}
	superAdmin = &types.User{ID: "user-root", Role: types.RoleSuperAdmin, IsActive: true}
	janeTenant = &types.Tenant{ID: "tenant-jane", AgencyID: acme.ID, ArtistID: "artist-jane", Slug: "jane-doe", IsActive: true}
	jane       = &types.Artist{ID: "artist-jane", AgencyID: acme.ID, Name: "Jane Doe", IsActive: true, Tenant: janeTenant}
)

func newTestService(s StorageInterface, a AuthorizerInterface, c CollectorInterface) *Service {
	logger := logging.NewNoopLogger()
	return NewService(s, a, c, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestService_AgencyDashboard(t *testing.T) {
	session := &types.Session{UserID: acmeAdmin.ID}
	allow := &authorization.Verdict{Outcome: authorization.OutcomeAllow, Access: &authorization.Access{User: acmeAdmin, Agency: acme}}

	tests := []struct {
		name            string
		ctx             func() context.Context
		setupMocks      func(*MockStorageInterface, *MockAuthorizerInterface)
		expectedOutcome authorization.Outcome
		expectedArtists int
		expectedStreams int64
		expectedManage  bool
		expectedLimit   bool
		expectedErr     bool
	}{
		{
			name: "resolves access and loads page data",
			ctx:  context.Background,
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), session, authorization.ParsePath("/agency/acme")).Return(allow, nil)
				s.EXPECT().ListActiveArtistsByAgency(gomock.Any(), acme.ID).Return([]*types.Artist{jane}, nil)
				s.EXPECT().GetLatestAgencyAnalytics(gomock.Any(), acme.ID, "month").Return(&types.AgencyAnalytics{TotalStreams: 1200, TotalFans: 40}, nil)
			},
			expectedOutcome: authorization.OutcomeAllow,
			expectedArtists: 1,
			expectedStreams: 1200,
			expectedManage:  true,
		},
		{
			name: "reuses access resolved by the gatekeeper",
			ctx: func() context.Context {
				return authorization.WithAccess(context.Background(), "/agency/acme", &authorization.Access{User: acmeMember, Agency: acme})
			},
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().ListActiveArtistsByAgency(gomock.Any(), acme.ID).Return([]*types.Artist{jane, {ID: "artist-john", IsActive: true}}, nil)
				s.EXPECT().GetLatestAgencyAnalytics(gomock.Any(), acme.ID, "month").Return(nil, storage.ErrNotFound)
			},
			expectedOutcome: authorization.OutcomeAllow,
			expectedArtists: 2,
			expectedLimit:   true,
		},
		{
			name: "access resolved for another path is not reused",
			ctx: func() context.Context {
				return authorization.WithAccess(context.Background(), "/agency/other", &authorization.Access{User: acmeMember, Agency: acme})
			},
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), session, gomock.Any()).
					Return(&authorization.Verdict{Outcome: authorization.OutcomeRedirectUnauthorized, RedirectTo: authorization.UnauthorizedPath}, nil)
			},
			expectedOutcome: authorization.OutcomeRedirectUnauthorized,
		},
		{
			name: "fetch failures degrade to empty results",
			ctx:  context.Background,
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), session, gomock.Any()).
					Return(&authorization.Verdict{Outcome: authorization.OutcomeAllow, Access: &authorization.Access{User: superAdmin, Agency: acme}}, nil)
				s.EXPECT().ListActiveArtistsByAgency(gomock.Any(), acme.ID).Return(nil, fmt.Errorf("timeout"))
				s.EXPECT().GetLatestAgencyAnalytics(gomock.Any(), acme.ID, "month").Return(nil, fmt.Errorf("timeout"))
			},
			expectedOutcome: authorization.OutcomeAllow,
			expectedManage:  true,
		},
		{
			name: "no session redirects to login",
			ctx:  context.Background,
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), session, gomock.Any()).
					Return(&authorization.Verdict{Outcome: authorization.OutcomeRedirectLogin, RedirectTo: "/auth/login?next=%2Fagency%2Facme"}, nil)
			},
			expectedOutcome: authorization.OutcomeRedirectLogin,
		},
		{
			name: "resolution error",
			ctx:  context.Background,
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), session, gomock.Any()).Return(nil, fmt.Errorf("connection refused"))
			},
			expectedErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			test.setupMocks(mockStorage, mockAuthz)

			dashboard, verdict, err := newTestService(mockStorage, mockAuthz, NewMockCollectorInterface(ctrl)).
				AgencyDashboard(test.ctx(), session, "acme")

			if test.expectedErr {
				if err == nil {
					t.Errorf("expected error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if verdict.Outcome != test.expectedOutcome {
				t.Fatalf("expected outcome %s, got %s", test.expectedOutcome, verdict.Outcome)
			}

			if !verdict.Allowed() {
				if dashboard != nil {
					t.Errorf("expected no dashboard, got %+v", dashboard)
				}
				return
			}

			if len(dashboard.Artists) != test.expectedArtists || dashboard.Stats.TotalArtists != test.expectedArtists {
				t.Errorf("expected %d artists, got %d", test.expectedArtists, len(dashboard.Artists))
			}

			if dashboard.Stats.TotalStreams != test.expectedStreams {
				t.Errorf("expected %d streams, got %d", test.expectedStreams, dashboard.Stats.TotalStreams)
			}

			if dashboard.CanManageArtists != test.expectedManage {
				t.Errorf("expected can manage %v, got %v", test.expectedManage, dashboard.CanManageArtists)
			}

			if dashboard.Stats.LimitReached != test.expectedLimit {
				t.Errorf("expected limit reached %v, got %v", test.expectedLimit, dashboard.Stats.LimitReached)
			}
		})
	}
}

func TestService_ArtistDashboard(t *testing.T) {
	session := &types.Session{UserID: acmeAdmin.ID}
	allow := &authorization.Verdict{
		Outcome: authorization.OutcomeAllow,
		Access:  &authorization.Access{User: acmeAdmin, Agency: acme, Tenant: janeTenant},
	}
	synced := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	collection := &connectors.Collection{
		Updates: []types.MetricUpdate{{Type: types.MetricStreaming, Source: connectors.SourceMock}},
		Sources: []types.DataSource{{Type: connectors.SourceMock, Status: types.DataSourceConnected, LastSync: &synced}},
	}

	tests := []struct {
		name            string
		setupMocks      func(*MockStorageInterface, *MockAuthorizerInterface, *MockCollectorInterface)
		expectedOutcome authorization.Outcome
		expectedTotal   int64
		expectedErr     bool
	}{
		{
			name: "loads metrics and connector data",
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface, c *MockCollectorInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), session, authorization.ParsePath("/agency/acme/artist/jane-doe")).Return(allow, nil)
				s.EXPECT().GetArtistByID(gomock.Any(), jane.ID).Return(jane, nil)
				s.EXPECT().GetTenantMetrics(gomock.Any(), janeTenant.ID).Return(&types.TenantMetrics{FanBase: types.FanBaseMetrics{Total: 99}}, nil)
				c.EXPECT().Collect(gomock.Any(), jane).Return(collection)
			},
			expectedOutcome: authorization.OutcomeAllow,
			expectedTotal:   99,
		},
		{
			name: "metrics failure degrades to zero rows",
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface, c *MockCollectorInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), session, gomock.Any()).Return(allow, nil)
				s.EXPECT().GetArtistByID(gomock.Any(), jane.ID).Return(jane, nil)
				s.EXPECT().GetTenantMetrics(gomock.Any(), janeTenant.ID).Return(nil, fmt.Errorf("timeout"))
				c.EXPECT().Collect(gomock.Any(), jane).Return(collection)
			},
			expectedOutcome: authorization.OutcomeAllow,
		},
		{
			name: "unknown tenant",
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface, c *MockCollectorInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), session, gomock.Any()).Return(&authorization.Verdict{Outcome: authorization.OutcomeNotFound}, nil)
			},
			expectedOutcome: authorization.OutcomeNotFound,
		},
		{
			name: "artist lookup failure",
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface, c *MockCollectorInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), session, gomock.Any()).Return(allow, nil)
				s.EXPECT().GetArtistByID(gomock.Any(), jane.ID).Return(nil, fmt.Errorf("timeout"))
			},
			expectedErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockCollector := NewMockCollectorInterface(ctrl)
			test.setupMocks(mockStorage, mockAuthz, mockCollector)

			dashboard, verdict, err := newTestService(mockStorage, mockAuthz, mockCollector).
				ArtistDashboard(context.Background(), session, "acme", "jane-doe")

			if test.expectedErr {
				if err == nil {
					t.Errorf("expected error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if verdict.Outcome != test.expectedOutcome {
				t.Fatalf("expected outcome %s, got %s", test.expectedOutcome, verdict.Outcome)
			}

			if !verdict.Allowed() {
				return
			}

			if dashboard.Metrics == nil || dashboard.Metrics.FanBase.Total != test.expectedTotal {
				t.Errorf("unexpected metrics %+v", dashboard.Metrics)
			}

			if dashboard.Metrics.Engagement.TenantID != janeTenant.ID && test.expectedTotal == 0 {
				t.Errorf("expected zero rows bound to tenant, got %+v", dashboard.Metrics.Engagement)
			}

			if len(dashboard.DataSources) != 1 || dashboard.DataSources[0].Status != types.DataSourceConnected {
				t.Errorf("unexpected data sources %+v", dashboard.DataSources)
			}
		})
	}
}

func TestService_AddMember(t *testing.T) {
	adminAccess := &authorization.Access{User: acmeAdmin, Agency: acme}
	echo := func(_ context.Context, u *types.User) (*types.User, error) { return u, nil }

	tests := []struct {
		name        string
		access      *authorization.Access
		input       *MemberInput
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface)
		expectedErr error
		expectErr   bool
	}{
		{
			name:        "member cannot add members",
			access:      &authorization.Access{User: acmeMember, Agency: acme},
			input:       &MemberInput{UserID: "user-new", Email: "new@acme.example", Role: types.RoleAgencyMember},
			setupMocks:  func(*MockStorageInterface, *MockAuthorizerInterface) {},
			expectedErr: ErrForbidden,
			expectErr:   true,
		},
		{
			name:        "missing access",
			input:       &MemberInput{UserID: "user-new", Role: types.RoleAgencyMember},
			setupMocks:  func(*MockStorageInterface, *MockAuthorizerInterface) {},
			expectedErr: ErrForbidden,
			expectErr:   true,
		},
		{
			name:        "super admin role cannot be granted",
			access:      adminAccess,
			input:       &MemberInput{UserID: "user-new", Role: types.RoleSuperAdmin},
			setupMocks:  func(*MockStorageInterface, *MockAuthorizerInterface) {},
			expectedErr: ErrInvalidRole,
			expectErr:   true,
		},
		{
			name:   "adds agency member",
			access: adminAccess,
			input:  &MemberInput{UserID: "user-new", Email: "new@acme.example", Role: types.RoleAgencyMember},
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.AgencyID != acme.ID || u.ArtistID != "" || !u.IsActive {
							t.Errorf("unexpected user %+v", u)
						}
						return u, nil
					},
				)
				a.EXPECT().ForgetPrincipal(gomock.Any(), "user-new")
				a.EXPECT().AssignAgencyMember(gomock.Any(), acme.ID, "user-new").Return(nil)
			},
		},
		{
			name:   "adds agency admin",
			access: &authorization.Access{User: superAdmin, Agency: acme},
			input:  &MemberInput{UserID: "user-new", Email: "new@acme.example", Role: types.RoleAgencyAdmin},
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(echo)
				a.EXPECT().ForgetPrincipal(gomock.Any(), "user-new")
				a.EXPECT().AssignAgencyAdmin(gomock.Any(), acme.ID, "user-new").Return(fmt.Errorf("openfga down"))
			},
		},
		{
			name:   "adds artist bound to its tenant",
			access: adminAccess,
			input:  &MemberInput{UserID: "user-jane", Email: "jane@acme.example", Role: types.RoleArtist, ArtistID: jane.ID},
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetArtistByID(gomock.Any(), jane.ID).Return(jane, nil)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(echo)
				a.EXPECT().ForgetPrincipal(gomock.Any(), "user-jane")
				a.EXPECT().AssignAgencyMember(gomock.Any(), acme.ID, "user-jane").Return(nil)
				a.EXPECT().AssignTenantArtist(gomock.Any(), janeTenant.ID, "user-jane").Return(nil)
			},
		},
		{
			name:   "artist of another agency",
			access: adminAccess,
			input:  &MemberInput{UserID: "user-john", Role: types.RoleArtist, ArtistID: "artist-john"},
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetArtistByID(gomock.Any(), "artist-john").Return(&types.Artist{ID: "artist-john", AgencyID: "agency-other"}, nil)
			},
			expectedErr: ErrInvalidArtist,
			expectErr:   true,
		},
		{
			name:   "unknown artist",
			access: adminAccess,
			input:  &MemberInput{UserID: "user-john", Role: types.RoleArtist, ArtistID: "artist-ghost"},
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetArtistByID(gomock.Any(), "artist-ghost").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvalidArtist,
			expectErr:   true,
		},
		{
			name:   "existing user",
			access: adminAccess,
			input:  &MemberInput{UserID: "user-member", Role: types.RoleAgencyMember},
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrMemberExists,
			expectErr:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			test.setupMocks(mockStorage, mockAuthz)

			user, err := newTestService(mockStorage, mockAuthz, NewMockCollectorInterface(ctrl)).
				AddMember(context.Background(), test.access, test.input)

			if test.expectErr {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected error %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if user.ID != test.input.UserID || user.Role != test.input.Role {
				t.Errorf("unexpected user %+v", user)
			}
		})
	}
}

func TestService_ListMembers(t *testing.T) {
	artistUser := &types.User{ID: "user-jane", Role: types.RoleArtist, AgencyID: acme.ID, ArtistID: jane.ID, IsActive: true}

	tests := []struct {
		name          string
		access        *authorization.Access
		setupMocks    func(*MockStorageInterface)
		expectedCount int
		expectedErr   error
	}{
		{
			name:        "no access",
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrForbidden,
		},
		{
			name:        "artists cannot list peers",
			access:      &authorization.Access{User: artistUser, Agency: acme},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrForbidden,
		},
		{
			name:   "member lists the agency",
			access: &authorization.Access{User: acmeMember, Agency: acme},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListUsersByAgency(gomock.Any(), acme.ID).Return([]*types.User{acmeAdmin, acmeMember, artistUser}, nil)
			},
			expectedCount: 3,
		},
		{
			name:   "store failure",
			access: &authorization.Access{User: acmeAdmin, Agency: acme},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListUsersByAgency(gomock.Any(), acme.ID).Return(nil, fmt.Errorf("timeout"))
			},
			expectedErr: errors.New("any"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			users, err := newTestService(mockStorage, NewMockAuthorizerInterface(ctrl), NewMockCollectorInterface(ctrl)).
				ListMembers(context.Background(), test.access)

			if test.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error, got %v", users)
				}
				if errors.Is(test.expectedErr, ErrForbidden) && !errors.Is(err, ErrForbidden) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(users) != test.expectedCount {
				t.Errorf("expected %d members, got %d", test.expectedCount, len(users))
			}
		})
	}
}
