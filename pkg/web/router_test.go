// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/identity"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
	"github.com/canonical/agency-service/pkg/admin"
	"github.com/canonical/agency-service/pkg/agency"
	"github.com/canonical/agency-service/pkg/artists"
	"github.com/canonical/agency-service/pkg/authentication"
	"github.com/canonical/agency-service/pkg/gatekeeper"
	"github.com/canonical/agency-service/pkg/status"
	"github.com/canonical/agency-service/pkg/webhooks"
)

func TestNewRouter(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		userID           string
		setupMocks       func(*gatekeeper.MockResolverInterface, *status.MockPingerInterface, *artists.MockServiceInterface, *admin.MockServiceInterface)
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:   "status is public",
			method: http.MethodGet,
			path:   "/api/v0/status",
			setupMocks: func(r *gatekeeper.MockResolverInterface, _ *status.MockPingerInterface, _ *artists.MockServiceInterface, _ *admin.MockServiceInterface) {
				r.EXPECT().ResolveAccess(gomock.Any(), nil, authorization.ParsePath("/api/v0/status")).
					Return(&authorization.Verdict{Outcome: authorization.OutcomeAllow}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "readiness pings the database",
			method: http.MethodGet,
			path:   "/api/v0/ready",
			setupMocks: func(r *gatekeeper.MockResolverInterface, p *status.MockPingerInterface, _ *artists.MockServiceInterface, _ *admin.MockServiceInterface) {
				r.EXPECT().ResolveAccess(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&authorization.Verdict{Outcome: authorization.OutcomeAllow}, nil)
				p.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "anonymous page request is sent to login",
			method: http.MethodGet,
			path:   "/agency/acme",
			setupMocks: func(r *gatekeeper.MockResolverInterface, _ *status.MockPingerInterface, _ *artists.MockServiceInterface, _ *admin.MockServiceInterface) {
				r.EXPECT().ResolveAccess(gomock.Any(), nil, gomock.Any()).
					Return(&authorization.Verdict{Outcome: authorization.OutcomeRedirectLogin, RedirectTo: "/auth/login?next=%2Fagency%2Facme"}, nil)
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/auth/login?next=%2Fagency%2Facme",
		},
		{
			name:   "identity header reaches the gatekeeper and the artists api",
			method: http.MethodGet,
			path:   "/api/agencies/acme/artists",
			userID: "user-1",
			setupMocks: func(r *gatekeeper.MockResolverInterface, _ *status.MockPingerInterface, a *artists.MockServiceInterface, _ *admin.MockServiceInterface) {
				access := &authorization.Access{
					User:   &types.User{ID: "user-1", Role: types.RoleAgencyAdmin, AgencyID: "agency-acme"},
					Agency: &types.Agency{ID: "agency-acme", Slug: "acme"},
				}

				r.EXPECT().ResolveAccess(gomock.Any(), &types.Session{UserID: "user-1"}, gomock.Any()).
					Return(&authorization.Verdict{Outcome: authorization.OutcomeAllow, Access: access}, nil)
				a.EXPECT().ListArtists(gomock.Any(), access).Return([]*types.Artist{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "super admin landing page is served",
			method: http.MethodGet,
			path:   "/admin",
			userID: "op-1",
			setupMocks: func(r *gatekeeper.MockResolverInterface, _ *status.MockPingerInterface, _ *artists.MockServiceInterface, ad *admin.MockServiceInterface) {
				access := &authorization.Access{User: &types.User{ID: "op-1", Role: types.RoleSuperAdmin, IsActive: true}}

				r.EXPECT().ResolveAccess(gomock.Any(), &types.Session{UserID: "op-1"}, authorization.ParsePath("/admin")).
					Return(&authorization.Verdict{Outcome: authorization.OutcomeAllow, Access: access}, nil)
				ad.EXPECT().ListAgencies(gomock.Any(), access).Return([]*types.Agency{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := logging.NewNoopLogger()
			tracer := tracing.NewNoopTracer()
			monitor := monitoring.NewNoopMonitor("test", logger)

			mockResolver := gatekeeper.NewMockResolverInterface(ctrl)
			mockPinger := status.NewMockPingerInterface(ctrl)
			mockArtists := artists.NewMockServiceInterface(ctrl)
			mockAdmin := admin.NewMockServiceInterface(ctrl)
			test.setupMocks(mockResolver, mockPinger, mockArtists, mockAdmin)

			router := NewRouter(
				Config{},
				Services{
					Admin:    mockAdmin,
					Agency:   agency.NewMockServiceInterface(ctrl),
					Artists:  mockArtists,
					Webhooks: webhooks.NewMockServiceInterface(ctrl),
				},
				authentication.NewAPI("http://localhost", authentication.CookieConfig{Name: "hrr_session"}, authentication.NewMockLandingInterface(ctrl), tracer, monitor, logger),
				authentication.NewMiddleware(authentication.NewHeaderSessionProvider(), tracer, monitor, logger),
				gatekeeper.NewMiddleware(mockResolver, tracer, monitor, logger),
				mockPinger,
				tracer,
				monitor,
				logger,
			)

			req := httptest.NewRequest(test.method, test.path, nil)
			if test.userID != "" {
				req.Header.Set(identity.HeaderName, test.userID)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}

			if loc := rr.Header().Get("Location"); loc != test.expectedLocation {
				t.Errorf("expected location %q, got %q", test.expectedLocation, loc)
			}
		})
	}
}
