// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"
	"testing"

	"github.com/ory/hydra/v2/oauth2"
	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/storage"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(s StorageInterface, p ProvisionerInterface) *Service {
	logger := logging.NewNoopLogger()
	return NewService(s, p, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestService_HandleRegistration(t *testing.T) {
	identity := &KratosIdentity{
		ID:     "user-1",
		Traits: KratosTraits{Email: "jane@homerun.example", Name: KratosName{First: "Jane", Last: "Doe"}},
	}

	tests := []struct {
		name        string
		identity    *KratosIdentity
		provision   bool
		setupMocks  func(*MockProvisionerInterface)
		expectedErr bool
	}{
		{
			name:        "missing email",
			identity:    &KratosIdentity{ID: "user-1"},
			provision:   true,
			setupMocks:  func(*MockProvisionerInterface) {},
			expectedErr: true,
		},
		{
			name:       "provisioning disabled",
			identity:   identity,
			setupMocks: func(*MockProvisionerInterface) {},
		},
		{
			name:      "provisions the demo user",
			identity:  identity,
			provision: true,
			setupMocks: func(p *MockProvisionerInterface) {
				p.EXPECT().EnsureDemoUser(gomock.Any(), &types.Session{UserID: "user-1", Email: "jane@homerun.example", FirstName: "Jane", LastName: "Doe"}).
					Return(&types.User{ID: "user-1", AgencyID: "agency-demo"}, nil)
			},
		},
		{
			name:      "provisioning failure",
			identity:  identity,
			provision: true,
			setupMocks: func(p *MockProvisionerInterface) {
				p.EXPECT().EnsureDemoUser(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("db down"))
			},
			expectedErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvisioner := NewMockProvisionerInterface(ctrl)
			test.setupMocks(mockProvisioner)

			var p ProvisionerInterface
			if test.provision {
				p = mockProvisioner
			}

			err := newTestService(NewMockStorageInterface(ctrl), p).HandleRegistration(context.Background(), test.identity)

			if test.expectedErr != (err != nil) {
				t.Errorf("expected error %v, got %v", test.expectedErr, err)
			}
		})
	}
}

func TestService_HandleTokenHook(t *testing.T) {
	tests := []struct {
		name           string
		req            *oauth2.TokenHookRequest
		setupMocks     func(*MockStorageInterface)
		expectedClaims map[string]interface{}
		expectedErr    bool
	}{
		{
			name:        "no subject",
			req:         &oauth2.TokenHookRequest{},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: true,
		},
		{
			name: "unknown subject gets no claims",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-unknown")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "user-unknown").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "agency admin",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", Role: types.RoleAgencyAdmin, AgencyID: "agency-acme"}, nil)
				s.EXPECT().GetAgencyByID(gomock.Any(), "agency-acme").Return(&types.Agency{ID: "agency-acme", Slug: "acme"}, nil)
			},
			expectedClaims: map[string]interface{}{"role": "agency_admin", "agency_id": "agency-acme", "agency_slug": "acme"},
		},
		{
			name: "artist",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-2")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "user-2").Return(&types.User{ID: "user-2", Role: types.RoleArtist, AgencyID: "agency-acme", ArtistID: "artist-jane"}, nil)
				s.EXPECT().GetAgencyByID(gomock.Any(), "agency-acme").Return(nil, storage.ErrNotFound)
			},
			expectedClaims: map[string]interface{}{"role": "artist", "agency_id": "agency-acme", "artist_id": "artist-jane"},
		},
		{
			name: "super admin",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("root")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "root").Return(&types.User{ID: "root", Role: types.RoleSuperAdmin}, nil)
			},
			expectedClaims: map[string]interface{}{"role": "super_admin"},
		},
		{
			name: "store failure",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession("user-1")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(nil, fmt.Errorf("timeout"))
			},
			expectedErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			resp, err := newTestService(mockStorage, nil).HandleTokenHook(context.Background(), test.req)

			if test.expectedErr {
				if err == nil {
					t.Errorf("expected error, got %+v", resp)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(resp.Session.IDToken) != len(test.expectedClaims) {
				t.Fatalf("expected claims %v, got %v", test.expectedClaims, resp.Session.IDToken)
			}

			for k, v := range test.expectedClaims {
				if resp.Session.IDToken[k] != v || resp.Session.AccessToken[k] != v {
					t.Errorf("expected claim %s=%v, got %v", k, v, resp.Session.IDToken[k])
				}
			}
		})
	}
}
