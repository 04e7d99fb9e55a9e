// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/agency-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_interfaces.go -source=./interfaces.go

func TestMiddleware_Sessions(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockSessionProviderInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedUserID string
	}{
		{
			name: "Anonymous request passes through",
			setupMocks: func(p *MockSessionProviderInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				p.EXPECT().Session(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "Session is stored in the context",
			setupMocks: func(p *MockSessionProviderInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				p.EXPECT().Session(gomock.Any(), gomock.Any()).Return(&types.Session{UserID: "user-123"}, nil)
			},
			expectedUserID: "user-123",
		},
		{
			name: "Provider failure is logged and treated as anonymous",
			setupMocks: func(p *MockSessionProviderInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				p.EXPECT().Session(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("invalid token"))
				l.EXPECT().Debugf(gomock.Any(), gomock.Any())
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthnFailure("", "invalid token")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockProvider := NewMockSessionProviderInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Sessions").Return(ctx, trace.SpanFromContext(ctx))

			tt.setupMocks(mockProvider, mockLogger, mockSecurity)

			middleware := NewMiddleware(mockProvider, mockTracer, mockMonitor, mockLogger)

			var gotUserID string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/agency/acme", nil)
			rr := httptest.NewRecorder()

			middleware.Sessions()(handler).ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
			}

			if gotUserID != tt.expectedUserID {
				t.Errorf("expected user %q, got %q", tt.expectedUserID, gotUserID)
			}
		})
	}
}

func TestGetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "No Authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "Raw token without Bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}
