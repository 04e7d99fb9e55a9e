// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/canonical/agency-service/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw ID token and returns the session it asserts
	VerifyToken(ctx context.Context, rawToken string) (*types.Session, error)
}

// SessionProviderInterface reads the session of the external auth provider,
// a nil session without error means the request is anonymous
type SessionProviderInterface interface {
	Session(ctx context.Context, r *http.Request) (*types.Session, error)
}

type KratosClientInterface interface {
	ToSession(ctx context.Context, cookie string) (*types.Session, error)
	LogoutURL(ctx context.Context, cookie string) (string, error)
	LoginURL(returnTo string) string
}

type OAuth2ConfigInterface interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

type LandingInterface interface {
	LandingPath(ctx context.Context, session *types.Session, next string) (string, error)
}

type DemoProvisionerInterface interface {
	EnsureDemoUser(ctx context.Context, session *types.Session) (*types.User, error)
}
