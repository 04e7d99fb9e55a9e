// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/canonical/agency-service/internal/identity"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

const (
	ProviderHeader = "header"
	ProviderKratos = "kratos"
	ProviderOIDC   = "oidc"
)

var (
	_ SessionProviderInterface = (*HeaderSessionProvider)(nil)
	_ SessionProviderInterface = (*KratosSessionProvider)(nil)
	_ SessionProviderInterface = (*TokenSessionProvider)(nil)
)

// HeaderSessionProvider trusts the identity asserted by the upstream proxy
type HeaderSessionProvider struct{}

func (p *HeaderSessionProvider) Session(ctx context.Context, _ *http.Request) (*types.Session, error) {
	id, ok := identity.FromContext(ctx)
	if !ok || id.ID == "" {
		return nil, nil
	}

	return &types.Session{UserID: id.ID, Email: id.Email}, nil
}

func NewHeaderSessionProvider() *HeaderSessionProvider {
	return new(HeaderSessionProvider)
}

// KratosSessionProvider resolves the Kratos browser cookie into a session
type KratosSessionProvider struct {
	client KratosClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *KratosSessionProvider) Session(ctx context.Context, r *http.Request) (*types.Session, error) {
	ctx, span := p.tracer.Start(ctx, "authentication.KratosSessionProvider.Session")
	defer span.End()

	cookie := r.Header.Get("Cookie")
	if cookie == "" {
		return nil, nil
	}

	return p.client.ToSession(ctx, cookie)
}

func NewKratosSessionProvider(client KratosClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *KratosSessionProvider {
	p := new(KratosSessionProvider)
	p.client = client
	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

// TokenSessionProvider verifies an ID token taken from the session cookie or a bearer header
type TokenSessionProvider struct {
	verifier   TokenVerifierInterface
	cookieName string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *TokenSessionProvider) Session(ctx context.Context, r *http.Request) (*types.Session, error) {
	ctx, span := p.tracer.Start(ctx, "authentication.TokenSessionProvider.Session")
	defer span.End()

	token, found := getBearerToken(r.Header)
	if !found {
		c, err := r.Cookie(p.cookieName)
		if err != nil || c.Value == "" {
			return nil, nil
		}
		token = c.Value
	}

	session, err := p.verifier.VerifyToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return session, nil
}

func NewTokenSessionProvider(verifier TokenVerifierInterface, cookieName string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TokenSessionProvider {
	p := new(TokenSessionProvider)
	p.verifier = verifier
	p.cookieName = cookieName
	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

func getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}
