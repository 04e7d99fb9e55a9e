// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	ory "github.com/ory/client-go"
	"github.com/tidwall/gjson"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

type ClientInterface interface {
	ToSession(ctx context.Context, cookie string) (*types.Session, error)
	LogoutURL(ctx context.Context, cookie string) (string, error)
	LoginURL(returnTo string) string
}

var _ ClientInterface = (*Client)(nil)

// Client talks to the public (frontend) API of Kratos on behalf of a browser
type Client struct {
	client    *ory.APIClient
	publicURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosPublicURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosPublicURL}}
	conf.HTTPClient = &http.Client{Transport: tracing.NewTransport(http.DefaultTransport)}

	return &Client{
		client:    ory.NewAPIClient(conf),
		publicURL: kratosPublicURL,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// ToSession resolves the browser cookie into a session, a missing or expired
// Kratos session yields nil without error
func (c *Client) ToSession(ctx context.Context, cookie string) (*types.Session, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.ToSession")
	defer span.End()

	session, r, err := c.client.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		if r != nil && (r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve kratos session: %w", err)
	}

	if !session.GetActive() {
		return nil, nil
	}

	identity := session.GetIdentity()

	traits, err := json.Marshal(identity.GetTraits())
	if err != nil {
		return nil, fmt.Errorf("failed to read identity traits: %w", err)
	}

	return sessionFromTraits(identity.GetId(), traits), nil
}

// LogoutURL creates a browser logout flow and returns the URL that ends it
func (c *Client) LogoutURL(ctx context.Context, cookie string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.LogoutURL")
	defer span.End()

	flow, _, err := c.client.FrontendAPI.CreateBrowserLogoutFlow(ctx).Cookie(cookie).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create logout flow: %w", err)
	}

	return flow.GetLogoutUrl(), nil
}

func (c *Client) LoginURL(returnTo string) string {
	q := url.Values{}
	if returnTo != "" {
		q.Set("return_to", returnTo)
	}

	u := c.publicURL + "/self-service/login/browser"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	return u
}

func sessionFromTraits(id string, traits []byte) *types.Session {
	s := new(types.Session)
	s.UserID = id
	s.Email = gjson.GetBytes(traits, "email").String()

	for _, path := range []string{"name.first", "first_name", "given_name"} {
		if v := gjson.GetBytes(traits, path); v.Exists() {
			s.FirstName = v.String()
			break
		}
	}

	for _, path := range []string{"name.last", "last_name", "family_name"} {
		if v := gjson.GetBytes(traits, path); v.Exists() {
			s.LastName = v.String()
			break
		}
	}

	return s
}
