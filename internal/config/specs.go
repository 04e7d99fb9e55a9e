// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port    int    `envconfig:"port" default:"8080"`
	BaseURL string `envconfig:"base_url" default:"http://localhost:8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// SessionProvider is one of header, kratos or oidc
	SessionProvider     string        `envconfig:"session_provider" default:"header"`
	SessionCookieName   string        `envconfig:"session_cookie_name" default:"hrr_session"`
	SessionCookieSecure bool          `envconfig:"session_cookie_secure" default:"true"`
	SessionCookieTTL    time.Duration `envconfig:"session_cookie_ttl" default:"8h"`

	KratosPublicURL string `envconfig:"kratos_public_url"`

	OIDCIssuer       string   `envconfig:"oidc_issuer"`
	OIDCClientID     string   `envconfig:"oidc_client_id"`
	OIDCClientSecret string   `envconfig:"oidc_client_secret"`
	OIDCJWKSURL      string   `envconfig:"oidc_jwks_url"`
	OIDCScopes       []string `envconfig:"oidc_scopes" default:"openid,email,profile"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	RedisAddr         string        `envconfig:"redis_addr"`
	RedisPassword     string        `envconfig:"redis_password"`
	RedisDB           int           `envconfig:"redis_db" default:"0"`
	PrincipalCacheTTL time.Duration `envconfig:"principal_cache_ttl" default:"30s"`

	SeedDemoData      bool `envconfig:"seed_demo_data" default:"false"`
	DemoAutoProvision bool `envconfig:"demo_auto_provision" default:"false"`

	// WebhookAPIKey guards the Kratos and Hydra webhooks, the webhooks reject every call while it is empty
	WebhookAPIKey string `envconfig:"webhook_api_key"`

	ConnectorsEnabled   []string      `envconfig:"connectors_enabled" default:"mock"`
	ConnectorTimeout    time.Duration `envconfig:"connector_timeout" default:"5s"`
	SpotifyClientID     string        `envconfig:"spotify_client_id"`
	SpotifyClientSecret string        `envconfig:"spotify_client_secret"`
	SpotifyAPIURL       string        `envconfig:"spotify_api_url" default:"https://api.spotify.com"`
	SpotifyTokenURL     string        `envconfig:"spotify_token_url" default:"https://accounts.spotify.com/api/token"`
}
