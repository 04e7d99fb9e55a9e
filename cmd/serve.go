// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/agency-service/internal/config"
	"github.com/canonical/agency-service/internal/kratos"
	"github.com/canonical/agency-service/pkg/admin"
	"github.com/canonical/agency-service/pkg/agency"
	"github.com/canonical/agency-service/pkg/artists"
	"github.com/canonical/agency-service/pkg/authentication"
	"github.com/canonical/agency-service/pkg/connectors"
	"github.com/canonical/agency-service/pkg/gatekeeper"
	"github.com/canonical/agency-service/pkg/seed"
	"github.com/canonical/agency-service/pkg/web"
	"github.com/canonical/agency-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {

	specs, err := config.Load(envFile)
	if err != nil {
		return err
	}

	i, err := newInfra(ctx, specs)
	if err != nil {
		return err
	}
	defer i.Close()

	logger := i.logger
	logger.Debugf("env vars: %v", specs)

	seeder := seed.NewSeeder(i.db, i.storage, i.authorizer, i.tracer, i.monitor, logger)

	if specs.SeedDemoData {
		if _, err := seeder.EnsureSeedData(ctx); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	registry, err := connectors.NewRegistry(
		connectors.Config{
			Enabled: specs.ConnectorsEnabled,
			Timeout: specs.ConnectorTimeout,
			Spotify: connectors.SpotifyConfig{
				ClientID:     specs.SpotifyClientID,
				ClientSecret: specs.SpotifyClientSecret,
				APIURL:       specs.SpotifyAPIURL,
				TokenURL:     specs.SpotifyTokenURL,
			},
		},
		i.tracer,
		i.monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to configure connectors: %w", err)
	}
	defer registry.Close(context.Background())

	authAPI := authentication.NewAPI(
		specs.BaseURL,
		authentication.CookieConfig{
			Name:   specs.SessionCookieName,
			Secure: specs.SessionCookieSecure,
			TTL:    specs.SessionCookieTTL,
		},
		i.authorizer,
		i.tracer,
		i.monitor,
		logger,
	)

	sessions, err := sessionProvider(ctx, specs, authAPI, i)
	if err != nil {
		return err
	}

	// a nil provisioner keeps the registration webhook a no-op
	var provisioner webhooks.ProvisionerInterface
	if specs.DemoAutoProvision {
		authAPI.WithDemoProvisioning(seeder)
		provisioner = seeder
		logger.Info("Demo provisioning is enabled")
	}

	if specs.WebhookAPIKey == "" {
		logger.Warn("WEBHOOK_API_KEY is empty, identity provider webhooks will reject every call")
	}

	router := web.NewRouter(
		web.Config{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			WebhookAPIKey:      specs.WebhookAPIKey,
		},
		web.Services{
			Admin:    admin.NewService(i.storage, i.tracer, i.monitor, logger),
			Agency:   agency.NewService(i.storage, i.authorizer, registry, i.tracer, i.monitor, logger),
			Artists:  artists.NewService(i.db, i.storage, i.authorizer, registry, i.tracer, i.monitor, logger),
			Webhooks: webhooks.NewService(i.storage, provisioner, i.tracer, i.monitor, logger),
		},
		authAPI,
		authentication.NewMiddleware(sessions, i.tracer, i.monitor, logger),
		gatekeeper.NewMiddleware(i.authorizer, i.tracer, i.monitor, logger),
		i.db,
		i.tracer,
		i.monitor,
		logger,
	)

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

// sessionProvider builds the session source named by SESSION_PROVIDER and
// enables the matching login flow on the authentication API
func sessionProvider(ctx context.Context, specs *config.EnvSpec, api *authentication.API, i *infra) (authentication.SessionProviderInterface, error) {
	switch specs.SessionProvider {
	case "header", "":
		i.logger.Info("Reading sessions from the identity proxy headers")
		return authentication.NewHeaderSessionProvider(), nil
	case "kratos":
		if specs.KratosPublicURL == "" {
			return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required by the kratos session provider")
		}

		client := kratos.NewClient(specs.KratosPublicURL, i.tracer, i.monitor, i.logger)
		api.WithKratos(client)

		return authentication.NewKratosSessionProvider(client, i.tracer, i.monitor, i.logger), nil
	case "oidc":
		if specs.OIDCIssuer == "" || specs.OIDCClientID == "" {
			return nil, fmt.Errorf("OIDC_ISSUER and OIDC_CLIENT_ID are required by the oidc session provider")
		}

		provider, err := authentication.NewProvider(ctx, specs.OIDCIssuer)
		if err != nil {
			return nil, err
		}

		var verifier *authentication.JWTVerifier
		if specs.OIDCJWKSURL != "" {
			verifier = authentication.NewJWTVerifierDirect(
				authentication.NewProviderWithJWKS(ctx, specs.OIDCIssuer, specs.OIDCJWKSURL, specs.OIDCClientID),
				i.tracer,
				i.monitor,
				i.logger,
			)
		} else {
			verifier = authentication.NewJWTVerifier(provider, specs.OIDCClientID, i.tracer, i.monitor, i.logger)
		}

		api.WithOIDC(
			authentication.NewOAuth2Config(provider, specs.OIDCClientID, specs.OIDCClientSecret, specs.BaseURL+"/auth/callback", specs.OIDCScopes),
			verifier,
		)

		return authentication.NewTokenSessionProvider(verifier, specs.SessionCookieName, i.tracer, i.monitor, i.logger), nil
	default:
		return nil, fmt.Errorf("unknown session provider %q", specs.SessionProvider)
	}
}
