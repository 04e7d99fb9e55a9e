// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connectors

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
	"github.com/canonical/agency-service/internal/types"
)

const (
	SourceSpotify = "spotify"

	spotifyLinkKey = "spotify"
	maxBodyBytes   = 1 << 20
)

var _ Connector = (*SpotifyConnector)(nil)

type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	APIURL       string
	TokenURL     string
}

// SpotifyConnector reads public artist figures from the Spotify Web API
type SpotifyConnector struct {
	config *clientcredentials.Config
	apiURL string

	mu     sync.RWMutex
	client *http.Client

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *SpotifyConnector) SourceType() string {
	return SourceSpotify
}

func (c *SpotifyConnector) Name() string {
	return "Spotify"
}

// Connect fetches a client credentials token, failing fast on bad credentials
func (c *SpotifyConnector) Connect(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "connectors.SpotifyConnector.Connect")
	defer span.End()

	base := &http.Client{Transport: tracing.NewTransport(http.DefaultTransport)}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	token, err := c.config.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate with spotify: %w", err)
	}

	// the token source refreshes on its own, it must outlive the request
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	client := oauth2.NewClient(tokenCtx, oauth2.ReuseTokenSource(token, c.config.TokenSource(tokenCtx)))

	c.mu.Lock()
	c.client = client
	c.mu.Unlock()

	return nil
}

func (c *SpotifyConnector) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.client != nil
}

func (c *SpotifyConnector) FetchMetrics(ctx context.Context, artist *types.Artist) ([]types.MetricUpdate, error) {
	ctx, span := c.tracer.Start(ctx, "connectors.SpotifyConnector.FetchMetrics")
	defer span.End()

	c.mu.RLock()
	client := c.client
	c.mu.RUnlock()

	if client == nil {
		return nil, ErrNotConnected
	}

	spotifyID := SpotifyArtistID(artist.SocialLinks[spotifyLinkKey])
	if spotifyID == "" {
		return nil, ErrArtistNotLinked
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/v1/artists/"+url.PathEscape(spotifyID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read spotify response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify returned status %d: %s", resp.StatusCode, gjson.GetBytes(body, "error.message").String())
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("spotify returned an invalid payload")
	}

	fields := gjson.GetManyBytes(body, "followers.total", "popularity", "genres")

	return []types.MetricUpdate{
		{
			Type:   types.MetricStreaming,
			Source: SourceSpotify,
			Data: map[string]interface{}{
				"platform":   SourceSpotify,
				"spotifyId":  spotifyID,
				"followers":  fields[0].Int(),
				"popularity": fields[1].Int(),
				"genres":     len(fields[2].Array()),
			},
			Timestamp: c.now(),
		},
	}, nil
}

func (c *SpotifyConnector) Disconnect(context.Context) error {
	c.mu.Lock()
	c.client = nil
	c.mu.Unlock()

	return nil
}

// SpotifyArtistID accepts either a bare id, an open.spotify.com link or a spotify: URI
func SpotifyArtistID(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}

	if rest, ok := strings.CutPrefix(link, "spotify:artist:"); ok {
		return rest
	}

	if !strings.Contains(link, "/") {
		return link
	}

	u, err := url.Parse(link)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(segments); i++ {
		if segments[i] == "artist" {
			return segments[i+1]
		}
	}

	return ""
}

func NewSpotifyConnector(cfg SpotifyConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*SpotifyConnector, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: spotify client id and secret are required", ErrMissingConfig)
	}

	c := new(SpotifyConnector)
	c.config = &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	c.apiURL = strings.TrimRight(cfg.APIURL, "/")
	c.now = time.Now

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}
