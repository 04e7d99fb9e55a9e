// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package artists

import (
	"time"

	"github.com/canonical/agency-service/internal/types"
)

const (
	ResourceArtists = "artists"
	ActionCreate    = "create"
)

type ArtistInput struct {
	Name        string            `json:"name" validate:"required,max=200"`
	Email       string            `json:"email" validate:"required,email"`
	Phone       string            `json:"phone" validate:"omitempty,max=50"`
	Bio         string            `json:"bio" validate:"omitempty,max=5000"`
	ImageURL    string            `json:"image_url" validate:"omitempty,url"`
	Genres      []string          `json:"genres" validate:"omitempty,dive,required"`
	SocialLinks map[string]string `json:"social_links" validate:"omitempty,dive,keys,required,endkeys,required"`
}

// Metrics is the dashboard payload of one artist
type Metrics struct {
	Artist      *types.Artist        `json:"artist"`
	Metrics     *types.TenantMetrics `json:"metrics"`
	Updates     []types.MetricUpdate `json:"updates"`
	DataSources []types.DataSource   `json:"data_sources"`
	GeneratedAt time.Time            `json:"generated_at"`
}
