// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

import (
	"github.com/canonical/agency-service/internal/types"
)

const analyticsPeriod = "month"

type Stats struct {
	TotalArtists  int   `json:"total_artists"`
	ActiveArtists int   `json:"active_artists"`
	TotalStreams  int64 `json:"total_streams"`
	TotalFans     int64 `json:"total_fans"`
	ArtistLimit   int   `json:"artist_limit"`
	LimitReached  bool  `json:"limit_reached"`
}

// Dashboard is the page data of an agency landing page
type Dashboard struct {
	Agency           *types.Agency          `json:"agency"`
	User             *types.User            `json:"user"`
	Artists          []*types.Artist        `json:"artists"`
	Analytics        *types.AgencyAnalytics `json:"analytics"`
	Stats            Stats                  `json:"stats"`
	CanManageArtists bool                   `json:"can_manage_artists"`
}

// ArtistDashboard is the page data of a single artist tenant
type ArtistDashboard struct {
	Agency      *types.Agency        `json:"agency"`
	Artist      *types.Artist        `json:"artist"`
	Tenant      *types.Tenant        `json:"tenant"`
	Metrics     *types.TenantMetrics `json:"metrics"`
	Updates     []types.MetricUpdate `json:"updates"`
	DataSources []types.DataSource   `json:"data_sources"`
}

type MemberInput struct {
	UserID      string             `json:"user_id" validate:"required"`
	Email       string             `json:"email" validate:"required,email"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Role        types.Role         `json:"role" validate:"required,oneof=agency_admin agency_member artist"`
	ArtistID    string             `json:"artist_id" validate:"required_if=Role artist,omitempty,uuid"`
	Permissions []types.Permission `json:"permissions"`
}
