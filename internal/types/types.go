// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"slices"
	"time"
)

type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleAgencyAdmin  Role = "agency_admin"
	RoleAgencyMember Role = "agency_member"
	RoleArtist       Role = "artist"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAgencyAdmin, RoleAgencyMember, RoleArtist:
		return true
	}
	return false
}

type Plan string

const (
	PlanStarter      Plan = "starter"
	PlanProfessional Plan = "professional"
	PlanEnterprise   Plan = "enterprise"
)

// Session is the read-only view of an identity authenticated by the external provider
type Session struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
}

type Permission struct {
	Resource string   `json:"resource"`
	Actions  []string `json:"actions"`
}

type User struct {
	ID          string       `db:"id" json:"id"`
	Email       string       `db:"email" json:"email"`
	FirstName   string       `db:"first_name" json:"first_name"`
	LastName    string       `db:"last_name" json:"last_name"`
	Role        Role         `db:"role" json:"role"`
	AgencyID    string       `db:"agency_id" json:"agency_id,omitempty"`
	ArtistID    string       `db:"artist_id" json:"artist_id,omitempty"`
	Permissions []Permission `db:"permissions" json:"permissions"`
	IsActive    bool         `db:"is_active" json:"is_active"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}

// Can reports whether the user may perform action on resource within its own scope.
// Admin roles are granted everything, other roles need an explicit permission entry.
func (u *User) Can(resource, action string) bool {
	if u == nil {
		return false
	}

	if u.Role == RoleSuperAdmin || u.Role == RoleAgencyAdmin {
		return true
	}

	for _, p := range u.Permissions {
		if p.Resource == resource && slices.Contains(p.Actions, action) {
			return true
		}
	}

	return false
}

type Branding struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	Logo           string `json:"logo,omitempty"`
	Favicon        string `json:"favicon,omitempty"`
}

type Features struct {
	MaxArtists     int  `json:"maxArtists"`
	MaxDataSources int  `json:"maxDataSources,omitempty"`
	CustomDomain   bool `json:"customDomain,omitempty"`
	WhiteLabel     bool `json:"whiteLabel,omitempty"`
	APIAccess      bool `json:"apiAccess,omitempty"`
}

type Billing struct {
	SubscriptionID   string     `json:"subscriptionId,omitempty"`
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"currentPeriodEnd,omitempty"`
}

type AgencySettings struct {
	Branding Branding `json:"branding"`
	Features Features `json:"features"`
	Billing  Billing  `json:"billing"`
}

type Agency struct {
	ID        string         `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Slug      string         `db:"slug" json:"slug"`
	Plan      Plan           `db:"plan" json:"plan"`
	Settings  AgencySettings `db:"settings" json:"settings"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

type Tenant struct {
	ID        string    `db:"id" json:"id"`
	AgencyID  string    `db:"agency_id" json:"agency_id"`
	ArtistID  string    `db:"artist_id" json:"artist_id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Artist struct {
	ID          string            `db:"id" json:"id"`
	AgencyID    string            `db:"agency_id" json:"agency_id"`
	Name        string            `db:"name" json:"name"`
	Email       string            `db:"email" json:"email"`
	Phone       string            `db:"phone" json:"phone,omitempty"`
	Bio         string            `db:"bio" json:"bio,omitempty"`
	ImageURL    string            `db:"image_url" json:"image_url,omitempty"`
	Genres      []string          `db:"genres" json:"genres"`
	SocialLinks map[string]string `db:"social_links" json:"social_links"`
	IsActive    bool              `db:"is_active" json:"is_active"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`

	Tenant *Tenant `json:"tenant,omitempty"`
}

type TopPerformer struct {
	ArtistID   string  `json:"artistId"`
	ArtistName string  `json:"artistName"`
	Streams    int64   `json:"streams"`
	Growth     float64 `json:"growth"`
}

type AgencyAnalytics struct {
	ID                   string         `db:"id" json:"id"`
	AgencyID             string         `db:"agency_id" json:"agency_id"`
	Period               string         `db:"period" json:"period"`
	TotalArtists         int            `db:"total_artists" json:"total_artists"`
	ActiveArtists        int            `db:"active_artists" json:"active_artists"`
	TotalStreams         int64          `db:"total_streams" json:"total_streams"`
	TotalFans            int64          `db:"total_fans" json:"total_fans"`
	TopPerformingArtists []TopPerformer `db:"top_performing_artists" json:"top_performing_artists"`
	CreatedAt            time.Time      `db:"created_at" json:"created_at"`
}

type MusicProductionMetrics struct {
	TenantID           string    `db:"tenant_id" json:"tenant_id"`
	AgencyID           string    `db:"agency_id" json:"agency_id"`
	ArtistID           string    `db:"artist_id" json:"artist_id"`
	TotalReleases      int       `db:"total_releases" json:"total_releases"`
	FinishedUnreleased int       `db:"finished_unreleased" json:"finished_unreleased"`
	Unfinished         int       `db:"unfinished" json:"unfinished"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

type Streamings struct {
	Spotify    int64 `json:"spotify"`
	AppleMusic int64 `json:"appleMusic"`
	Youtube    int64 `json:"youtube"`
	Total      int64 `json:"total"`
}

type SocialMedia struct {
	Instagram int64 `json:"instagram"`
	Twitter   int64 `json:"twitter"`
	Tiktok    int64 `json:"tiktok"`
	Facebook  int64 `json:"facebook"`
}

type YoutubeMetrics struct {
	Subscribers int64   `json:"subscribers"`
	Views       int64   `json:"views"`
	Engagement  float64 `json:"engagement"`
}

type EngagementMetrics struct {
	TenantID       string         `db:"tenant_id" json:"tenant_id"`
	AgencyID       string         `db:"agency_id" json:"agency_id"`
	ArtistID       string         `db:"artist_id" json:"artist_id"`
	Streamings     Streamings     `db:"streamings" json:"streamings"`
	SocialMedia    SocialMedia    `db:"social_media" json:"social_media"`
	YoutubeMetrics YoutubeMetrics `db:"youtube_metrics" json:"youtube_metrics"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

type Growth struct {
	Daily   int64 `json:"daily"`
	Weekly  int64 `json:"weekly"`
	Monthly int64 `json:"monthly"`
}

type FanBaseMetrics struct {
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	AgencyID  string    `db:"agency_id" json:"agency_id"`
	ArtistID  string    `db:"artist_id" json:"artist_id"`
	SuperFans int64     `db:"super_fans" json:"super_fans"`
	Fans      int64     `db:"fans" json:"fans"`
	ColdFans  int64     `db:"cold_fans" json:"cold_fans"`
	Total     int64     `db:"total" json:"total"`
	Growth    Growth    `db:"growth" json:"growth"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TenantMetrics groups the three metric domains tracked for a tenant
type TenantMetrics struct {
	MusicProduction MusicProductionMetrics `json:"music_production"`
	Engagement      EngagementMetrics      `json:"engagement"`
	FanBase         FanBaseMetrics         `json:"fan_base"`
}

type MetricType string

const (
	MetricStreaming  MetricType = "streaming"
	MetricSocial     MetricType = "social"
	MetricFanBase    MetricType = "fanbase"
	MetricProduction MetricType = "production"
)

type MetricUpdate struct {
	Type      MetricType             `json:"type"`
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

type DataSourceStatus string

const (
	DataSourceConnected    DataSourceStatus = "connected"
	DataSourceDisconnected DataSourceStatus = "disconnected"
	DataSourceError        DataSourceStatus = "error"
)

type DataSource struct {
	Name     string           `json:"name"`
	Type     string           `json:"type"`
	Status   DataSourceStatus `json:"status"`
	LastSync *time.Time       `json:"last_sync,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// EmptyTenantMetrics returns zero valued metric rows bound to t
func EmptyTenantMetrics(t *Tenant) *TenantMetrics {
	m := new(TenantMetrics)

	m.MusicProduction.TenantID, m.MusicProduction.AgencyID, m.MusicProduction.ArtistID = t.ID, t.AgencyID, t.ArtistID
	m.Engagement.TenantID, m.Engagement.AgencyID, m.Engagement.ArtistID = t.ID, t.AgencyID, t.ArtistID
	m.FanBase.TenantID, m.FanBase.AgencyID, m.FanBase.ArtistID = t.ID, t.AgencyID, t.ArtistID

	return m
}
