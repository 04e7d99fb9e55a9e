// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/agency-service/internal/types"
)

// GetLatestAgencyAnalytics returns the newest snapshot for the period
func (s *Storage) GetLatestAgencyAnalytics(ctx context.Context, agencyID, period string) (*types.AgencyAnalytics, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLatestAgencyAnalytics")
	defer span.End()

	var (
		a   types.AgencyAnalytics
		top []byte
	)

	err := s.db.Statement(ctx).
		Select("id", "agency_id", "period", "total_artists", "active_artists", "total_streams", "total_fans", "top_performing_artists", "created_at").
		From("agency_analytics").
		Where(sq.Eq{"agency_id": agencyID, "period": period}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.AgencyID, &a.Period, &a.TotalArtists, &a.ActiveArtists, &a.TotalStreams, &a.TotalFans, &top, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agency analytics: %w", err)
	}

	a.TopPerformingArtists = []types.TopPerformer{}
	if err := fromJSONB(top, &a.TopPerformingArtists); err != nil {
		return nil, err
	}

	return &a, nil
}

// CreateTenantMetrics writes the zeroed metric rows a new tenant starts with
func (s *Storage) CreateTenantMetrics(ctx context.Context, t *types.Tenant) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenantMetrics")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("music_production_metrics").
		Columns("tenant_id", "agency_id", "artist_id", "total_releases", "finished_unreleased", "unfinished").
		Values(t.ID, t.AgencyID, t.ArtistID, 0, 0, 0).
		ExecContext(ctx)

	if err != nil {
		return constraintError(err, "failed to insert music production metrics")
	}

	streamings, err := jsonb(types.Streamings{})
	if err != nil {
		return err
	}

	social, err := jsonb(types.SocialMedia{})
	if err != nil {
		return err
	}

	youtube, err := jsonb(types.YoutubeMetrics{})
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Insert("engagement_metrics").
		Columns("tenant_id", "agency_id", "artist_id", "streamings", "social_media", "youtube_metrics").
		Values(t.ID, t.AgencyID, t.ArtistID, streamings, social, youtube).
		ExecContext(ctx)

	if err != nil {
		return constraintError(err, "failed to insert engagement metrics")
	}

	growth, err := jsonb(types.Growth{})
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Insert("fanbase_metrics").
		Columns("tenant_id", "agency_id", "artist_id", "super_fans", "fans", "cold_fans", "total", "growth").
		Values(t.ID, t.AgencyID, t.ArtistID, 0, 0, 0, 0, growth).
		ExecContext(ctx)

	if err != nil {
		return constraintError(err, "failed to insert fanbase metrics")
	}

	return nil
}

func (s *Storage) GetTenantMetrics(ctx context.Context, tenantID string) (*types.TenantMetrics, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantMetrics")
	defer span.End()

	m := new(types.TenantMetrics)

	p := &m.MusicProduction
	err := s.db.Statement(ctx).
		Select("tenant_id", "agency_id", "artist_id", "total_releases", "finished_unreleased", "unfinished", "updated_at").
		From("music_production_metrics").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&p.TenantID, &p.AgencyID, &p.ArtistID, &p.TotalReleases, &p.FinishedUnreleased, &p.Unfinished, &p.UpdatedAt)

	if err != nil {
		return nil, notFoundOr(err, "failed to get music production metrics")
	}

	var streamings, social, youtube []byte
	e := &m.Engagement
	err = s.db.Statement(ctx).
		Select("tenant_id", "agency_id", "artist_id", "streamings", "social_media", "youtube_metrics", "updated_at").
		From("engagement_metrics").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&e.TenantID, &e.AgencyID, &e.ArtistID, &streamings, &social, &youtube, &e.UpdatedAt)

	if err != nil {
		return nil, notFoundOr(err, "failed to get engagement metrics")
	}

	for raw, dest := range map[*[]byte]interface{}{&streamings: &e.Streamings, &social: &e.SocialMedia, &youtube: &e.YoutubeMetrics} {
		if err := fromJSONB(*raw, dest); err != nil {
			return nil, err
		}
	}

	var growth []byte
	f := &m.FanBase
	err = s.db.Statement(ctx).
		Select("tenant_id", "agency_id", "artist_id", "super_fans", "fans", "cold_fans", "total", "growth", "updated_at").
		From("fanbase_metrics").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&f.TenantID, &f.AgencyID, &f.ArtistID, &f.SuperFans, &f.Fans, &f.ColdFans, &f.Total, &growth, &f.UpdatedAt)

	if err != nil {
		return nil, notFoundOr(err, "failed to get fanbase metrics")
	}

	if err := fromJSONB(growth, &f.Growth); err != nil {
		return nil, err
	}

	return m, nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
