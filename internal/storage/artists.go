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

var artistColumns = []string{
	"a.id", "a.agency_id", "a.name", "a.email", "a.phone", "a.bio", "a.image_url",
	"a.genres", "a.social_links", "a.is_active", "a.created_at",
}

var artistWithTenantColumns = append(
	append([]string{}, artistColumns...),
	"t.id", "t.agency_id", "t.artist_id", "t.name", "t.slug", "t.is_active", "t.created_at",
)

func artistDest(a *types.Artist, genres, socialLinks *[]byte) []interface{} {
	return []interface{}{
		&a.ID, &a.AgencyID, &a.Name, &a.Email, &a.Phone, &a.Bio, &a.ImageURL,
		genres, socialLinks, &a.IsActive, &a.CreatedAt,
	}
}

func decodeArtist(a *types.Artist, genres, socialLinks []byte) error {
	a.Genres = []string{}
	a.SocialLinks = map[string]string{}

	if err := fromJSONB(genres, &a.Genres); err != nil {
		return err
	}

	return fromJSONB(socialLinks, &a.SocialLinks)
}

func scanArtist(row sq.RowScanner) (*types.Artist, error) {
	var (
		a                   types.Artist
		genres, socialLinks []byte
	)

	if err := row.Scan(artistDest(&a, &genres, &socialLinks)...); err != nil {
		return nil, err
	}

	if err := decodeArtist(&a, genres, socialLinks); err != nil {
		return nil, err
	}

	return &a, nil
}

// scanArtistWithTenant reads an artist row left joined with its tenant
func scanArtistWithTenant(row sq.RowScanner) (*types.Artist, error) {
	var (
		a                   types.Artist
		genres, socialLinks []byte

		tID, tAgencyID, tArtistID, tName, tSlug sql.NullString
		tActive                                 sql.NullBool
		tCreatedAt                              sql.NullTime
	)

	dest := append(
		artistDest(&a, &genres, &socialLinks),
		&tID, &tAgencyID, &tArtistID, &tName, &tSlug, &tActive, &tCreatedAt,
	)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if err := decodeArtist(&a, genres, socialLinks); err != nil {
		return nil, err
	}

	if tID.Valid {
		a.Tenant = &types.Tenant{
			ID:        tID.String,
			AgencyID:  tAgencyID.String,
			ArtistID:  tArtistID.String,
			Name:      tName.String,
			Slug:      tSlug.String,
			IsActive:  tActive.Bool,
			CreatedAt: tCreatedAt.Time,
		}
	}

	return &a, nil
}

func (s *Storage) CreateArtist(ctx context.Context, a *types.Artist) (*types.Artist, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateArtist")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	genres := a.Genres
	if genres == nil {
		genres = []string{}
	}

	socialLinks := a.SocialLinks
	if socialLinks == nil {
		socialLinks = map[string]string{}
	}

	encodedGenres, err := jsonb(genres)
	if err != nil {
		return nil, err
	}

	encodedLinks, err := jsonb(socialLinks)
	if err != nil {
		return nil, err
	}

	created, err := scanArtist(
		s.db.Statement(ctx).
			Insert("artists").
			Columns("id", "agency_id", "name", "email", "phone", "bio", "image_url", "genres", "social_links", "is_active").
			Values(id, a.AgencyID, a.Name, a.Email, a.Phone, a.Bio, a.ImageURL, encodedGenres, encodedLinks, a.IsActive).
			Suffix("RETURNING id, agency_id, name, email, phone, bio, image_url, genres, social_links, is_active, created_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, constraintError(err, "failed to insert artist")
	}

	return created, nil
}

func (s *Storage) GetArtistByID(ctx context.Context, id string) (*types.Artist, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetArtistByID")
	defer span.End()

	a, err := scanArtistWithTenant(
		s.db.Statement(ctx).
			Select(artistWithTenantColumns...).
			From("artists a").
			LeftJoin("tenants t ON t.artist_id = a.id").
			Where(sq.Eq{"a.id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}

	return a, nil
}

// ListActiveArtistsByAgency returns the agency's active artists, newest first, each with its tenant
func (s *Storage) ListActiveArtistsByAgency(ctx context.Context, agencyID string) ([]*types.Artist, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveArtistsByAgency")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(artistWithTenantColumns...).
		From("artists a").
		LeftJoin("tenants t ON t.artist_id = a.id").
		Where(sq.Eq{"a.agency_id": agencyID, "a.is_active": true}).
		OrderBy("a.created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	defer rows.Close()

	artists := make([]*types.Artist, 0)
	for rows.Next() {
		a, err := scanArtistWithTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return artists, nil
}

// CountArtistsByAgency counts the active artists, the figure plan limits apply to
func (s *Storage) CountArtistsByAgency(ctx context.Context, agencyID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountArtistsByAgency")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("artists").
		Where(sq.Eq{"agency_id": agencyID, "is_active": true}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count artists: %w", err)
	}

	return count, nil
}
