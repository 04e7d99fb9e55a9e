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

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var created types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "agency_id", "artist_id", "name", "slug", "is_active").
		Values(id, t.AgencyID, t.ArtistID, t.Name, t.Slug, t.IsActive).
		Suffix("RETURNING id, agency_id, artist_id, name, slug, is_active, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.AgencyID, &created.ArtistID, &created.Name, &created.Slug, &created.IsActive, &created.CreatedAt)

	if err != nil {
		return nil, constraintError(err, "failed to insert tenant")
	}

	return &created, nil
}

// GetTenantBySlug looks a tenant up within one agency, slugs are only unique per agency
func (s *Storage) GetTenantBySlug(ctx context.Context, agencyID, slug string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantBySlug")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "agency_id", "artist_id", "name", "slug", "is_active", "created_at").
		From("tenants").
		Where(sq.Eq{"agency_id": agencyID, "slug": slug}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.AgencyID, &t.ArtistID, &t.Name, &t.Slug, &t.IsActive, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}
