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

var userColumns = []string{
	"id", "email", "first_name", "last_name", "role", "agency_id", "artist_id", "permissions", "is_active", "created_at",
}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var (
		u                  types.User
		agencyID, artistID sql.NullString
		permissions        []byte
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role,
		&agencyID, &artistID, &permissions, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.AgencyID = agencyID.String
	u.ArtistID = artistID.String

	if err := fromJSONB(permissions, &u.Permissions); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	permissions := u.Permissions
	if permissions == nil {
		permissions = []types.Permission{}
	}

	encoded, err := jsonb(permissions)
	if err != nil {
		return nil, err
	}

	created, err := scanUser(
		s.db.Statement(ctx).
			Insert("users").
			Columns("id", "email", "first_name", "last_name", "role", "agency_id", "artist_id", "permissions", "is_active").
			Values(u.ID, u.Email, u.FirstName, u.LastName, u.Role, nullable(u.AgencyID), nullable(u.ArtistID), encoded, u.IsActive).
			Suffix("RETURNING id, email, first_name, last_name, role, agency_id, artist_id, permissions, is_active, created_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, constraintError(err, "failed to insert user")
	}

	return created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) ListUsersByAgency(ctx context.Context, agencyID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsersByAgency")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"agency_id": agencyID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}
