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

var agencyColumns = []string{"id", "name", "slug", "plan", "settings", "created_at"}

func scanAgency(row sq.RowScanner) (*types.Agency, error) {
	var (
		a        types.Agency
		settings []byte
	)

	if err := row.Scan(&a.ID, &a.Name, &a.Slug, &a.Plan, &settings, &a.CreatedAt); err != nil {
		return nil, err
	}

	if err := fromJSONB(settings, &a.Settings); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Storage) agencyInsert(ctx context.Context, a *types.Agency) (sq.InsertBuilder, error) {
	id, err := newID()
	if err != nil {
		return sq.InsertBuilder{}, err
	}

	settings, err := jsonb(a.Settings)
	if err != nil {
		return sq.InsertBuilder{}, err
	}

	return s.db.Statement(ctx).
		Insert("agencies").
		Columns("id", "name", "slug", "plan", "settings").
		Values(id, a.Name, a.Slug, a.Plan, settings), nil
}

func (s *Storage) CreateAgency(ctx context.Context, a *types.Agency) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAgency")
	defer span.End()

	insert, err := s.agencyInsert(ctx, a)
	if err != nil {
		return nil, err
	}

	created, err := scanAgency(
		insert.Suffix("RETURNING id, name, slug, plan, settings, created_at").QueryRowContext(ctx),
	)

	if err != nil {
		return nil, constraintError(err, "failed to insert agency")
	}

	return created, nil
}

// InsertAgencyIfAbsent inserts the agency unless one with the same slug exists,
// the returned flag reports whether a row was written
func (s *Storage) InsertAgencyIfAbsent(ctx context.Context, a *types.Agency) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertAgencyIfAbsent")
	defer span.End()

	insert, err := s.agencyInsert(ctx, a)
	if err != nil {
		return false, err
	}

	res, err := insert.Suffix("ON CONFLICT (slug) DO NOTHING").ExecContext(ctx)
	if err != nil {
		return false, constraintError(err, "failed to insert agency")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows == 1, nil
}

func (s *Storage) getAgency(ctx context.Context, where sq.Eq) (*types.Agency, error) {
	a, err := scanAgency(
		s.db.Statement(ctx).
			Select(agencyColumns...).
			From("agencies").
			Where(where).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	return a, nil
}

func (s *Storage) GetAgencyBySlug(ctx context.Context, slug string) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAgencyBySlug")
	defer span.End()

	return s.getAgency(ctx, sq.Eq{"slug": slug})
}

func (s *Storage) GetAgencyByID(ctx context.Context, id string) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAgencyByID")
	defer span.End()

	return s.getAgency(ctx, sq.Eq{"id": id})
}

func (s *Storage) ListAgencies(ctx context.Context) ([]*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAgencies")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(agencyColumns...).
		From("agencies").
		OrderBy("name ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list agencies: %w", err)
	}
	defer rows.Close()

	agencies := make([]*types.Agency, 0)
	for rows.Next() {
		a, err := scanAgency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agency: %w", err)
		}
		agencies = append(agencies, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return agencies, nil
}
