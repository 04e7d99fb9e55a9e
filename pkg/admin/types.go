// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import "github.com/canonical/agency-service/internal/types"

// planArtistLimits are the maxArtists defaults of each plan
var planArtistLimits = map[types.Plan]int{
	types.PlanStarter:      5,
	types.PlanProfessional: 25,
	types.PlanEnterprise:   100,
}

type AgencyInput struct {
	Name         string `json:"name" validate:"required,max=200"`
	Slug         string `json:"slug" validate:"omitempty,max=63"`
	Plan         string `json:"plan" validate:"required,oneof=starter professional enterprise"`
	MaxArtists   int    `json:"max_artists" validate:"omitempty,min=1"`
	PrimaryColor string `json:"primary_color" validate:"omitempty,hexcolor"`
}

// Overview is the payload of the operator landing page
type Overview struct {
	Agencies []*types.Agency `json:"agencies"`
}
