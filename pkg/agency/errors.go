// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agency

import "errors"

var (
	ErrForbidden     = errors.New("not allowed to manage members")
	ErrInvalidRole   = errors.New("invalid member role")
	ErrInvalidArtist = errors.New("artist does not belong to the agency")
	ErrMemberExists  = errors.New("user already exists")
)
