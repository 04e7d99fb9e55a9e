// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package artists

import "errors"

var (
	ErrForbidden     = errors.New("not allowed to create artists")
	ErrInvalidSlug   = errors.New("artist name yields an empty slug")
	ErrLimitExceeded = errors.New("artist limit of the plan reached")
	ErrDuplicate     = errors.New("artist already exists")
	ErrNoTenant      = errors.New("no tenant resolved")
)
