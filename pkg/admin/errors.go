// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import "errors"

var (
	ErrForbidden   = errors.New("operator access required")
	ErrInvalidSlug = errors.New("agency slug is empty")
	ErrDuplicate   = errors.New("agency slug already taken")
)
