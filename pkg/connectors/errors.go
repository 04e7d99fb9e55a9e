// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connectors

import "errors"

var (
	ErrNotConnected    = errors.New("connector is not connected")
	ErrArtistNotLinked = errors.New("artist has no account on this source")
	ErrUnknownSource   = errors.New("unknown data source")
	ErrMissingConfig   = errors.New("connector is missing credentials")
)
