// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package artists

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	unsafe     = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify lowercases name, turns whitespace runs into dashes and drops anything outside [a-z0-9-]
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = whitespace.ReplaceAllString(slug, "-")

	return unsafe.ReplaceAllString(slug, "")
}
