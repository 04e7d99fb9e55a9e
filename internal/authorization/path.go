// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"path"
	"strings"
)

type Section string

const (
	SectionPublic Section = "public"
	SectionAgency Section = "agency"
	SectionAdmin  Section = "admin"
	SectionOther  Section = "other"
)

// publicPrefixes match exactly or as a leading path segment, the root is matched exactly
var publicPrefixes = []string{
	"/auth/login",
	"/auth/signup",
	"/auth/callback",
	"/auth/logout",
	"/auth/auth-code-error",
	"/unauthorized",
	"/api/v0/status",
	"/api/v0/ready",
	"/api/v0/metrics",
	"/webhooks",
}

// PathContext is what access resolution needs to know about a request path
type PathContext struct {
	Path       string
	Section    Section
	AgencySlug string
	ArtistSlug string
	API        bool
	Public     bool
}

// TenantScoped reports whether the path needs a resolved principal
func (p PathContext) TenantScoped() bool {
	return p.Section == SectionAgency || p.Section == SectionAdmin
}

func isPublic(clean string) bool {
	if clean == "/" {
		return true
	}

	for _, prefix := range publicPrefixes {
		if clean == prefix || strings.HasPrefix(clean, prefix+"/") {
			return true
		}
	}

	return false
}

// ParsePath extracts the tenant identifiers carried by a request path.
// Page routes are /agency/{agency}[/artist/{artist}], API routes are
// /api/agencies/{agency}[/artists/{artist}].
func ParsePath(p string) PathContext {
	clean := path.Clean("/" + p)

	ctx := PathContext{Path: clean, Section: SectionOther}

	if isPublic(clean) {
		ctx.Section = SectionPublic
		ctx.Public = true
		ctx.API = strings.HasPrefix(clean, "/api/")
		return ctx
	}

	segments := strings.Split(strings.Trim(clean, "/"), "/")

	if segments[0] == "api" {
		ctx.API = true
		segments = segments[1:]

		if len(segments) == 0 {
			return ctx
		}

		switch segments[0] {
		case "agencies":
			ctx.Section = SectionAgency
			ctx.AgencySlug, ctx.ArtistSlug = slugs(segments, "artists")
		case "admin":
			ctx.Section = SectionAdmin
		}

		return ctx
	}

	switch segments[0] {
	case "agency":
		ctx.Section = SectionAgency
		ctx.AgencySlug, ctx.ArtistSlug = slugs(segments, "artist")
	case "admin":
		ctx.Section = SectionAdmin
	}

	return ctx
}

// slugs reads {section}/{agency}/{artistSegment}/{artist}
func slugs(segments []string, artistSegment string) (string, string) {
	var agency, artist string

	if len(segments) > 1 {
		agency = segments[1]
	}

	if len(segments) > 3 && segments[2] == artistSegment {
		artist = segments[3]
	}

	return agency, artist
}
