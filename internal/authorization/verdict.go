// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"net/url"

	"github.com/canonical/agency-service/internal/types"
)

const (
	LoginPath        = "/auth/login"
	UnauthorizedPath = "/unauthorized"
)

type Outcome string

const (
	OutcomeAllow                Outcome = "allow"
	OutcomeRedirectLogin        Outcome = "redirect_login"
	OutcomeRedirectUnauthorized Outcome = "redirect_unauthorized"
	OutcomeNotFound             Outcome = "not_found"
)

// Access is the resolved principal and tenant of an allowed request, fields are
// only set when the path required them
type Access struct {
	User   *types.User
	Agency *types.Agency
	Tenant *types.Tenant
}

type Verdict struct {
	Outcome    Outcome
	RedirectTo string
	Reason     string
	Access     *Access
}

func (v *Verdict) Allowed() bool {
	return v != nil && v.Outcome == OutcomeAllow
}

func allow(access *Access) *Verdict {
	return &Verdict{Outcome: OutcomeAllow, Access: access}
}

func redirectLogin(next string) *Verdict {
	return &Verdict{
		Outcome:    OutcomeRedirectLogin,
		RedirectTo: LoginPath + "?next=" + url.QueryEscape(next),
		Reason:     "no session",
	}
}

func unauthorized(reason string) *Verdict {
	return &Verdict{
		Outcome:    OutcomeRedirectUnauthorized,
		RedirectTo: UnauthorizedPath,
		Reason:     reason,
	}
}

func notFound(reason string) *Verdict {
	return &Verdict{Outcome: OutcomeNotFound, Reason: reason}
}
