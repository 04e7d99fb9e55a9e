// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	ADMIN_RELATION  = "admin"
	MEMBER_RELATION = "member"
	AGENCY_RELATION = "agency"
	ARTIST_RELATION = "artist"
	VIEWER_RELATION = "viewer"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func AgencyTuple(agencyId string) string {
	return "agency:" + agencyId
}

func TenantTuple(tenantId string) string {
	return "tenant:" + tenantId
}

func principalKey(userId string) string {
	return "principal:" + userId
}
