// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "context"

type accessContextKey struct{}

type resolvedAccess struct {
	path   string
	access *Access
}

// WithAccess stores the access resolved for path so handlers serving the same path can reuse it
func WithAccess(ctx context.Context, path string, access *Access) context.Context {
	return context.WithValue(ctx, accessContextKey{}, resolvedAccess{path: path, access: access})
}

// AccessFromContext returns the access resolved for any path
func AccessFromContext(ctx context.Context) (*Access, bool) {
	r, ok := ctx.Value(accessContextKey{}).(resolvedAccess)
	if !ok || r.access == nil {
		return nil, false
	}

	return r.access, true
}

// AccessForPath returns the stored access only when it was resolved for path
func AccessForPath(ctx context.Context, path string) (*Access, bool) {
	r, ok := ctx.Value(accessContextKey{}).(resolvedAccess)
	if !ok || r.access == nil || r.path != path {
		return nil, false
	}

	return r.access, true
}
