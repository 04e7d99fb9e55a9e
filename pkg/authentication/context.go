// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/agency-service/internal/types"
)

type contextKey struct{}

var sessionContextKey = contextKey{}

// WithSession returns a new context carrying the session of the request
func WithSession(ctx context.Context, session *types.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext returns the session resolved by the middleware, nil for anonymous requests
func SessionFromContext(ctx context.Context) *types.Session {
	s, _ := ctx.Value(sessionContextKey).(*types.Session)
	return s
}

// GetUserID retrieves the user ID from the context.
// Returns an empty string and false if the request has no session.
func GetUserID(ctx context.Context) (string, bool) {
	s := SessionFromContext(ctx)
	if s == nil || s.UserID == "" {
		return "", false
	}
	return s.UserID, true
}
