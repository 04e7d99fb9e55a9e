// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(event, description string, fields ...zap.Field) {
	s.l.Warn(description, append(fields, zap.String("event", event))...)
}

func (s *SecurityLogger) AuthnLoginSuccess(userID string) {
	s.l.Info(
		fmt.Sprintf("user %s login successfully", userID),
		zap.String("event", fmt.Sprintf("authn_login_success:%s", userID)),
	)
}

func (s *SecurityLogger) AuthnFailure(userID, reason string) {
	s.event(
		fmt.Sprintf("authn_fail:%s", userID),
		fmt.Sprintf("authentication failed for user %s", userID),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.event(
		fmt.Sprintf("authz_fail:%s,%s", userID, resource),
		fmt.Sprintf("user %s attempted to access %s without entitlement", userID, resource),
	)
}

func (s *SecurityLogger) AdminAction(userID, action, resource string) {
	s.l.Info(
		fmt.Sprintf("user %s performed %s on %s", userID, action, resource),
		zap.String("event", fmt.Sprintf("admin_action:%s,%s,%s", userID, action, resource)),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("service started", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("service shutting down", zap.String("event", "sys_shutdown"))
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}
