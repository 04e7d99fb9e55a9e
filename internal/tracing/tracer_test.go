// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"

	"github.com/canonical/agency-service/internal/logging"
)

func TestNewTracerDisabledReturnsNoop(t *testing.T) {
	tracer := NewTracer(NewConfig(false, "", "", logging.NewNoopLogger()))

	ctx, span := tracer.Start(context.Background(), "tracing.TestNewTracerDisabledReturnsNoop")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Error("expected noop span to carry an invalid span context")
	}
}

func TestNewTracerStdoutExporter(t *testing.T) {
	tracer := NewTracer(NewConfig(true, "", "", logging.NewNoopLogger()))

	_, span := tracer.Start(context.Background(), "tracing.TestNewTracerStdoutExporter")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Error("expected a recording span when tracing is enabled")
	}
}
