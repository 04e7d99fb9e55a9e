// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
)

var _ OpenFGAClientInterface = (*NoopClient)(nil)

// NoopClient stands in when relationship authorization is disabled, writes are dropped
type NoopClient struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *NoopClient) Check(ctx context.Context, user, relation, object string, _ ...Tuple) (bool, error) {
	_, span := c.tracer.Start(ctx, "openfga.NoopClient.Check")
	defer span.End()

	return false, nil
}

func (c *NoopClient) WriteTuples(ctx context.Context, tuples ...Tuple) error {
	_, span := c.tracer.Start(ctx, "openfga.NoopClient.WriteTuples")
	defer span.End()

	c.logger.Debugf("authorization disabled, skipping %d tuple writes", len(tuples))
	return nil
}

func (c *NoopClient) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	_, span := c.tracer.Start(ctx, "openfga.NoopClient.DeleteTuples")
	defer span.End()

	return nil
}

func (c *NoopClient) ReadModel(context.Context) (*fga.AuthorizationModel, error) {
	return nil, nil
}

func (c *NoopClient) CompareModel(context.Context, fga.AuthorizationModel) (bool, error) {
	return true, nil
}

func (c *NoopClient) WriteModel(context.Context, *client.ClientWriteAuthorizationModelRequest) (string, error) {
	return "", nil
}

func (c *NoopClient) CreateStore(context.Context, string) (string, error) {
	return "", nil
}

func (c *NoopClient) SetStoreID(context.Context, string) error {
	return nil
}

func NewNoopClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *NoopClient {
	c := new(NoopClient)
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
