// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
)

type OpenFGAClientInterface interface {
	Check(context.Context, string, string, string, ...Tuple) (bool, error)
	WriteTuples(context.Context, ...Tuple) error
	DeleteTuples(context.Context, ...Tuple) error
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	WriteModel(context.Context, *client.ClientWriteAuthorizationModelRequest) (string, error)
	CreateStore(context.Context, string) (string, error)
	SetStoreID(context.Context, string) error
}
