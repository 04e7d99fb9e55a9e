// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

const v0ModelDSL = `model
  schema 1.1

type user

type agency
  relations
    define admin: [user]
    define member: [user] or admin

type tenant
  relations
    define agency: [agency]
    define artist: [user]
    define viewer: artist or member from agency
`

var models = map[string]string{
	"v0": v0ModelDSL,
}

type AuthorizationModelProvider struct {
	version string
	model   *fga.AuthorizationModel
}

func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	return p.model
}

func (p *AuthorizationModelProvider) Version() string {
	return p.version
}

func parseModel(dsl string) (*fga.AuthorizationModel, error) {
	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse authorization model: %w", err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		return nil, fmt.Errorf("failed to decode authorization model: %w", err)
	}

	return model, nil
}

// NewAuthorizationModelProvider returns the embedded model for version, it panics on
// unknown versions as the models are compiled in
func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	dsl, ok := models[version]
	if !ok {
		panic(fmt.Sprintf("unknown authorization model version %q", version))
	}

	model, err := parseModel(dsl)
	if err != nil {
		panic(err)
	}

	p := new(AuthorizationModelProvider)
	p.version = version
	p.model = model

	return p
}
