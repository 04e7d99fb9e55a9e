// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	if err := WriteError(rr, http.StatusNotFound, "agency not found"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %q", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}

	if body["status"] != float64(http.StatusNotFound) || body["message"] != "agency not found" {
		t.Errorf("unexpected body %v", body)
	}

	if _, ok := body["redirect_to"]; ok {
		t.Errorf("redirect_to must be omitted when empty")
	}
}

func TestWriteRedirectError(t *testing.T) {
	rr := httptest.NewRecorder()

	_ = WriteRedirectError(rr, http.StatusUnauthorized, "login required", "/auth/login?next=%2Fagency%2Facme")

	var body ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}

	if body.RedirectTo != "/auth/login?next=%2Fagency%2Facme" || body.Status != http.StatusUnauthorized {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestWriteData(t *testing.T) {
	rr := httptest.NewRecorder()

	_ = WriteData(rr, http.StatusCreated, "artist created", map[string]string{"slug": "jane-doe"})

	var body struct {
		Data    map[string]string `json:"data"`
		Message string            `json:"message"`
		Status  int               `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}

	if body.Status != http.StatusCreated || body.Data["slug"] != "jane-doe" || body.Message != "artist created" {
		t.Errorf("unexpected body %+v", body)
	}
}
