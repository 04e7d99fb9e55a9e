// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
)

const testStoreID = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	logger := logging.NewNoopLogger()

	c, err := NewClient(
		NewConfig(u.Scheme, u.Host, testStoreID, "token", "", false, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return c
}

func TestClientCheck(t *testing.T) {
	for _, allowed := range []bool{true, false} {
		var received map[string]interface{}

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/stores/"+testStoreID+"/check") {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}

			_ = json.NewDecoder(r.Body).Decode(&received)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"allowed": allowed})
		})

		got, err := c.Check(context.Background(), "user:u1", "member", "agency:a1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != allowed {
			t.Errorf("expected allowed=%v, got %v", allowed, got)
		}

		key, _ := received["tuple_key"].(map[string]interface{})
		if key["user"] != "user:u1" || key["relation"] != "member" || key["object"] != "agency:a1" {
			t.Errorf("unexpected tuple key sent: %v", received["tuple_key"])
		}
	}
}

func TestClientWriteTuplesEmptyIsNoop(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected, got %s %s", r.Method, r.URL.Path)
	})

	if err := c.WriteTuples(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := c.DeleteTuples(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTupleString(t *testing.T) {
	tuple := NewTuple("user:u1", "artist", "tenant:t1")

	if got := tuple.String(); got != "tenant:t1#artist@user:u1" {
		t.Errorf("unexpected tuple string %q", got)
	}
}

func TestNoopClient(t *testing.T) {
	logger := logging.NewNoopLogger()
	c := NewNoopClient(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	if err := c.WriteTuples(context.Background(), *NewTuple("user:u1", "member", "agency:a1")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if allowed, _ := c.Check(context.Background(), "user:u1", "member", "agency:a1"); allowed {
		t.Errorf("noop client must never grant access")
	}
}
