// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every JSON endpoint answers with
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

// ErrorResponse is returned on failures, RedirectTo is set when the caller should navigate elsewhere
type ErrorResponse struct {
	Status     int    `json:"status"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}

func WriteData(w http.ResponseWriter, status int, message string, data interface{}) error {
	return WriteJSON(
		w,
		status,
		Response{
			Data:    data,
			Message: message,
			Status:  status,
		},
	)
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(
		w,
		status,
		ErrorResponse{
			Status:  status,
			Message: message,
		},
	)
}

func WriteRedirectError(w http.ResponseWriter, status int, message, redirectTo string) error {
	return WriteJSON(
		w,
		status,
		ErrorResponse{
			Status:     status,
			Message:    message,
			RedirectTo: redirectTo,
		},
	)
}
