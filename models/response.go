// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// StatusSuccess is the envelope status of a successful Eagle API call.
const StatusSuccess = "success"

// Response is the envelope every Eagle API endpoint replies with.
//
// Data is kept raw so that each endpoint can decode it into its own shape,
// or pass it through untouched when no shape is defined. Code is raw too:
// Eagle sends it as a number or a string depending on the endpoint.
type Response struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Code    json.RawMessage `json:"code,omitempty"`
}

// OK reports whether the envelope carries a success status.
func (r Response) OK() bool {
	return r.Status == StatusSuccess
}

// CodeText returns the error code as text, unquoted when Eagle sent a
// string. A missing or null code is empty.
func (r Response) CodeText() string {
	raw := bytes.TrimSpace(r.Code)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
