// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "go-eagle"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:41595/api/application/info")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient that asks for JSON and
// identifies itself with [DefaultUserAgent].
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. No timeout and no retries are
// configured; callers opt into a timeout with SetTimeout.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", DefaultUserAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
