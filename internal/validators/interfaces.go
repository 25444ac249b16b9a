// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they are sent to the
// Eagle API, so that obviously broken calls fail locally with a descriptive
// error instead of an opaque remote one.
//
// Only required fields and value ranges are checked. Responses are never
// validated.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate returns nil when obj is acceptable, or an error wrapping one
	// of the sentinel values of this package.
	Validate(ctx context.Context, obj any) error
}
