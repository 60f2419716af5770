// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the presence checks the proxy applies before
// touching the persistence backend: the shared-secret check on write
// requests and the identifier check on jcadata records.
//
// Record bodies are opaque and are never checked against a schema.
package validators

import "context"

// Validator checks a value. When field names are passed only those rules
// run; otherwise every rule the implementation knows about is applied.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
