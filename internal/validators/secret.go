// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const (
	authorizationHeader = "Authorization"
	basicPrefix         = "Basic "
)

// SecretValidator checks the shared write secret carried in
// "Authorization: Basic <secret>".
//
// The credential after the prefix is compared byte for byte with the
// configured secret; it is not base64-decoded.
type SecretValidator struct {
	secret []byte
}

// NewSecretValidator returns a SecretValidator for secret. An empty secret
// never validates.
func NewSecretValidator(secret string) *SecretValidator {
	return &SecretValidator{secret: []byte(secret)}
}

// ValidateHeader reports whether h carries the configured secret. It fails
// closed: a missing header, a header without the "Basic " prefix, or any
// mismatch returns false.
func (v *SecretValidator) ValidateHeader(h http.Header) bool {
	if len(v.secret) == 0 {
		return false
	}

	value := h.Get(authorizationHeader)
	if value == "" {
		return false
	}

	credential, ok := strings.CutPrefix(value, basicPrefix)
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(credential), v.secret) == 1
}
