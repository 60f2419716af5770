// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// invalidAuthorizationMessage is the exact body of a 401 answer to a write
// request without the shared secret.
const invalidAuthorizationMessage = "Invalid authorization"
