// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("server: no HTTP handler was configured")
	errNoServersToRun      = errors.New("server: nothing to run")
)
