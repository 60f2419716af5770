// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has neither a listen address nor a port, so there is no
// transport to build a handler for. The application fails at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
