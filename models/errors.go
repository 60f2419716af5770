// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrJcaDataIsNotObject is returned when a jcadata payload is valid JSON
	// but not a JSON object (array, string, number, bool or null).
	ErrJcaDataIsNotObject = errors.New("jcadata must be a JSON object")

	// ErrTrailingData is returned when a jcadata payload contains more than
	// one JSON value.
	ErrTrailingData = errors.New("unexpected data after jcadata object")
)
