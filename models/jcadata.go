// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// IdentifierField is the name of the JSON field that identifies a jcadata
// record. It is the only accepted identifier field: records carrying "id"
// instead are treated as unidentified.
const IdentifierField = "identifier"

// JcaData is a single jcadata record: an arbitrary JSON object describing a
// server or client installation. The proxy enforces no schema on it apart
// from the presence of [IdentifierField]; the record is stored and returned
// verbatim.
//
// Numbers are kept as [json.Number] when the record is produced by
// [DecodeJcaData], so integer values survive a save/fetch round trip
// without float conversion.
type JcaData map[string]any

// Identifier returns the value of [IdentifierField] and reports whether it
// is present as a non-empty JSON string.
func (d JcaData) Identifier() (string, bool) {
	identifier, ok := d[IdentifierField].(string)
	if !ok || identifier == "" {
		return "", false
	}

	return identifier, true
}

// DecodeJcaData reads exactly one JSON object from r.
//
// It fails with [ErrJcaDataIsNotObject] for any other JSON value (including
// null) and with [ErrTrailingData] if r holds anything after the object.
func DecodeJcaData(r io.Reader) (JcaData, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var data JcaData
	if err := decoder.Decode(&data); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: got %s", ErrJcaDataIsNotObject, typeErr.Value)
		}
		return nil, fmt.Errorf("error decoding jcadata: %w", err)
	}

	if data == nil {
		return nil, ErrJcaDataIsNotObject
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return data, nil
}

// UnmarshalJcaData is the []byte counterpart of [DecodeJcaData], used when
// reading stored records back from a backend.
func UnmarshalJcaData(raw []byte) (JcaData, error) {
	return DecodeJcaData(bytes.NewReader(raw))
}

// UnmarshalJcaDataList decodes a JSON array of jcadata records. A JSON null
// yields an empty, non-nil slice.
func UnmarshalJcaDataList(raw []byte) ([]JcaData, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var list []JcaData
	if err := decoder.Decode(&list); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: got %s", ErrJcaDataIsNotObject, typeErr.Value)
		}
		return nil, fmt.Errorf("error decoding jcadata list: %w", err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	for i, data := range list {
		if data == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrJcaDataIsNotObject, i)
		}
	}

	if list == nil {
		list = []JcaData{}
	}

	return list, nil
}
