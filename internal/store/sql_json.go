// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonColumn stores an optional value in a JSONB column. A nil pointer maps
// to SQL NULL.
type jsonColumn[T any] struct {
	V **T
}

func (j jsonColumn[T]) Value() (driver.Value, error) {
	if j.V == nil || *j.V == nil {
		return nil, nil
	}
	return json.Marshal(*j.V)
}

func (j jsonColumn[T]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*j.V = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}

	value := new(T)
	if err := json.Unmarshal(raw, value); err != nil {
		return err
	}
	*j.V = value
	return nil
}
