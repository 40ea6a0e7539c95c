package domain

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Optional is a present-or-absent patch field. A JSON key that appears in the
// body marks the field present. Explicit null is accepted only when T can hold
// it (pointer, slice, map or interface).
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) && !nullable[T]() {
		return BadRequest("field may not be null")
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o Optional[T]) applyTo(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

func nullable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}
