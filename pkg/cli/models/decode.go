/* Copyright 2025 Off Course Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ValidationError reports a payload that does not match an entity's shape.
// A payload that fails validation must not be used, not even partially.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s: %s", e.Entity, e.Reason)
	}

	return fmt.Sprintf("invalid %s: %s %s", e.Entity, e.Field, e.Reason)
}

// Decoder turns a raw payload into a typed value or fails
type Decoder[T any] interface {
	Decode(raw []byte) (T, error)
}

// DecoderFunc adapts a function to the Decoder interface
type DecoderFunc[T any] func(raw []byte) (T, error)

// Decode calls f(raw)
func (f DecoderFunc[T]) Decode(raw []byte) (T, error) {
	return f(raw)
}

// Decode decodes raw into T. Every JSON field of T without omitempty must be
// present and non-null, primitive types must match, and enum and range tags
// must hold; otherwise a *ValidationError is returned and T is zero.
func Decode[T any](raw []byte) (T, error) {
	var zero, ret T

	t := reflect.TypeOf(ret)
	entity := entityName(t)

	if !json.Valid(raw) {
		return zero, &ValidationError{Entity: entity, Reason: "malformed JSON"}
	}

	if err := checkPresence(t, raw, ""); err != nil {
		err.Entity = entity
		return zero, err
	}

	if err := json.Unmarshal(raw, &ret); err != nil {
		return zero, fromUnmarshalError(entity, err)
	}

	if err := validateValue(reflect.ValueOf(ret)); err != nil {
		return zero, fromValidatorError(entity, err)
	}

	return ret, nil
}

func entityName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() == reflect.Slice {
		return entityName(t.Elem()) + " list"
	}

	if t.Name() == "" {
		return "payload"
	}

	return strings.ToLower(t.Name())
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + "." + name
}

// checkPresence walks raw alongside t and reports the first required key
// that is absent or null
func checkPresence(t reflect.Type, raw json.RawMessage, path string) *ValidationError {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			return &ValidationError{Field: path, Reason: "expected an object"}
		}

		return checkFields(t, obj, path)
	case reflect.Map:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			return &ValidationError{Field: path, Reason: "expected an object"}
		}
	case reflect.Slice:
		// json.RawMessage and []byte are opaque
		if t.Elem().Kind() == reflect.Uint8 {
			return nil
		}

		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil || items == nil {
			return &ValidationError{Field: path, Reason: "expected an array"}
		}

		elem := t.Elem()
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)

			// json.Unmarshal leaves the zero value for null elements
			if isNull(item) && elem.Kind() != reflect.Pointer && elem.Kind() != reflect.Interface {
				return &ValidationError{Field: itemPath, Reason: "is required"}
			}

			if err := checkPresence(elem, item, itemPath); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkFields(t reflect.Type, obj map[string]json.RawMessage, path string) *ValidationError {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}

		// embedded structs contribute their fields to the parent object
		if f.Anonymous && name == "" {
			ft := f.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if err := checkFields(ft, obj, path); err != nil {
					return err
				}
				continue
			}
		}

		if name == "" {
			name = f.Name
		}

		fieldPath := joinPath(path, name)
		val, ok := obj[name]
		if !ok || isNull(val) {
			if strings.Contains(opts, "omitempty") {
				continue
			}

			return &ValidationError{Field: fieldPath, Reason: "is required"}
		}

		if err := checkPresence(f.Type, val, fieldPath); err != nil {
			return err
		}
	}

	return nil
}

func fromUnmarshalError(entity string, err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{
			Entity: entity,
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}

	return &ValidationError{Entity: entity, Reason: err.Error()}
}

func fromValidatorError(entity string, err error) *ValidationError {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]

		// drop the root struct name from the namespace
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}

		return &ValidationError{
			Entity: entity,
			Field:  field,
			Reason: fmt.Sprintf("failed '%s' with value %v", fe.Tag(), fe.Value()),
		}
	}

	return &ValidationError{Entity: entity, Reason: err.Error()}
}

func validateValue(v reflect.Value) error {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return validate.Struct(v.Interface())
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if err := validateValue(v.Index(i)); err != nil {
				return err
			}
		}
	}

	return nil
}
