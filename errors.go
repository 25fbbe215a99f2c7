// SPDX-License-Identifier: MIT

package envconfig

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotStructPointer is returned when the value handed to Process is not a
// non-nil pointer to a struct.
var ErrNotStructPointer = errors.New("envconfig: target must be a non-nil struct pointer")

// MissingRequiredFieldError reports a field without a default whose
// environment variable is unset or empty.
type MissingRequiredFieldError struct {
	Field string // struct field name
	Key   string // environment variable that was looked up
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("envconfig: required field %s: environment variable %s is not set", e.Field, e.Key)
}

// CoercionError reports a value, from the environment or from a default tag,
// that could not be converted to the field's type. It wraps the underlying
// parse error.
type CoercionError struct {
	Field string
	Key   string
	Value string
	Type  reflect.Type
	Err   error
}

func (e *CoercionError) Error() string {
	value := e.Value
	if isSensitiveKey(e.Key) {
		value = redactedPlaceholder
	}
	return fmt.Sprintf("envconfig: field %s (%s): cannot coerce %q to %s: %v", e.Field, e.Key, value, e.Type, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// UnsupportedTypeError reports a struct field whose type the processor cannot
// populate from a single environment string.
type UnsupportedTypeError struct {
	Field string
	Key   string
	Type  reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("envconfig: field %s (%s): unsupported type %s", e.Field, e.Key, e.Type)
}
