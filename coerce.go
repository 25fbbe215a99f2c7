// SPDX-License-Identifier: MIT

package envconfig

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// supportedType reports whether assign can populate a field of type t: the
// primitive scalar kinds, time.Duration, types implementing
// encoding.TextUnmarshaler, and pointers to any of those.
func supportedType(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}
	if t.Implements(textUnmarshalerType) || reflect.PtrTo(t).Implements(textUnmarshalerType) {
		return true
	}
	if t.Kind() == reflect.Ptr {
		return supportedType(t.Elem())
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// assign coerces raw into field. The caller has already established that the
// field's type is supported. A failed coercion leaves the field untouched;
// nil pointers in particular stay nil.
func assign(field reflect.Value, raw string) error {
	if ok, err := unmarshalText(field, raw); ok {
		return err
	}

	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			scratch := reflect.New(field.Type().Elem())
			if err := assign(scratch.Elem(), raw); err != nil {
				return err
			}
			field.Set(scratch)
			return nil
		}
		return assign(field.Elem(), raw)
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := parseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == durationType {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return err
			}
			field.SetInt(int64(d))
			return nil
		}
		i, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}

// unmarshalText delegates to the field's encoding.TextUnmarshaler when its
// type provides one; the first return reports whether it did. A nil pointer
// field is only attached after a successful unmarshal. Value fields whose
// pointer type implements the interface are addressed in place.
func unmarshalText(field reflect.Value, raw string) (bool, error) {
	if field.Type().Implements(textUnmarshalerType) {
		if field.Kind() == reflect.Ptr && field.IsNil() {
			scratch := reflect.New(field.Type().Elem())
			u := scratch.Interface().(encoding.TextUnmarshaler)
			if err := u.UnmarshalText([]byte(raw)); err != nil {
				return true, err
			}
			field.Set(scratch)
			return true, nil
		}
		if u, ok := field.Interface().(encoding.TextUnmarshaler); ok {
			return true, u.UnmarshalText([]byte(raw))
		}
	}
	if field.CanAddr() {
		if u, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return true, u.UnmarshalText([]byte(raw))
		}
	}
	return false, nil
}

// parseBool accepts the case-insensitive literals "true", "1", "yes" and
// "false", "0", "no".
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value %q: %w", raw, strconv.ErrSyntax)
}
