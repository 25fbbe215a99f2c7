// SPDX-License-Identifier: MIT

package envconfig

import (
	"fmt"
	"os"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/makramkd/envconfig/internal/log"
)

// Options controls how ProcessWith resolves environment values.
type Options struct {
	// Prefix is prepended to every key, joined with an underscore: prefix
	// "person" turns NAME into PERSON_NAME. It is uppercased and its
	// non-alphanumeric runes become underscores.
	Prefix string

	// AllowMissing downgrades a missing required field from an error to a
	// logged warning, leaving the field at its zero value.
	AllowMissing bool

	// Lookup is the environment source. Defaults to os.LookupEnv.
	Lookup func(key string) (string, bool)

	// Logger overrides the package logger for field-resolution tracing.
	Logger *zerolog.Logger
}

// Process populates spec's exported fields from the process environment.
// spec must be a non-nil pointer to a struct; it is mutated in place.
//
// Each field resolves against the environment variable named by its env tag,
// or derived from the field name (NumRetries reads NUM_RETRIES). A variable
// that is set and non-empty is coerced to the field's type. Otherwise the
// field keeps its current value when that value is non-zero, or takes its
// default tag. A field with neither is required, and Process returns a
// *MissingRequiredFieldError naming it.
//
// Processing is fail-fast and not transactional: the first error halts the
// walk and fields already resolved keep their new values.
func Process(spec any) error {
	return ProcessWith(spec, Options{})
}

// ProcessAs constructs a T, populates it from the process environment, and
// returns it. It is Process for callers that prefer a value over a pointer
// argument.
func ProcessAs[T any]() (T, error) {
	return ProcessAsWith[T](Options{})
}

// ProcessAsWith is ProcessAs with explicit Options.
func ProcessAsWith[T any](opts Options) (T, error) {
	var spec T
	err := ProcessWith(&spec, opts)
	return spec, err
}

// ProcessWith is Process with explicit Options.
func ProcessWith(spec any, opts Options) error {
	v := reflect.ValueOf(spec)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var logger zerolog.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	} else {
		logger = log.WithComponent("envconfig")
	}

	prefix := ""
	if opts.Prefix != "" {
		prefix = normalizeKeyPart(opts.Prefix) + "_"
	}

	elem := v.Elem()
	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		key, ok := fieldKey(f, prefix)
		if !ok {
			continue
		}
		if !supportedType(f.Type) {
			return &UnsupportedTypeError{Field: f.Name, Key: key, Type: f.Type}
		}
		field := elem.Field(i)

		if raw, present := lookup(key); present && raw != "" {
			if err := assign(field, raw); err != nil {
				return &CoercionError{Field: f.Name, Key: key, Value: raw, Type: f.Type, Err: err}
			}
			trace(logger, key, "environment", raw)
			continue
		}

		if !field.IsZero() {
			trace(logger, key, "default", fieldValueString(field))
			continue
		}

		if def, ok := f.Tag.Lookup("default"); ok {
			if err := assign(field, def); err != nil {
				return &CoercionError{Field: f.Name, Key: key, Value: def, Type: f.Type, Err: err}
			}
			trace(logger, key, "default", def)
			continue
		}

		if opts.AllowMissing {
			logger.Warn().
				Str("key", key).
				Str("field", f.Name).
				Msg("required environment variable not set, keeping zero value")
			continue
		}
		return &MissingRequiredFieldError{Field: f.Name, Key: key}
	}
	return nil
}

// fieldKey computes the environment variable name for a struct field. The
// second return is false when the field is excluded via env:"-".
func fieldKey(f reflect.StructField, prefix string) (string, bool) {
	if tag, ok := f.Tag.Lookup("env"); ok {
		if tag == "-" {
			return "", false
		}
		if tag != "" {
			return prefix + tag, true
		}
	}
	return prefix + deriveKey(f.Name), true
}

// trace logs where a field's value came from. Values of sensitive keys are
// never logged, only marked.
func trace(logger zerolog.Logger, key, source, value string) {
	msg := "using default value"
	if source == "environment" {
		msg = "using environment variable"
	}
	ev := logger.Debug().
		Str("key", key).
		Str("source", source)
	if isSensitiveKey(key) {
		ev.Bool("sensitive", true).Msg(msg)
		return
	}
	ev.Str("value", value).Msg(msg)
}

func fieldValueString(field reflect.Value) string {
	if field.Kind() == reflect.Ptr && !field.IsNil() {
		field = field.Elem()
	}
	return fmt.Sprint(field.Interface())
}
