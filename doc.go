// SPDX-License-Identifier: MIT

// Package envconfig populates configuration structs from environment
// variables.
//
// Process walks the exported fields of a struct in declaration order,
// computes each field's environment variable name, and assigns the coerced
// value when the variable is set. Fields the environment does not provide
// fall back to their defaults; a field without a default is required and
// processing fails with a typed error naming it.
//
// # Usage
//
//	type Config struct {
//	    RetryStrategy string
//	    Timeout       int           `default:"15"`
//	    Interval      time.Duration `default:"30s"`
//	    Verbose       bool          `env:"DEBUG" default:"false"`
//	}
//
//	var cfg Config
//	if err := envconfig.Process(&cfg); err != nil {
//	    log.Fatal().Err(err).Msg("configuration failed")
//	}
//
// With RETRY_STRATEGY=exponential set and nothing else, cfg holds
// {"exponential", 15, 30s, false}. With RETRY_STRATEGY unset, Process
// returns a *MissingRequiredFieldError for the field.
//
// ProcessAs builds and returns the struct instead of filling one in place:
//
//	cfg, err := envconfig.ProcessAs[Config]()
//
// # Key Derivation
//
// The variable name derives from the field name: CamelCase words split on
// case and digit boundaries, joined with underscores, uppercased. Acronym
// runs stay together:
//
//   - Name          -> NAME
//   - NumRetries    -> NUM_RETRIES
//   - APIKey        -> API_KEY
//   - HTTPTimeout   -> HTTP_TIMEOUT
//   - S3Bucket      -> S3_BUCKET
//
// An env tag overrides the derived name, and env:"-" excludes the field.
// Unexported fields are always skipped.
//
// # Defaults and Required Fields
//
// A field's default is its current value when that value is non-zero, so a
// pre-populated struct carries its own defaults. Otherwise the default tag
// applies, coerced by the same rules as environment values. A field with
// neither must be present in the environment. A variable that is set but
// empty counts as absent.
//
// # Coercion
//
// Supported field types are string, bool, the integer and float kinds,
// time.Duration ("30s", "1h15m"), any type implementing
// encoding.TextUnmarshaler, and pointers to all of these. Booleans accept
// the case-insensitive literals true/1/yes and false/0/no. Any other field
// type fails with a *UnsupportedTypeError; keep configuration structs flat.
//
// # Errors
//
// Processing is fail-fast and not transactional: the first error halts the
// walk, and fields resolved before it keep their new values. All errors are
// typed (*MissingRequiredFieldError, *CoercionError, *UnsupportedTypeError,
// ErrNotStructPointer) and matchable with errors.As and errors.Is.
//
// # Tracing
//
// Every field resolution is traced at debug level with the key and the
// source it resolved from. Values of keys containing TOKEN, PASSWORD, or
// SECRET are never logged. Set LOG_LEVEL=debug to see resolution decisions,
// or pass Options.Logger to route them elsewhere.
package envconfig
