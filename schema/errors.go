// SPDX-License-Identifier: MIT
// Package: kaleido/schema
//
// errors.go — sentinel errors for decoding and resolving schema values.
//
// Error policy:
//   • Only sentinel variables are exported; callers branch with errors.Is.
//   • Decoders attach the offending field path with %w wrapping.

package schema

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVariant indicates a tagged value whose tag is unknown to this
// version of the schema (e.g. {"type": "ellipse"}), or a variant used where it
// is not permitted (an oscillator inside an oscillator).
var ErrUnsupportedVariant = errors.New("schema: unsupported variant")

// ErrMalformed indicates a payload with the wrong structure for the field it
// occupies (string where a number is required, range without "max", ...).
var ErrMalformed = errors.New("schema: malformed value")

// wrapf prefixes a sentinel with the field path and a short reason.
func wrapf(sentinel error, at, format string, args ...interface{}) error {
	return fmt.Errorf("schema: %s: %s: %w", at, fmt.Sprintf(format, args...), sentinel)
}
