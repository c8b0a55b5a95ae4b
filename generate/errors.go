// SPDX-License-Identifier: MIT
// Package: kaleido/generate
//
// errors.go — sentinel errors for resolution and generation.
//
// Callers MUST branch with errors.Is; messages carry the method context.

package generate

import (
	"errors"
	"fmt"
)

// ErrEmptyChoice indicates a schema.OneOf color with no elements.
var ErrEmptyChoice = errors.New("generate: empty color choice")

// ErrMissingValue indicates a nil Scalar, Count, Color or Shape in a place
// where the schema requires one (e.g. a Circle without Radius).
var ErrMissingValue = errors.New("generate: missing required value")

// ErrTooManyObjects indicates resolved counts whose total exceeds the limit
// set with WithMaxObjects.
var ErrTooManyObjects = errors.New("generate: too many objects")

// Method names used as error context.
const (
	methodScalar  = "Scalar"
	methodCount   = "Count"
	methodColor   = "Color"
	methodShape   = "Shape"
	methodObjects = "Objects"
	methodScene   = "Scene"
)

// wrapf attaches method context to a sentinel or lower-level error.
func wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("generate: %s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
