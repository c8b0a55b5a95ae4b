// SPDX-License-Identifier: MIT

// Package schema defines the declarative scene schema consumed by the
// generator and the resolved output it produces.
//
// What
//
//   - Scene specifications: Scene → []Generator → {Count, Shape}, where every
//     numeric field is a Scalar (Fixed, Range or Oscillator) and every paint
//     field is a Color (Named, OneOf, RGB, HSL or RandomColor).
//   - Resolved output: Output → SpinnerOutline + []Object, where every Scalar
//     became a Value (Number or Oscillation) and every Color became a Paint.
//
// Sum types
//
//	Each union is a sealed interface with an unexported marker method, so
//	only the variants declared here can satisfy it. Consumers type-switch
//	over the concrete variants and treat the default branch as
//	ErrUnsupportedVariant. Bounded is the subset of Scalar that cannot be an
//	Oscillator; using it for oscillator fields makes nested oscillators
//	unrepresentable.
//
// Wire format
//
//	JSON, YAML and msgpack share one plain representation:
//
//		Fixed        → 0.25
//		Range        → {"min": 0.1, "max": 0.2}
//		Oscillator   → {"frequency": 1, "angle": {"min": 0, "max": 90}, "offset": 0.5, "amplitude": 0.1}
//		Named        → "#eea"
//		OneOf        → ["red", {"type": "hsl", "h": 10, "s": 50, "l": 50}]
//		RandomColor  → {"type": "random"}
//		Shape        → {"type": "circle", "radius": 0.1, "fill": "red"}
//		Scene        → {"background": "#103", "objects": [{"count": 3, "shape": {...}}]}
//		Output       → {"spinnerOutline": [{"x": 0, "y": 0}], "objects": [...]}
//
//	The variant of a value is decided once, at decode time. Unknown "type"
//	tags yield ErrUnsupportedVariant; payloads of the wrong structure yield
//	ErrMalformed.
package schema
