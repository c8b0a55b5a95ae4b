// SPDX-License-Identifier: MIT

// Package transform composes the 2×2 linear maps that mirror source content
// into kaleidoscope cells.
//
// Layout
//
//	Mat2{A, B, C, D} uses the CSS/canvas matrix(a, b, c, d, e, f) layout
//	without translation, i.e. column-major:
//
//		| A  C |   x' = A·x + C·y
//		| B  D |   y' = B·x + D·y
//
// Reflection
//
//	Reflection(θ) = | -cos2θ  -sin2θ |
//	                | -sin2θ   cos2θ |
//
//	computed from cos²θ, sin²θ and 2·cosθ·sinθ. It mirrors across the line
//	perpendicular to direction θ. Every reflection has
//	determinant -1 and is its own inverse.
//
// Composition
//
//	Compose(path) starts from the identity and, for each angle in path
//	order, left-multiplies: M ← Reflection(θ)·M. Reflections do not commute,
//	so reversing the path mirrors the result.
package transform
