// SPDX-License-Identifier: MIT

// Package transform - Mat2 value type & reflection composition.
//
// Purpose:
//   - Represent the per-cell linear map as a plain comparable value.
//   - Keep the multiplication order fixed: new = R(θ)·previous.
//
// Complexity quicksheet:
//   - Reflection, Mul, Apply: O(1); Compose: O(len(path)).

package transform

import (
	"math"
	"strconv"
	"strings"
)

// Mat2 is a 2×2 linear map in CSS matrix(a, b, c, d) order.
type Mat2 struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// Identity returns the identity map.
func Identity() Mat2 {
	return Mat2{A: 1, B: 0, C: 0, D: 1}
}

// Reflection returns the mirror across the line perpendicular to direction
// theta (radians): the edge a cell shares with its neighbor at theta.
func Reflection(theta float64) Mat2 {
	cos := math.Cos(theta)
	sin := math.Sin(theta)
	cc := cos * cos
	ss := sin * sin
	cs2 := -2 * cos * sin
	return Mat2{
		A: -cc + ss,
		B: cs2,
		C: cs2,
		D: cc - ss,
	}
}

// Mul returns m·n, i.e. n applied first, then m.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
	}
}

// Compose folds path into a single map: each angle's reflection is applied
// after everything before it.
func Compose(path []float64) Mat2 {
	m := Identity()
	for _, theta := range path {
		m = Reflection(theta).Mul(m)
	}
	return m
}

// Apply maps the point (x, y).
func (m Mat2) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y, m.B*x + m.D*y
}

// Det returns the determinant; ±1 for any composition of reflections.
func (m Mat2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// ApproxEqual reports whether every component differs by at most eps.
func (m Mat2) ApproxEqual(n Mat2, eps float64) bool {
	return math.Abs(m.A-n.A) <= eps &&
		math.Abs(m.B-n.B) <= eps &&
		math.Abs(m.C-n.C) <= eps &&
		math.Abs(m.D-n.D) <= eps
}

// CSS renders m as "matrix(a,b,c,d,0,0)" with prec fractional digits.
func (m Mat2) CSS(prec int) string {
	var sb strings.Builder
	sb.WriteString("matrix(")
	for i, v := range [4]float64{m.A, m.B, m.C, m.D} {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', prec, 64))
	}
	sb.WriteString(",0,0)")
	return sb.String()
}
