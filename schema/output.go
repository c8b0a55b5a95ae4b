// SPDX-License-Identifier: MIT
// Package: kaleido/schema
//
// output.go — resolved values produced by the generator.

package schema

import "math"

// Transparent is the paint used for absent fill and stroke specifications.
const Transparent Named = "transparent"

// Value is a resolved numeric field: Number or Oscillation.
type Value interface {
	isValue()
}

// Number is a concrete resolved number.
type Number float64

// Oscillation carries the resolved parameters of an Oscillator.
// Angle is in radians.
type Oscillation struct {
	Frequency float64
	Angle     float64
	Offset    float64
	Amplitude float64
}

// At evaluates the oscillation at phase t.
func (o Oscillation) At(t float64) float64 {
	return o.Offset + o.Amplitude*math.Sin(o.Frequency*t+o.Angle)
}

func (Number) isValue()      {}
func (Oscillation) isValue() {}

// Paint is a resolved color: Named, RGBPaint or HSLPaint.
type Paint interface {
	isPaint()
}

// RGBPaint is a color with resolved channels.
type RGBPaint struct {
	R Value
	G Value
	B Value
}

// HSLPaint is a color with resolved hue, saturation and lightness.
type HSLPaint struct {
	H Value
	S Value
	L Value
}

func (Named) isPaint()    {}
func (RGBPaint) isPaint() {}
func (HSLPaint) isPaint() {}

// Painting is the resolved counterpart of Style; every field is set.
type Painting struct {
	Fill        Paint
	Stroke      Paint
	StrokeWidth Value
}

// Object is a resolved shape instance.
type Object interface {
	Kind() ShapeKind
	isObject()
}

// CircleObject is a resolved Circle.
type CircleObject struct {
	Radius Value
	Painting
}

// RectangleObject is a resolved Rectangle.
type RectangleObject struct {
	Width  Value
	Height Value
	Painting
}

// PolygonObject is a resolved Polygon.
type PolygonObject struct {
	Sides  int
	Radius Value
	Painting
}

func (CircleObject) Kind() ShapeKind    { return KindCircle }
func (RectangleObject) Kind() ShapeKind { return KindRectangle }
func (PolygonObject) Kind() ShapeKind   { return KindPolygon }
func (CircleObject) isObject()          {}
func (RectangleObject) isObject()       {}
func (PolygonObject) isObject()         {}

// Point is a 2D position.
type Point struct {
	X float64 `json:"x" yaml:"x" msgpack:"x"`
	Y float64 `json:"y" yaml:"y" msgpack:"y"`
}

// Output is the result of one generation request.
type Output struct {
	// SpinnerOutline is the fixed 8-vertex mask polygon.
	SpinnerOutline []Point
	// Objects are in shuffled order; adjacency carries no meaning.
	Objects []Object
}
