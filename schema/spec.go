// SPDX-License-Identifier: MIT
// Package: kaleido/schema
//
// spec.go — immutable input specifications (scalars, counts, colors, shapes).

package schema

// Scalar is a numeric specification: Fixed, Range or Oscillator.
type Scalar interface {
	isScalar()
}

// Bounded is a Scalar that resolves to a plain number: Fixed or Range.
// Oscillator fields and angles are Bounded, so oscillators never nest.
type Bounded interface {
	Scalar
	isBounded()
}

// Fixed is a constant value.
type Fixed float64

// Range is sampled uniformly from [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// Oscillator describes a periodic value evaluated by the rendering layer as
// Offset + Amplitude·sin(Frequency·t + Angle).
type Oscillator struct {
	Frequency Bounded
	// Angle is the phase in degrees. Nil means a uniformly random full turn.
	Angle     Bounded
	Offset    Bounded
	Amplitude Bounded
}

func (Fixed) isScalar()      {}
func (Fixed) isBounded()     {}
func (Range) isScalar()      {}
func (Range) isBounded()     {}
func (Oscillator) isScalar() {}

// Count is an integer specification: FixedCount or CountRange.
type Count interface {
	isCount()
}

// FixedCount is a constant integer.
type FixedCount int

// CountRange is sampled uniformly from the integers in [Min, Max].
type CountRange struct {
	Min int
	Max int
}

func (FixedCount) isCount() {}
func (CountRange) isCount() {}

// Color is a color specification: Named, OneOf, RGB, HSL or RandomColor.
type Color interface {
	isColor()
}

// Named is an opaque color string ("#eea", "red", "transparent") passed
// through unchanged. It is both a Color and a resolved Paint.
type Named string

// OneOf picks one of its elements uniformly at generation time.
// Elements may themselves be OneOf lists.
type OneOf []Color

// RGB builds a color from independently resolved channels in [0,255].
type RGB struct {
	R Scalar
	G Scalar
	B Scalar
}

// HSL builds a color from independently resolved hue (degrees),
// saturation and lightness (percent).
type HSL struct {
	H Scalar
	S Scalar
	L Scalar
}

// RandomColor resolves to an opaque RGB color with random integer channels.
type RandomColor struct{}

func (Named) isColor()       {}
func (OneOf) isColor()       {}
func (RGB) isColor()         {}
func (HSL) isColor()         {}
func (RandomColor) isColor() {}

// ShapeKind is the discriminant of Shape and Object.
type ShapeKind string

const (
	KindCircle    ShapeKind = "circle"
	KindRectangle ShapeKind = "rectangle"
	KindPolygon   ShapeKind = "polygon"
)

// Shape is a shape specification: Circle, Rectangle or Polygon.
type Shape interface {
	Kind() ShapeKind
	isShape()
}

// Style holds the optional paint fields shared by every shape.
// A nil Fill or Stroke means transparent; a nil StrokeWidth means 0.
type Style struct {
	Fill        Color
	Stroke      Color
	StrokeWidth Scalar
}

// Circle is a circle of the given radius.
type Circle struct {
	Radius Scalar
	Style
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Width  Scalar
	Height Scalar
	Style
}

// Polygon is a regular polygon with Sides vertices on a circle of Radius.
type Polygon struct {
	Sides  Count
	Radius Scalar
	Style
}

func (Circle) Kind() ShapeKind    { return KindCircle }
func (Rectangle) Kind() ShapeKind { return KindRectangle }
func (Polygon) Kind() ShapeKind   { return KindPolygon }
func (Circle) isShape()           {}
func (Rectangle) isShape()        {}
func (Polygon) isShape()          {}

// Generator expands into Count independently resolved instances of Shape.
type Generator struct {
	Count Count
	Shape Shape
}

// Scene is the root specification supplied by the editor.
type Scene struct {
	Background string
	Objects    []Generator
}
