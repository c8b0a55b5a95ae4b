// Package sample evaluates a resolved schema.Output at a given phase, the
// step a renderer performs every frame: oscillations become numbers and
// paints become RGBA colors.
//
// Colors
//
//   - "transparent" is fully transparent black.
//   - "#rgb" and "#rrggbb" are parsed with go-colorful.
//   - RGB channels are clamped to [0,255] and rounded.
//   - HSL takes hue in degrees (wrapped into [0,360)) and saturation and
//     lightness in percent (clamped to [0,100]).
//
// Any other named color returns ErrUnknownColor; the browser-side renderer
// is the place to resolve CSS keywords.
package sample

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/kaleido/schema"
)

// ErrUnknownColor is returned for named colors that are neither
// "transparent" nor hex notation.
var ErrUnknownColor = errors.New("sample: unknown color name")

// Shape is one object evaluated at a fixed phase.
type Shape struct {
	Kind        schema.ShapeKind
	Radius      float64 // circle, polygon
	Width       float64 // rectangle
	Height      float64 // rectangle
	Sides       int     // polygon
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
}

// Frame is an Output evaluated at phase T.
type Frame struct {
	T       float64
	Outline []schema.Point
	Shapes  []Shape
}

// Value evaluates v at phase t.
func Value(v schema.Value, t float64) (float64, error) {
	switch x := v.(type) {
	case schema.Number:
		return float64(x), nil
	case schema.Oscillation:
		return x.At(t), nil
	}
	return 0, fmt.Errorf("sample: value %T: %w", v, schema.ErrUnsupportedVariant)
}

// Color evaluates p at phase t.
func Color(p schema.Paint, t float64) (color.RGBA, error) {
	switch x := p.(type) {
	case schema.Named:
		return named(string(x))
	case schema.RGBPaint:
		ch, err := values(t, x.R, x.G, x.B)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{R: channel(ch[0]), G: channel(ch[1]), B: channel(ch[2]), A: 0xff}, nil
	case schema.HSLPaint:
		ch, err := values(t, x.H, x.S, x.L)
		if err != nil {
			return color.RGBA{}, err
		}
		h := math.Mod(ch[0], 360)
		if h < 0 {
			h += 360
		}
		c := colorful.Hsl(h, percent(ch[1]), percent(ch[2])).Clamped()
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	return color.RGBA{}, fmt.Errorf("sample: paint %T: %w", p, schema.ErrUnsupportedVariant)
}

func named(s string) (color.RGBA, error) {
	if s == string(schema.Transparent) {
		return color.RGBA{}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func values(t float64, vs ...schema.Value) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		f, err := Value(v, t)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

func percent(v float64) float64 {
	return math.Max(0, math.Min(100, v)) / 100
}

// Evaluate samples every object of out at phase t.
func Evaluate(out schema.Output, t float64) (Frame, error) {
	f := Frame{
		T:       t,
		Outline: out.SpinnerOutline,
		Shapes:  make([]Shape, 0, len(out.Objects)),
	}
	for i, obj := range out.Objects {
		s, err := evaluateObject(obj, t)
		if err != nil {
			return Frame{}, fmt.Errorf("object %d: %w", i, err)
		}
		f.Shapes = append(f.Shapes, s)
	}
	return f, nil
}

func evaluateObject(obj schema.Object, t float64) (Shape, error) {
	var (
		s        Shape
		painting schema.Painting
		dims     []schema.Value
		dst      []*float64
	)
	switch o := obj.(type) {
	case schema.CircleObject:
		painting, dims, dst = o.Painting, []schema.Value{o.Radius}, []*float64{&s.Radius}
	case schema.RectangleObject:
		painting, dims, dst = o.Painting, []schema.Value{o.Width, o.Height}, []*float64{&s.Width, &s.Height}
	case schema.PolygonObject:
		s.Sides = o.Sides
		painting, dims, dst = o.Painting, []schema.Value{o.Radius}, []*float64{&s.Radius}
	default:
		return Shape{}, fmt.Errorf("sample: object %T: %w", obj, schema.ErrUnsupportedVariant)
	}
	s.Kind = obj.Kind()
	for i, v := range dims {
		f, err := Value(v, t)
		if err != nil {
			return Shape{}, err
		}
		*dst[i] = f
	}
	var err error
	if s.Fill, err = Color(painting.Fill, t); err != nil {
		return Shape{}, err
	}
	if s.Stroke, err = Color(painting.Stroke, t); err != nil {
		return Shape{}, err
	}
	if s.StrokeWidth, err = Value(painting.StrokeWidth, t); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// CSS formats c as a CSS rgba() color.
func CSS(c color.RGBA) string {
	alpha := strconv.FormatFloat(float64(c.A)/0xff, 'f', -1, 64)
	return "rgba(" + strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," + strconv.Itoa(int(c.B)) + "," + alpha + ")"
}
