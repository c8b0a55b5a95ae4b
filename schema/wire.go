// SPDX-License-Identifier: MIT
// Package: kaleido/schema
//
// wire.go — conversion between typed values and the plain wire tree
// (map[string]interface{} / []interface{} / float64 / string) shared by the
// JSON, YAML and msgpack codecs.
//
// Contract:
//   • encode* never fails for values built from the declared variants; a
//     foreign implementation of a sealed interface cannot exist.
//   • decode* decides the variant once and returns ErrUnsupportedVariant or
//     ErrMalformed wrapped with the field path.

package schema

import (
	"fmt"
	"math"
)

// Wire field names.
const (
	keyType        = "type"
	keyMin         = "min"
	keyMax         = "max"
	keyFrequency   = "frequency"
	keyAngle       = "angle"
	keyOffset      = "offset"
	keyAmplitude   = "amplitude"
	keyRadius      = "radius"
	keyWidth       = "width"
	keyHeight      = "height"
	keySides       = "sides"
	keyFill        = "fill"
	keyStroke      = "stroke"
	keyStrokeWidth = "strokeWidth"
	keyCount       = "count"
	keyShape       = "shape"
	keyBackground  = "background"
	keyObjects     = "objects"
	keyGenerators  = "generators" // accepted on input as an alias of objects
	keySpinner     = "spinnerOutline"
	keyX           = "x"
	keyY           = "y"

	tagRGB    = "rgb"
	tagHSL    = "hsl"
	tagRandom = "random"
)

type wireMap = map[string]interface{}

// -----------------------------------------------------------------------------
// Encoding
// -----------------------------------------------------------------------------

func encodeScalar(s Scalar) interface{} {
	switch v := s.(type) {
	case Fixed:
		return float64(v)
	case Range:
		return wireMap{keyMin: v.Min, keyMax: v.Max}
	case Oscillator:
		m := wireMap{
			keyFrequency: encodeScalar(v.Frequency),
			keyOffset:    encodeScalar(v.Offset),
			keyAmplitude: encodeScalar(v.Amplitude),
		}
		if v.Angle != nil {
			m[keyAngle] = encodeScalar(v.Angle)
		}
		return m
	}
	return nil
}

func encodeCount(c Count) interface{} {
	switch v := c.(type) {
	case FixedCount:
		return int(v)
	case CountRange:
		return wireMap{keyMin: v.Min, keyMax: v.Max}
	}
	return nil
}

func encodeColor(c Color) interface{} {
	switch v := c.(type) {
	case Named:
		return string(v)
	case OneOf:
		list := make([]interface{}, len(v))
		for i, el := range v {
			list[i] = encodeColor(el)
		}
		return list
	case RGB:
		return wireMap{keyType: tagRGB, "r": encodeScalar(v.R), "g": encodeScalar(v.G), "b": encodeScalar(v.B)}
	case HSL:
		return wireMap{keyType: tagHSL, "h": encodeScalar(v.H), "s": encodeScalar(v.S), "l": encodeScalar(v.L)}
	case RandomColor:
		return wireMap{keyType: tagRandom}
	}
	return nil
}

func encodeStyle(m wireMap, st Style) {
	if st.Fill != nil {
		m[keyFill] = encodeColor(st.Fill)
	}
	if st.Stroke != nil {
		m[keyStroke] = encodeColor(st.Stroke)
	}
	if st.StrokeWidth != nil {
		m[keyStrokeWidth] = encodeScalar(st.StrokeWidth)
	}
}

func encodeShape(s Shape) interface{} {
	m := wireMap{keyType: string(s.Kind())}
	switch v := s.(type) {
	case Circle:
		m[keyRadius] = encodeScalar(v.Radius)
		encodeStyle(m, v.Style)
	case Rectangle:
		m[keyWidth] = encodeScalar(v.Width)
		m[keyHeight] = encodeScalar(v.Height)
		encodeStyle(m, v.Style)
	case Polygon:
		m[keySides] = encodeCount(v.Sides)
		m[keyRadius] = encodeScalar(v.Radius)
		encodeStyle(m, v.Style)
	}
	return m
}

func encodeScene(s Scene) interface{} {
	objects := make([]interface{}, len(s.Objects))
	for i, g := range s.Objects {
		objects[i] = wireMap{keyCount: encodeCount(g.Count), keyShape: encodeShape(g.Shape)}
	}
	return wireMap{keyBackground: s.Background, keyObjects: objects}
}

func encodeValue(v Value) interface{} {
	switch x := v.(type) {
	case Number:
		return float64(x)
	case Oscillation:
		return wireMap{
			keyFrequency: x.Frequency,
			keyAngle:     x.Angle,
			keyOffset:    x.Offset,
			keyAmplitude: x.Amplitude,
		}
	}
	return nil
}

func encodePaint(p Paint) interface{} {
	switch v := p.(type) {
	case Named:
		return string(v)
	case RGBPaint:
		return wireMap{keyType: tagRGB, "r": encodeValue(v.R), "g": encodeValue(v.G), "b": encodeValue(v.B)}
	case HSLPaint:
		return wireMap{keyType: tagHSL, "h": encodeValue(v.H), "s": encodeValue(v.S), "l": encodeValue(v.L)}
	}
	return nil
}

func encodePainting(m wireMap, p Painting) {
	m[keyFill] = encodePaint(p.Fill)
	m[keyStroke] = encodePaint(p.Stroke)
	m[keyStrokeWidth] = encodeValue(p.StrokeWidth)
}

func encodeObject(o Object) interface{} {
	m := wireMap{keyType: string(o.Kind())}
	switch v := o.(type) {
	case CircleObject:
		m[keyRadius] = encodeValue(v.Radius)
		encodePainting(m, v.Painting)
	case RectangleObject:
		m[keyWidth] = encodeValue(v.Width)
		m[keyHeight] = encodeValue(v.Height)
		encodePainting(m, v.Painting)
	case PolygonObject:
		m[keySides] = v.Sides
		m[keyRadius] = encodeValue(v.Radius)
		encodePainting(m, v.Painting)
	}
	return m
}

func encodeOutput(o Output) interface{} {
	outline := make([]interface{}, len(o.SpinnerOutline))
	for i, p := range o.SpinnerOutline {
		outline[i] = wireMap{keyX: p.X, keyY: p.Y}
	}
	objects := make([]interface{}, len(o.Objects))
	for i, obj := range o.Objects {
		objects[i] = encodeObject(obj)
	}
	return wireMap{keySpinner: outline, keyObjects: objects}
}

// -----------------------------------------------------------------------------
// Decoding helpers
// -----------------------------------------------------------------------------

// asFloat accepts every numeric kind the three decoders can produce.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// asInt accepts integral numbers only.
func asInt(v interface{}) (int, bool) {
	f, ok := asFloat(v)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// asMap normalizes string-keyed maps; YAML may produce interface{} keys.
func asMap(v interface{}) (wireMap, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(wireMap, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

func field(at, name string) string {
	return at + "." + name
}

func decodeFloatField(m wireMap, at, name string) (float64, error) {
	raw, ok := m[name]
	if !ok {
		return 0, wrapf(ErrMalformed, field(at, name), "missing")
	}
	f, ok := asFloat(raw)
	if !ok {
		return 0, wrapf(ErrMalformed, field(at, name), "want number, got %T", raw)
	}
	return f, nil
}

func decodeIntField(m wireMap, at, name string) (int, error) {
	raw, ok := m[name]
	if !ok {
		return 0, wrapf(ErrMalformed, field(at, name), "missing")
	}
	n, ok := asInt(raw)
	if !ok {
		return 0, wrapf(ErrMalformed, field(at, name), "want integer, got %v", raw)
	}
	return n, nil
}

// -----------------------------------------------------------------------------
// Decoding specifications
// -----------------------------------------------------------------------------

func decodeBounded(v interface{}, at string) (Bounded, error) {
	if f, ok := asFloat(v); ok {
		return Fixed(f), nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, wrapf(ErrMalformed, at, "want number or range, got %T", v)
	}
	if _, osc := m[keyFrequency]; osc {
		return nil, wrapf(ErrUnsupportedVariant, at, "oscillator not allowed here")
	}
	lo, err := decodeFloatField(m, at, keyMin)
	if err != nil {
		return nil, err
	}
	hi, err := decodeFloatField(m, at, keyMax)
	if err != nil {
		return nil, err
	}
	return Range{Min: lo, Max: hi}, nil
}

func decodeScalar(v interface{}, at string) (Scalar, error) {
	m, ok := asMap(v)
	if !ok {
		return decodeBounded(v, at)
	}
	if _, osc := m[keyFrequency]; !osc {
		return decodeBounded(m, at)
	}
	var (
		o   Oscillator
		err error
	)
	if o.Frequency, err = decodeBounded(m[keyFrequency], field(at, keyFrequency)); err != nil {
		return nil, err
	}
	if raw, has := m[keyAngle]; has && raw != nil {
		if o.Angle, err = decodeBounded(raw, field(at, keyAngle)); err != nil {
			return nil, err
		}
	}
	for _, f := range []struct {
		name string
		dst  *Bounded
	}{{keyOffset, &o.Offset}, {keyAmplitude, &o.Amplitude}} {
		raw, has := m[f.name]
		if !has {
			return nil, wrapf(ErrMalformed, field(at, f.name), "missing")
		}
		if *f.dst, err = decodeBounded(raw, field(at, f.name)); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func decodeCount(v interface{}, at string) (Count, error) {
	if _, ok := asFloat(v); ok {
		n, ok := asInt(v)
		if !ok {
			return nil, wrapf(ErrMalformed, at, "want integer, got %v", v)
		}
		return FixedCount(n), nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, wrapf(ErrMalformed, at, "want integer or range, got %T", v)
	}
	lo, err := decodeIntField(m, at, keyMin)
	if err != nil {
		return nil, err
	}
	hi, err := decodeIntField(m, at, keyMax)
	if err != nil {
		return nil, err
	}
	return CountRange{Min: lo, Max: hi}, nil
}

func decodeChannels(m wireMap, at string, names [3]string) ([3]Scalar, error) {
	var out [3]Scalar
	for i, name := range names {
		raw, ok := m[name]
		if !ok {
			return out, wrapf(ErrMalformed, field(at, name), "missing")
		}
		s, err := decodeScalar(raw, field(at, name))
		if err != nil {
			return out, err
		}
		out[i] = s
	}
	return out, nil
}

func decodeColor(v interface{}, at string) (Color, error) {
	switch c := v.(type) {
	case string:
		return Named(c), nil
	case []interface{}:
		list := make(OneOf, len(c))
		for i, el := range c {
			col, err := decodeColor(el, fmt.Sprintf("%s[%d]", at, i))
			if err != nil {
				return nil, err
			}
			list[i] = col
		}
		return list, nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, wrapf(ErrMalformed, at, "want color, got %T", v)
	}
	tag, _ := m[keyType].(string)
	switch tag {
	case tagRGB:
		ch, err := decodeChannels(m, at, [3]string{"r", "g", "b"})
		if err != nil {
			return nil, err
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	case tagHSL:
		ch, err := decodeChannels(m, at, [3]string{"h", "s", "l"})
		if err != nil {
			return nil, err
		}
		return HSL{H: ch[0], S: ch[1], L: ch[2]}, nil
	case tagRandom, "":
		if raw, has := m[keyType]; has && tag == "" {
			return nil, wrapf(ErrMalformed, field(at, keyType), "want string, got %T", raw)
		}
		return RandomColor{}, nil
	}
	return nil, wrapf(ErrUnsupportedVariant, field(at, keyType), "color %q", tag)
}

func decodeStyle(m wireMap, at string) (Style, error) {
	var (
		st  Style
		err error
	)
	if raw, ok := m[keyFill]; ok && raw != nil {
		if st.Fill, err = decodeColor(raw, field(at, keyFill)); err != nil {
			return st, err
		}
	}
	if raw, ok := m[keyStroke]; ok && raw != nil {
		if st.Stroke, err = decodeColor(raw, field(at, keyStroke)); err != nil {
			return st, err
		}
	}
	if raw, ok := m[keyStrokeWidth]; ok && raw != nil {
		if st.StrokeWidth, err = decodeScalar(raw, field(at, keyStrokeWidth)); err != nil {
			return st, err
		}
	}
	return st, nil
}

func decodeScalarField(m wireMap, at, name string) (Scalar, error) {
	raw, ok := m[name]
	if !ok {
		return nil, wrapf(ErrMalformed, field(at, name), "missing")
	}
	return decodeScalar(raw, field(at, name))
}

func decodeShape(v interface{}, at string) (Shape, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, wrapf(ErrMalformed, at, "want shape object, got %T", v)
	}
	tag, _ := m[keyType].(string)
	switch ShapeKind(tag) {
	case KindCircle, KindRectangle, KindPolygon:
	default:
		return nil, wrapf(ErrUnsupportedVariant, field(at, keyType), "shape %q", tag)
	}
	style, err := decodeStyle(m, at)
	if err != nil {
		return nil, err
	}
	switch ShapeKind(tag) {
	case KindCircle:
		r, err := decodeScalarField(m, at, keyRadius)
		if err != nil {
			return nil, err
		}
		return Circle{Radius: r, Style: style}, nil
	case KindRectangle:
		w, err := decodeScalarField(m, at, keyWidth)
		if err != nil {
			return nil, err
		}
		h, err := decodeScalarField(m, at, keyHeight)
		if err != nil {
			return nil, err
		}
		return Rectangle{Width: w, Height: h, Style: style}, nil
	default:
		raw, ok := m[keySides]
		if !ok {
			return nil, wrapf(ErrMalformed, field(at, keySides), "missing")
		}
		sides, err := decodeCount(raw, field(at, keySides))
		if err != nil {
			return nil, err
		}
		r, err := decodeScalarField(m, at, keyRadius)
		if err != nil {
			return nil, err
		}
		return Polygon{Sides: sides, Radius: r, Style: style}, nil
	}
}

func decodeScene(v interface{}) (Scene, error) {
	const at = "scene"
	m, ok := asMap(v)
	if !ok {
		return Scene{}, wrapf(ErrMalformed, at, "want object, got %T", v)
	}
	var s Scene
	if raw, ok := m[keyBackground]; ok && raw != nil {
		bg, ok := raw.(string)
		if !ok {
			return Scene{}, wrapf(ErrMalformed, field(at, keyBackground), "want string, got %T", raw)
		}
		s.Background = bg
	}
	raw, ok := m[keyObjects]
	if !ok {
		raw = m[keyGenerators]
	}
	if raw == nil {
		return s, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return Scene{}, wrapf(ErrMalformed, field(at, keyObjects), "want array, got %T", raw)
	}
	if len(list) == 0 {
		return s, nil
	}
	s.Objects = make([]Generator, 0, len(list))
	for i, el := range list {
		gAt := fmt.Sprintf("%s.%s[%d]", at, keyObjects, i)
		gm, ok := asMap(el)
		if !ok {
			return Scene{}, wrapf(ErrMalformed, gAt, "want object, got %T", el)
		}
		rawCount, ok := gm[keyCount]
		if !ok {
			return Scene{}, wrapf(ErrMalformed, field(gAt, keyCount), "missing")
		}
		count, err := decodeCount(rawCount, field(gAt, keyCount))
		if err != nil {
			return Scene{}, err
		}
		shape, err := decodeShape(gm[keyShape], field(gAt, keyShape))
		if err != nil {
			return Scene{}, err
		}
		s.Objects = append(s.Objects, Generator{Count: count, Shape: shape})
	}
	return s, nil
}

// -----------------------------------------------------------------------------
// Decoding resolved output
// -----------------------------------------------------------------------------

func decodeValue(v interface{}, at string) (Value, error) {
	if f, ok := asFloat(v); ok {
		return Number(f), nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, wrapf(ErrMalformed, at, "want number or oscillation, got %T", v)
	}
	var (
		o   Oscillation
		err error
	)
	if o.Frequency, err = decodeFloatField(m, at, keyFrequency); err != nil {
		return nil, err
	}
	if o.Angle, err = decodeFloatField(m, at, keyAngle); err != nil {
		return nil, err
	}
	if o.Offset, err = decodeFloatField(m, at, keyOffset); err != nil {
		return nil, err
	}
	if o.Amplitude, err = decodeFloatField(m, at, keyAmplitude); err != nil {
		return nil, err
	}
	return o, nil
}

func decodeValueField(m wireMap, at, name string) (Value, error) {
	raw, ok := m[name]
	if !ok {
		return nil, wrapf(ErrMalformed, field(at, name), "missing")
	}
	return decodeValue(raw, field(at, name))
}

func decodePaint(v interface{}, at string) (Paint, error) {
	if s, ok := v.(string); ok {
		return Named(s), nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, wrapf(ErrMalformed, at, "want paint, got %T", v)
	}
	tag, _ := m[keyType].(string)
	var names [3]string
	switch tag {
	case tagRGB:
		names = [3]string{"r", "g", "b"}
	case tagHSL:
		names = [3]string{"h", "s", "l"}
	default:
		return nil, wrapf(ErrUnsupportedVariant, field(at, keyType), "paint %q", tag)
	}
	var ch [3]Value
	for i, name := range names {
		val, err := decodeValueField(m, at, name)
		if err != nil {
			return nil, err
		}
		ch[i] = val
	}
	if tag == tagRGB {
		return RGBPaint{R: ch[0], G: ch[1], B: ch[2]}, nil
	}
	return HSLPaint{H: ch[0], S: ch[1], L: ch[2]}, nil
}

func decodePainting(m wireMap, at string) (Painting, error) {
	var (
		p   Painting
		err error
	)
	if p.Fill, err = decodePaint(m[keyFill], field(at, keyFill)); err != nil {
		return p, err
	}
	if p.Stroke, err = decodePaint(m[keyStroke], field(at, keyStroke)); err != nil {
		return p, err
	}
	if p.StrokeWidth, err = decodeValueField(m, at, keyStrokeWidth); err != nil {
		return p, err
	}
	return p, nil
}

func decodeObject(v interface{}, at string) (Object, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, wrapf(ErrMalformed, at, "want object, got %T", v)
	}
	tag, _ := m[keyType].(string)
	switch ShapeKind(tag) {
	case KindCircle, KindRectangle, KindPolygon:
	default:
		return nil, wrapf(ErrUnsupportedVariant, field(at, keyType), "shape %q", tag)
	}
	painting, err := decodePainting(m, at)
	if err != nil {
		return nil, err
	}
	switch ShapeKind(tag) {
	case KindCircle:
		r, err := decodeValueField(m, at, keyRadius)
		if err != nil {
			return nil, err
		}
		return CircleObject{Radius: r, Painting: painting}, nil
	case KindRectangle:
		w, err := decodeValueField(m, at, keyWidth)
		if err != nil {
			return nil, err
		}
		h, err := decodeValueField(m, at, keyHeight)
		if err != nil {
			return nil, err
		}
		return RectangleObject{Width: w, Height: h, Painting: painting}, nil
	default:
		sides, err := decodeIntField(m, at, keySides)
		if err != nil {
			return nil, err
		}
		r, err := decodeValueField(m, at, keyRadius)
		if err != nil {
			return nil, err
		}
		return PolygonObject{Sides: sides, Radius: r, Painting: painting}, nil
	}
}

func decodeOutput(v interface{}) (Output, error) {
	const at = "output"
	m, ok := asMap(v)
	if !ok {
		return Output{}, wrapf(ErrMalformed, at, "want object, got %T", v)
	}
	var out Output
	if raw, ok := m[keySpinner].([]interface{}); ok && len(raw) > 0 {
		out.SpinnerOutline = make([]Point, len(raw))
		for i, el := range raw {
			pAt := fmt.Sprintf("%s.%s[%d]", at, keySpinner, i)
			pm, ok := asMap(el)
			if !ok {
				return Output{}, wrapf(ErrMalformed, pAt, "want point, got %T", el)
			}
			x, err := decodeFloatField(pm, pAt, keyX)
			if err != nil {
				return Output{}, err
			}
			y, err := decodeFloatField(pm, pAt, keyY)
			if err != nil {
				return Output{}, err
			}
			out.SpinnerOutline[i] = Point{X: x, Y: y}
		}
	}
	if raw, ok := m[keyObjects].([]interface{}); ok && len(raw) > 0 {
		out.Objects = make([]Object, len(raw))
		for i, el := range raw {
			obj, err := decodeObject(el, fmt.Sprintf("%s.%s[%d]", at, keyObjects, i))
			if err != nil {
				return Output{}, err
			}
			out.Objects[i] = obj
		}
	}
	return out, nil
}
