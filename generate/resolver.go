// SPDX-License-Identifier: MIT
// Package: kaleido/generate
//
// resolver.go — Value, Count, Angle and Color resolution.
//
// Every method consumes the Resolver's RNG in a fixed order (fields in
// declaration order, depth-first), so a seeded Resolver is reproducible.

package generate

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/kaleido/schema"
)

const (
	fullTurn    = 2 * math.Pi       // radians
	degToRad    = 2 * math.Pi / 360 // degrees → radians
	channelSpan = 256               // random RGB channels are in [0, channelSpan)
)

// Resolver resolves individual specifications against one random stream.
// It is not safe for concurrent use.
type Resolver struct {
	rng        *rand.Rand
	biased     bool
	log        *slog.Logger
	maxObjects int
}

// NewResolver builds a Resolver from opts.
func NewResolver(opts ...Option) *Resolver {
	cfg := newConfig(opts...)
	return &Resolver{rng: cfg.rng, biased: cfg.biased, log: cfg.log, maxObjects: cfg.maxObjects}
}

// uniform returns min + u·(max-min) with u in [0,1).
func (r *Resolver) uniform(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// Bounded resolves a Fixed or Range to a number. A Range with Min > Max is
// sampled with the same formula and therefore lands in (Max, Min].
func (r *Resolver) Bounded(b schema.Bounded) (float64, error) {
	switch v := b.(type) {
	case schema.Fixed:
		return float64(v), nil
	case schema.Range:
		return r.uniform(v.Min, v.Max), nil
	case nil:
		return 0, wrapf(methodScalar, ErrMissingValue, "nil bounded value")
	}
	return 0, wrapf(methodScalar, schema.ErrUnsupportedVariant, "%T", b)
}

// Angle resolves an optional phase given in degrees to radians.
// A nil angle is a uniform draw over a full turn.
func (r *Resolver) Angle(b schema.Bounded) (float64, error) {
	if b == nil {
		return r.uniform(0, fullTurn), nil
	}
	deg, err := r.Bounded(b)
	if err != nil {
		return 0, err
	}
	return deg * degToRad, nil
}

// Scalar resolves s to a schema.Number or, for oscillators, to a
// schema.Oscillation that is carried through unevaluated.
func (r *Resolver) Scalar(s schema.Scalar) (schema.Value, error) {
	switch v := s.(type) {
	case schema.Fixed, schema.Range:
		n, err := r.Bounded(v.(schema.Bounded))
		if err != nil {
			return nil, err
		}
		return schema.Number(n), nil
	case schema.Oscillator:
		return r.oscillator(v)
	case nil:
		return nil, wrapf(methodScalar, ErrMissingValue, "nil scalar")
	}
	return nil, wrapf(methodScalar, schema.ErrUnsupportedVariant, "%T", s)
}

func (r *Resolver) oscillator(o schema.Oscillator) (schema.Value, error) {
	var (
		out schema.Oscillation
		err error
	)
	if out.Frequency, err = r.Bounded(o.Frequency); err != nil {
		return nil, err
	}
	if out.Angle, err = r.Angle(o.Angle); err != nil {
		return nil, err
	}
	if out.Offset, err = r.Bounded(o.Offset); err != nil {
		return nil, err
	}
	if out.Amplitude, err = r.Bounded(o.Amplitude); err != nil {
		return nil, err
	}
	return out, nil
}

// Count resolves c to an integer in [Min, Max] inclusive. A CountRange with
// Max < Min yields Min.
func (r *Resolver) Count(c schema.Count) (int, error) {
	switch v := c.(type) {
	case schema.FixedCount:
		return int(v), nil
	case schema.CountRange:
		if v.Max < v.Min {
			return v.Min, nil
		}
		return v.Min + r.rng.Intn(v.Max-v.Min+1), nil
	case nil:
		return 0, wrapf(methodCount, ErrMissingValue, "nil count")
	}
	return 0, wrapf(methodCount, schema.ErrUnsupportedVariant, "%T", c)
}

// Color resolves c to a concrete paint.
func (r *Resolver) Color(c schema.Color) (schema.Paint, error) {
	switch v := c.(type) {
	case schema.Named:
		return v, nil
	case schema.OneOf:
		if len(v) == 0 {
			return nil, wrapf(methodColor, ErrEmptyChoice, "one-of with no elements")
		}
		return r.Color(v[r.rng.Intn(len(v))])
	case schema.RGB:
		ch, err := r.channels(v.R, v.G, v.B)
		if err != nil {
			return nil, err
		}
		return schema.RGBPaint{R: ch[0], G: ch[1], B: ch[2]}, nil
	case schema.HSL:
		ch, err := r.channels(v.H, v.S, v.L)
		if err != nil {
			return nil, err
		}
		return schema.HSLPaint{H: ch[0], S: ch[1], L: ch[2]}, nil
	case schema.RandomColor:
		return schema.RGBPaint{
			R: schema.Number(r.rng.Intn(channelSpan)),
			G: schema.Number(r.rng.Intn(channelSpan)),
			B: schema.Number(r.rng.Intn(channelSpan)),
		}, nil
	case nil:
		return nil, wrapf(methodColor, ErrMissingValue, "nil color")
	}
	return nil, wrapf(methodColor, schema.ErrUnsupportedVariant, "%T", c)
}

func (r *Resolver) channels(a, b, c schema.Scalar) ([3]schema.Value, error) {
	var out [3]schema.Value
	for i, s := range [3]schema.Scalar{a, b, c} {
		v, err := r.Scalar(s)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

// paintOr resolves an optional color; nil means transparent.
func (r *Resolver) paintOr(c schema.Color) (schema.Paint, error) {
	if c == nil {
		return schema.Transparent, nil
	}
	return r.Color(c)
}

// painting resolves a Style. Fill, stroke and stroke width are resolved in
// that order.
func (r *Resolver) painting(st schema.Style) (schema.Painting, error) {
	var (
		p   schema.Painting
		err error
	)
	if p.Fill, err = r.paintOr(st.Fill); err != nil {
		return p, err
	}
	if p.Stroke, err = r.paintOr(st.Stroke); err != nil {
		return p, err
	}
	if st.StrokeWidth == nil {
		p.StrokeWidth = schema.Number(0)
		return p, nil
	}
	if p.StrokeWidth, err = r.Scalar(st.StrokeWidth); err != nil {
		return p, err
	}
	return p, nil
}
