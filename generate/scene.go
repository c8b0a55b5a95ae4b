// SPDX-License-Identifier: MIT
// Package: kaleido/generate
//
// scene.go — spinner outline, shape resolution and the Generate entry point.

package generate

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/kaleido/schema"
)

// Spinner outline: outer band at ratio·spinnerOuterScale, inner band at ratio.
// The outline runs out along the 1·π/6 edge and closes along 0.999·π/6,
// leaving a hairline seam between the two.
const spinnerOuterScale = 1.3

var (
	spinnerOuter = [...]float64{1, 5, 9, 0.999}
	spinnerInner = [...]float64{0.999, 9, 5, 1}
)

// Spinner returns the 8-vertex spinner mask polygon for the given radius
// ratio. Angles are multiples of π/6 computed in float64 at run time.
func Spinner(ratio float64) []schema.Point {
	step := math.Pi
	step /= 6
	outer := ratio * spinnerOuterScale

	pts := make([]schema.Point, 0, len(spinnerOuter)+len(spinnerInner))
	for _, k := range spinnerOuter {
		pts = append(pts, posFromAngle(step*k, outer))
	}
	for _, k := range spinnerInner {
		pts = append(pts, posFromAngle(step*k, ratio))
	}
	return pts
}

func posFromAngle(angle, radius float64) schema.Point {
	return schema.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// Shape resolves one instance of s.
func (r *Resolver) Shape(s schema.Shape) (schema.Object, error) {
	switch v := s.(type) {
	case schema.Circle:
		radius, err := r.Scalar(v.Radius)
		if err != nil {
			return nil, err
		}
		p, err := r.painting(v.Style)
		if err != nil {
			return nil, err
		}
		return schema.CircleObject{Radius: radius, Painting: p}, nil
	case schema.Rectangle:
		w, err := r.Scalar(v.Width)
		if err != nil {
			return nil, err
		}
		h, err := r.Scalar(v.Height)
		if err != nil {
			return nil, err
		}
		p, err := r.painting(v.Style)
		if err != nil {
			return nil, err
		}
		return schema.RectangleObject{Width: w, Height: h, Painting: p}, nil
	case schema.Polygon:
		sides, err := r.Count(v.Sides)
		if err != nil {
			return nil, err
		}
		radius, err := r.Scalar(v.Radius)
		if err != nil {
			return nil, err
		}
		p, err := r.painting(v.Style)
		if err != nil {
			return nil, err
		}
		return schema.PolygonObject{Sides: sides, Radius: radius, Painting: p}, nil
	case nil:
		return nil, wrapf(methodShape, ErrMissingValue, "nil shape")
	}
	return nil, wrapf(methodShape, schema.ErrUnsupportedVariant, "%T", s)
}

// Objects expands every generator (count resolved once per generator) and
// shuffles the aggregate list. With WithMaxObjects, the running total is
// checked as each count resolves, before any of its shapes are built.
func (r *Resolver) Objects(gens []schema.Generator) ([]schema.Object, error) {
	var objects []schema.Object
	total := 0
	for i, g := range gens {
		n, err := r.Count(g.Count)
		if err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
		if r.maxObjects > 0 && n > r.maxObjects-total {
			return nil, fmt.Errorf("generator %d: %w", i,
				wrapf(methodObjects, ErrTooManyObjects, "%d more objects exceed the limit of %d", n, r.maxObjects))
		}
		if n > 0 {
			total += n
		}
		for j := 0; j < n; j++ {
			obj, err := r.Shape(g.Shape)
			if err != nil {
				return nil, fmt.Errorf("generator %d: %w", i, err)
			}
			objects = append(objects, obj)
		}
	}
	r.shuffle(objects)
	return objects, nil
}

// shuffle permutes objects in place.
func (r *Resolver) shuffle(objects []schema.Object) {
	if r.biased {
		// less answers at random; the resulting order depends on the sort
		// algorithm and is not uniform.
		sort.SliceStable(objects, func(_, _ int) bool {
			return r.rng.Float64()-0.5 < 0
		})
		return
	}
	r.rng.Shuffle(len(objects), func(i, j int) {
		objects[i], objects[j] = objects[j], objects[i]
	})
}

// Scene resolves a complete scene. The spinner outline is computed first;
// it consumes no randomness.
func (r *Resolver) Scene(spinnerRadiusRatio float64, scene schema.Scene) (schema.Output, error) {
	spinner := Spinner(spinnerRadiusRatio)
	objects, err := r.Objects(scene.Objects)
	if err != nil {
		return schema.Output{}, wrapf(methodScene, err, "resolve objects")
	}
	r.log.Debug("scene generated",
		slog.Int("generators", len(scene.Objects)),
		slog.Int("objects", len(objects)),
		slog.Bool("biased_shuffle", r.biased))
	return schema.Output{SpinnerOutline: spinner, Objects: objects}, nil
}

// Generate resolves scene with a fresh Resolver built from opts.
func Generate(spinnerRadiusRatio float64, scene schema.Scene, opts ...Option) (schema.Output, error) {
	return NewResolver(opts...).Scene(spinnerRadiusRatio, scene)
}
