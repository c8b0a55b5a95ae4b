// SPDX-License-Identifier: MIT
// Package: kaleido/tiling

// Package tiling lays lattice cells out in a pixel viewport.
//
// Every cell is drawn as a 2r×2r square holding the same sampled image,
// clipped to the triangle from ClipTriangle and mirrored by the cell's
// transform. Cell (x, y) has its top-left corner at
//
//	Left = W/2 − r + x·r
//	Top  = H/2 − r + y·r
//
// so the origin cell is centered in the viewport.
package tiling

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kaleido/lattice"
	"github.com/katalvlaran/kaleido/schema"
	"github.com/katalvlaran/kaleido/transform"
)

// ErrInvalidViewport is returned by Validate for non-positive dimensions.
var ErrInvalidViewport = errors.New("tiling: invalid viewport")

// CSSPrecision is the number of decimals used for transform components.
const CSSPrecision = 2

// Viewport is the pixel area the tiles are laid out in.
type Viewport struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	// Radius is the tile half-size; one lattice unit equals Radius pixels.
	Radius float64 `json:"radius" yaml:"radius"`
}

// DefaultViewport returns a 480×480 viewport with 60px tiles.
func DefaultViewport() Viewport {
	return Viewport{Width: 480, Height: 480, Radius: 60}
}

// Validate reports whether every dimension is positive and finite.
func (vp Viewport) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"width", vp.Width}, {"height", vp.Height}, {"radius", vp.Radius}} {
		if !(f.v > 0) || math.IsInf(f.v, 1) {
			return fmt.Errorf("%w: %s %v", ErrInvalidViewport, f.name, f.v)
		}
	}
	return nil
}

// Tile is a cell positioned in a viewport.
type Tile struct {
	Cell   lattice.Cell
	Left   float64
	Top    float64
	Matrix transform.Mat2
}

// CSSMatrix renders the tile transform as a CSS matrix() value.
func (t Tile) CSSMatrix() string {
	return t.Matrix.CSS(CSSPrecision)
}

// Place positions cells in vp, preserving their order.
func Place(vp Viewport, cells []lattice.Cell) []Tile {
	tiles := make([]Tile, len(cells))
	cx := vp.Width/2 - vp.Radius
	cy := vp.Height/2 - vp.Radius
	for i, c := range cells {
		tiles[i] = Tile{
			Cell:   c,
			Left:   cx + c.Position.X*vp.Radius,
			Top:    cy + c.Position.Y*vp.Radius,
			Matrix: c.Transform(),
		}
	}
	return tiles
}

// ClipTriangle returns the triangle, in tile-local pixels, that every tile
// is clipped to: the top-center point and the points at 30° and 150° on
// the circle of radius r around the tile center.
func ClipTriangle(r float64) [3]schema.Point {
	step := math.Pi
	step /= 6
	return [3]schema.Point{
		{X: r, Y: 0},
		{X: r + r*math.Cos(step), Y: r + r*math.Sin(step)},
		{X: r + r*math.Cos(step*5), Y: r + r*math.Sin(step*5)},
	}
}
