// Package kaleido generates procedural kaleidoscope scenes: randomized
// shape populations spun inside a masked wheel and mirrored across a
// triangular reflection lattice.
//
// What is kaleido?
//
//	A small set of packages that turn a declarative scene description into
//	everything a renderer needs:
//		• schema:    scene and output data model, JSON / YAML / msgpack codecs
//		• generate:  seeded resolution of ranges, counts, colors and shapes
//		• lattice:   breadth-first reflection lattice with canonical cell keys
//		• transform: 2×2 mirroring maps composed along lattice paths
//		• sample:    per-frame evaluation of oscillations and colors
//		• tiling:    pixel placement and clip geometry of lattice cells
//
// The daemon in cmd/kaleidod serves all of it over HTTP (internal/api),
// configured from YAML (internal/config) and logging through log/slog
// (internal/logx).
//
// Pipeline:
//
//	Scene ──generate──▶ Output ──sample(t)──▶ Frame
//	                       │
//	lattice.Build(depth) ──tiling.Place──▶ Tiles (left, top, matrix)
//
// Every tile draws the same sampled frame, clipped to one triangle and
// mirrored by its cell transform, which is what produces the kaleidoscope.
package kaleido
