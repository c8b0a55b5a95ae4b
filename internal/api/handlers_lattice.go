// handlers_lattice.go - Lattice layout handlers
package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/katalvlaran/kaleido/schema"
	"github.com/katalvlaran/kaleido/tiling"
	"github.com/katalvlaran/kaleido/transform"
)

// latticeResponse is the JSON body of GET /api/lattice.
type latticeResponse struct {
	Depth    int             `json:"depth"`
	Viewport tiling.Viewport `json:"viewport"`
	Clip     [3]schema.Point `json:"clip"`
	Cells    []latticeCell   `json:"cells"`
}

type latticeCell struct {
	Path     []float64      `json:"path"`
	Position schema.Point   `json:"position"`
	Matrix   transform.Mat2 `json:"matrix"`
	Left     float64        `json:"left"`
	Top      float64        `json:"top"`
	CSS      string         `json:"css"`
}

// HandleLattice returns the cells of the reflection lattice placed in the
// configured viewport.
//
// Query: depth (default from config, capped at lattice.max_depth).
func (h *Handler) HandleLattice(c echo.Context) error {
	depth, err := queryInt(c, "depth", h.cfg.Lattice.Depth)
	if err != nil {
		return err
	}
	if depth < 0 {
		return NewValidationError("depth", fmt.Errorf("must not be negative, got %d", depth))
	}
	if depth > h.cfg.Lattice.MaxDepth {
		depth = h.cfg.Lattice.MaxDepth
	}

	cells, err := h.lattice.Get(depth)
	if err != nil {
		return domainError("failed to build lattice", err)
	}

	vp := h.cfg.Viewport
	tiles := tiling.Place(vp, cells)
	resp := latticeResponse{
		Depth:    depth,
		Viewport: vp,
		Clip:     tiling.ClipTriangle(vp.Radius),
		Cells:    make([]latticeCell, len(tiles)),
	}
	for i, t := range tiles {
		resp.Cells[i] = latticeCell{
			Path:     t.Cell.Path,
			Position: t.Cell.Position,
			Matrix:   t.Matrix,
			Left:     t.Left,
			Top:      t.Top,
			CSS:      t.CSSMatrix(),
		}
	}
	return c.JSON(http.StatusOK, resp)
}
