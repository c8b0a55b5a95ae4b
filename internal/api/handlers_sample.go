// handlers_sample.go - Frame sampling handlers
package api

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/katalvlaran/kaleido/sample"
	"github.com/katalvlaran/kaleido/schema"
)

type frameResponse struct {
	T              float64         `json:"t"`
	SpinnerOutline []schema.Point  `json:"spinnerOutline"`
	Shapes         []shapeResponse `json:"shapes"`
}

type shapeResponse struct {
	Type        schema.ShapeKind `json:"type"`
	Radius      float64          `json:"radius,omitempty"`
	Width       float64          `json:"width,omitempty"`
	Height      float64          `json:"height,omitempty"`
	Sides       int              `json:"sides,omitempty"`
	Fill        string           `json:"fill"`
	Stroke      string           `json:"stroke"`
	StrokeWidth float64          `json:"strokeWidth"`
}

// HandleSample evaluates a posted output at phase t, turning every
// oscillation into a number and every paint into a CSS rgba() color.
//
// Query: t (default 0).
func (h *Handler) HandleSample(c echo.Context) error {
	t, err := queryFloat(c, "t", 0)
	if err != nil {
		return err
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return NewValidationError("t", nil)
	}

	out, err := bindOutput(c)
	if err != nil {
		return err
	}

	frame, err := sample.Evaluate(out, t)
	if err != nil {
		return domainError("failed to sample output", err)
	}

	resp := frameResponse{
		T:              frame.T,
		SpinnerOutline: frame.Outline,
		Shapes:         make([]shapeResponse, len(frame.Shapes)),
	}
	for i, s := range frame.Shapes {
		resp.Shapes[i] = shapeResponse{
			Type:        s.Kind,
			Radius:      s.Radius,
			Width:       s.Width,
			Height:      s.Height,
			Sides:       s.Sides,
			Fill:        sample.CSS(s.Fill),
			Stroke:      sample.CSS(s.Stroke),
			StrokeWidth: s.StrokeWidth,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
