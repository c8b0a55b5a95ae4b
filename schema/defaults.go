// SPDX-License-Identifier: MIT
// Package: kaleido/schema

package schema

// DefaultSpinnerRadiusRatio is the spinner radius relative to the world size.
const DefaultSpinnerRadiusRatio = 0.5

// DefaultScene returns the scene the editor opens with: thin pink outlined
// tiles over short green-to-blue bars on a dark purple background.
func DefaultScene() Scene {
	return Scene{
		Background: "#103",
		Objects: []Generator{
			{
				Count: FixedCount(20),
				Shape: Rectangle{
					Width:  Range{Min: 0.06, Max: 0.1},
					Height: Fixed(0.08),
					Style: Style{
						Stroke:      HSL{H: Range{Min: 300, Max: 360}, S: Fixed(40), L: Fixed(60)},
						StrokeWidth: Fixed(0.01),
					},
				},
			},
			{
				Count: FixedCount(50),
				Shape: Rectangle{
					Width:  Range{Min: 0.05, Max: 0.12},
					Height: Range{Min: 0.02, Max: 0.03},
					Style: Style{
						Fill: HSL{H: Range{Min: 100, Max: 240}, S: Fixed(60), L: Fixed(50)},
					},
				},
			},
		},
	}
}
