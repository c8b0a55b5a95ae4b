// Package generate turns a schema.Scene into a concrete schema.Output.
//
// What
//
//   - Value resolution: Fixed → itself, Range → uniform sample,
//     Oscillator → schema.Oscillation with every parameter resolved and the
//     phase converted from degrees to radians (absent phase → uniform [0, 2π)).
//   - Count resolution: uniform integer in [min, max] inclusive.
//   - Color resolution: Named passes through, OneOf picks uniformly and
//     recurses, RGB/HSL resolve each channel, RandomColor yields an opaque
//     RGB color with integer channels in [0, 255].
//   - Scene generation: the fixed spinner outline plus count independent
//     instances per generator, shuffled as one list.
//
// Randomness
//
//	Every random draw goes through the *rand.Rand held by a Resolver. Pass
//	WithSeed or WithRand to make a run reproducible; otherwise each Generate
//	call seeds a private source, so concurrent calls never share a stream.
//	A Resolver itself is not safe for concurrent use.
//
// Shuffle
//
//	The object list is shuffled with Fisher–Yates (uniform). WithBiasedShuffle
//	restores the comparison sort with a random comparator used by the first
//	editor release, for callers that need its exact distribution shape.
//
// Errors
//
//	Generation is all-or-nothing: on error the zero Output is returned.
//	Unknown variants surface schema.ErrUnsupportedVariant, an empty OneOf
//	surfaces ErrEmptyChoice and a nil required field surfaces ErrMissingValue.
//	Ranges with min > max are not rejected; see Resolver.Bounded.
//
// Usage
//
//	out, err := generate.Generate(schema.DefaultSpinnerRadiusRatio, scene, generate.WithSeed(42))
package generate
