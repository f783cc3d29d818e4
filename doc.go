// Package colorgrad computes colors along one-dimensional gradients.
//
// # Overview
//
// A gradient is a list of color stops placed over a domain. Sampling it at
// a position t returns the color at t, interpolated in one of four color
// spaces with one of three curves. It is meant for heatmaps, color ramps
// and other visualizations that need a smooth or banded color scale at any
// resolution.
//
// # Quick Start
//
//	import "github.com/gogpu/colorgrad"
//
//	g, err := colorgrad.NewBuilder().
//	    HTMLColors("#C41189", "#00BFFF", "#FFD700").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c := g.At(0.25)       // Color
//	rgba := c.ToRGBA8()   // [4]uint8
//
// # Blend Modes
//
// BlendRGB interpolates gamma-encoded sRGB, BlendLinearRGB linear light,
// BlendOklab the perceptual Oklab space and BlendHSV hue, saturation and
// value. HSV only combines with linear interpolation; spline builds fall
// back to BlendRGB.
//
// # Interpolation
//
//   - InterpolationLinear: straight segments between stops
//   - InterpolationCatmullRom: centripetal Catmull-Rom spline through every stop
//   - InterpolationBasis: uniform cubic B-spline, which smooths interior stops
//
// Gradient.Sharp turns any gradient into flat bands with optional ramps.
//
// # Domain
//
// Positions default to an even spread over [0, 1]. Outside the domain the
// first or last color is returned unchanged; RepeatAt and ReflectAt tile
// the gradient instead.
//
// # Concurrency
//
// Gradients are immutable once built and safe for concurrent use. A
// Builder is not.
package colorgrad
