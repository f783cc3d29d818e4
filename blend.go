package colorgrad

import (
	"math"

	icolor "github.com/gogpu/colorgrad/internal/color"
)

// BlendMode selects the color space in which interpolation arithmetic is done.
type BlendMode int

const (
	// BlendRGB interpolates gamma-encoded sRGB components (default).
	BlendRGB BlendMode = iota
	// BlendLinearRGB interpolates linear-light RGB components.
	BlendLinearRGB
	// BlendOklab interpolates in the perceptual Oklab space.
	BlendOklab
	// BlendHSV interpolates hue, saturation and value. Only valid with
	// InterpolationLinear; the builder falls back to BlendRGB otherwise.
	BlendHSV
)

// String returns the name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendRGB:
		return "rgb"
	case BlendLinearRGB:
		return "linear-rgb"
	case BlendOklab:
		return "oklab"
	case BlendHSV:
		return "hsv"
	default:
		return "unknown"
	}
}

// Interpolation selects the curve used between color stops.
type Interpolation int

const (
	// InterpolationLinear is piecewise-linear interpolation (default).
	InterpolationLinear Interpolation = iota
	// InterpolationCatmullRom is a centripetal Catmull-Rom spline through every stop.
	InterpolationCatmullRom
	// InterpolationBasis is a uniform cubic B-spline. It only passes
	// through the first and last stop.
	InterpolationBasis
)

// String returns the name of the interpolation.
func (i Interpolation) String() string {
	switch i {
	case InterpolationLinear:
		return "linear"
	case InterpolationCatmullRom:
		return "catmull-rom"
	case InterpolationBasis:
		return "basis"
	default:
		return "unknown"
	}
}

// convertColors maps colors to the working space of mode.
// Strategies call it once at construction.
func convertColors(colors []Color, mode BlendMode) [][4]float64 {
	out := make([][4]float64, len(colors))
	for i, c := range colors {
		switch mode {
		case BlendLinearRGB:
			out[i][0], out[i][1], out[i][2], out[i][3] = c.ToLinearRGBA()
		case BlendOklab:
			out[i][0], out[i][1], out[i][2], out[i][3] = c.ToOklab()
		case BlendHSV:
			out[i][0], out[i][1], out[i][2], out[i][3] = c.ToHSVA()
		default:
			out[i] = [4]float64{c.R, c.G, c.B, c.A}
		}
	}
	return out
}

// colorFromChannels is the inverse of convertColors for a single value.
func colorFromChannels(mode BlendMode, v [4]float64) Color {
	switch mode {
	case BlendLinearRGB:
		return FromLinearRGBA(v[0], v[1], v[2], v[3])
	case BlendOklab:
		return FromOklab(v[0], v[1], v[2], v[3])
	case BlendHSV:
		return FromHSVA(v[0], v[1], v[2], v[3])
	default:
		return Color{R: v[0], G: v[1], B: v[2], A: v[3]}
	}
}

// lerpChannels interpolates two working-space values. Hue takes the
// shorter arc; an achromatic endpoint borrows the other endpoint's hue.
func lerpChannels(mode BlendMode, a, b [4]float64, t float64) [4]float64 {
	out := [4]float64{
		lerp(a[0], b[0], t),
		lerp(a[1], b[1], t),
		lerp(a[2], b[2], t),
		lerp(a[3], b[3], t),
	}
	if mode == BlendHSV {
		out[0] = lerpHue(a[0], a[1], b[0], b[1], t)
	}
	return out
}

func lerpHue(h0, s0, h1, s1, t float64) float64 {
	switch {
	case s0 == 0 && s1 != 0:
		h0 = h1
	case s1 == 0 && s0 != 0:
		h1 = h0
	}
	delta := math.Mod(math.Mod(h1-h0, 360)+540, 360) - 180
	return icolor.NormalizeHue(h0 + t*delta)
}

// lerp is exact at t=0, at t=1 and when a == b.
func lerp(a, b, t float64) float64 {
	if a == b {
		return a
	}
	return (1-t)*a + t*b
}
