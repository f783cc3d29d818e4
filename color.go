package colorgrad

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	icolor "github.com/gogpu/colorgrad/internal/color"
)

// Color represents a color with red, green, blue, and alpha components.
// R, G and B are gamma-encoded sRGB; A is straight (not premultiplied) alpha.
// Components are normally in the range [0, 1] but are never clamped, so
// spline overshoot survives until the color is quantized.
type Color struct {
	R, G, B, A float64
}

// NewColor creates a color from sRGB components and alpha.
func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from sRGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// FromRGBA8 creates a color from 8-bit sRGB components.
func FromRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: icolor.U8ToF64(r),
		G: icolor.U8ToF64(g),
		B: icolor.U8ToF64(b),
		A: icolor.U8ToF64(a),
	}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// FromLinearRGBA creates a color from linear RGB components and alpha.
func FromLinearRGBA(r, g, b, a float64) Color {
	return Color{
		R: icolor.LinearToSRGB(r),
		G: icolor.LinearToSRGB(g),
		B: icolor.LinearToSRGB(b),
		A: a,
	}
}

// FromOklab creates a color from Oklab coordinates and alpha.
func FromOklab(l, a, b, alpha float64) Color {
	r, g, bl := icolor.OklabToLinear(l, a, b)
	return FromLinearRGBA(r, g, bl, alpha)
}

// FromHSVA creates a color from hue in degrees, saturation, value and alpha.
// Hue is wrapped into [0, 360).
func FromHSVA(h, s, v, a float64) Color {
	c := colorful.Hsv(icolor.NormalizeHue(h), s, v)
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: icolor.F64ToU16(c.R),
		G: icolor.F64ToU16(c.G),
		B: icolor.F64ToU16(c.B),
		A: icolor.F64ToU16(c.A),
	}.RGBA()
}

// ToRGBA8 quantizes the color to 8 bits per channel, saturating to [0, 255].
func (c Color) ToRGBA8() [4]uint8 {
	return [4]uint8{
		icolor.F64ToU8(c.R),
		icolor.F64ToU8(c.G),
		icolor.F64ToU8(c.B),
		icolor.F64ToU8(c.A),
	}
}

// ToLinearRGBA returns the linear RGB components and alpha.
func (c Color) ToLinearRGBA() (r, g, b, a float64) {
	return icolor.SRGBToLinear(c.R), icolor.SRGBToLinear(c.G), icolor.SRGBToLinear(c.B), c.A
}

// ToOklab returns the Oklab coordinates and alpha.
func (c Color) ToOklab() (l, a, b, alpha float64) {
	r, g, bl, _ := c.ToLinearRGBA()
	l, a, b = icolor.LinearToOklab(r, g, bl)
	return l, a, b, c.A
}

// ToHSVA returns hue in degrees [0, 360), saturation, value and alpha.
// Achromatic colors report hue 0.
func (c Color) ToHSVA() (h, s, v, a float64) {
	h, s, v = colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	return h, s, v, c.A
}

// LerpRGB interpolates between two colors in sRGB space.
func (c Color) LerpRGB(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// LerpLinearRGB interpolates between two colors in linear RGB space.
func (c Color) LerpLinearRGB(other Color, t float64) Color {
	return c.lerpIn(BlendLinearRGB, other, t)
}

// LerpOklab interpolates between two colors in Oklab space.
func (c Color) LerpOklab(other Color, t float64) Color {
	return c.lerpIn(BlendOklab, other, t)
}

// LerpHSV interpolates between two colors in HSV space along the shorter hue arc.
func (c Color) LerpHSV(other Color, t float64) Color {
	return c.lerpIn(BlendHSV, other, t)
}

func (c Color) lerpIn(mode BlendMode, other Color, t float64) Color {
	v := convertColors([]Color{c, other}, mode)
	return colorFromChannels(mode, lerpChannels(mode, v[0], v[1], t))
}

// HexString formats the color as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) HexString() string {
	b := c.ToRGBA8()
	if b[3] == 255 {
		return fmt.Sprintf("#%02x%02x%02x", b[0], b[1], b[2])
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", b[0], b[1], b[2], b[3])
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("RGBA(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = NewColor(0, 0, 0, 0)
)
