package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Values below the threshold, negatives included, take the linear branch.
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// ClampUnit restricts v to [0, 1]. NaN maps to 0.
func ClampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

// F64ToU8 maps a [0,1] component to [0,255] with rounding.
// Values outside [0,1] saturate. NaN maps to 0.
func F64ToU8(v float64) uint8 {
	//nolint:gosec // G115: ClampUnit bounds the result to a byte
	return uint8(ClampUnit(v)*255.0 + 0.5)
}

// F64ToU16 maps a [0,1] component to [0,65535] with rounding, saturating like F64ToU8.
func F64ToU16(v float64) uint16 {
	//nolint:gosec // G115: ClampUnit bounds the result to 16 bits
	return uint16(ClampUnit(v)*65535.0 + 0.5)
}

// NormalizeHue wraps a hue in degrees into [0, 360). NaN and infinities become 0.
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// U8ToF64 maps a [0,255] component to [0,1].
func U8ToF64(v uint8) float64 {
	return float64(v) / 255.0
}
