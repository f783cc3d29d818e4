// Package color provides the numeric color space conversions behind colorgrad.
//
// Every function here works on plain float64 channels and is total over the
// reals: no input produces NaN, and out-of-gamut values pass through
// unclamped. Quantization to 8 bits is the only saturating step.
package color

import "math"

// LinearToOklab converts linear sRGB to Oklab (L, a, b).
//
// References:
//   - https://bottosson.github.io/posts/oklab/
func LinearToOklab(r, g, b float64) (l, a, bb float64) {
	l_ := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m_ := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s_ := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	l = 0.2104542553*l_ + 0.7936177850*m_ - 0.0040720468*s_
	a = 1.9779984951*l_ - 2.4285922050*m_ + 0.4505937099*s_
	bb = 0.0259040371*l_ + 0.7827717662*m_ - 0.8086757660*s_
	return l, a, bb
}

// OklabToLinear converts Oklab (L, a, b) back to linear sRGB.
func OklabToLinear(l, a, b float64) (r, g, bb float64) {
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l3 := l_ * l_ * l_
	m3 := m_ * m_ * m_
	s3 := s_ * s_ * s_

	r = 4.0767416621*l3 - 3.3077115913*m3 + 0.2309699292*s3
	g = -1.2684380046*l3 + 2.6097574011*m3 - 0.3413193965*s3
	bb = -0.0041960863*l3 - 0.7034186147*m3 + 1.7076147010*s3
	return r, g, bb
}
