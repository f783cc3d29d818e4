package colorgrad

import "math"

// catmullRomGradient is a centripetal Catmull-Rom spline through every stop.
// Each segment stores cubic coefficients per channel, so evaluation is a
// single polynomial after the segment lookup.
type catmullRomGradient struct {
	// segments[i][ch] holds a, b, c, d of a*t^3 + b*t^2 + c*t + d.
	segments    [][4][4]float64
	positions   []float64
	dmin, dmax  float64
	mode        BlendMode
	first, last Color
}

func newCatmullRomGradient(colors []Color, positions []float64, mode BlendMode) *catmullRomGradient {
	values := convertColors(colors, mode)
	segments := make([][4][4]float64, len(values)-1)

	channel := make([]float64, len(values))
	for ch := 0; ch < 4; ch++ {
		for i, v := range values {
			channel[i] = v[ch]
		}
		for i, coef := range catmullRomSegments(channel) {
			segments[i][ch] = coef
		}
	}

	return &catmullRomGradient{
		segments:  segments,
		positions: positions,
		dmin:      positions[0],
		dmax:      positions[len(positions)-1],
		mode:      mode,
		first:     colors[0],
		last:      colors[len(colors)-1],
	}
}

// catmullRomSegments converts one channel's stop values into cubic
// coefficients, one quadruple per consecutive pair.
//
// Tangents follow the centripetal formulation (alpha 0.5, tension 0) from
// https://qroph.github.io/2018/07/30/smooth-paths-using-catmull-rom-splines.html
// The ends are padded with linearly extrapolated values.
func catmullRomSegments(values []float64) [][4]float64 {
	const (
		alpha   = 0.5
		tension = 0.0
	)

	n := len(values)
	vals := make([]float64, 0, n+2)
	vals = append(vals, 2*values[0]-values[1])
	vals = append(vals, values...)
	vals = append(vals, 2*values[n-1]-values[n-2])

	segments := make([][4]float64, 0, n-1)
	for i := 1; i < len(vals)-2; i++ {
		v0, v1, v2, v3 := vals[i-1], vals[i], vals[i+1], vals[i+2]

		t0 := 0.0
		t1 := t0 + math.Pow(math.Abs(v0-v1), alpha)
		t2 := t1 + math.Pow(math.Abs(v1-v2), alpha)
		t3 := t2 + math.Pow(math.Abs(v2-v3), alpha)

		m1 := (1 - tension) * (t2 - t1) *
			((v0-v1)/(t0-t1) - (v0-v2)/(t0-t2) + (v1-v2)/(t1-t2))
		m2 := (1 - tension) * (t2 - t1) *
			((v1-v2)/(t1-t2) - (v1-v3)/(t1-t3) + (v2-v3)/(t2-t3))

		// Coincident values give 0/0.
		if math.IsNaN(m1) {
			m1 = 0
		}
		if math.IsNaN(m2) {
			m2 = 0
		}

		segments = append(segments, [4]float64{
			2*v1 - 2*v2 + m1 + m2,
			-3*v1 + 3*v2 - 2*m1 - m2,
			m1,
			v1,
		})
	}
	return segments
}

func (g *catmullRomGradient) at(t float64) Color {
	if c, ok := outsideDomain(t, g.dmin, g.dmax, g.first, g.last); ok {
		return c
	}

	i := segmentIndex(g.positions, t)
	p0, p1 := g.positions[i], g.positions[i+1]
	t1 := (t - p0) / (p1 - p0)
	t2 := t1 * t1
	t3 := t2 * t1

	var out [4]float64
	for ch, s := range g.segments[i] {
		out[ch] = s[0]*t3 + s[1]*t2 + s[2]*t1 + s[3]
	}
	return colorFromChannels(g.mode, out)
}
