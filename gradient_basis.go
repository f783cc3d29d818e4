package colorgrad

// basisGradient is a uniform cubic B-spline over the stop values.
// It passes through the first and last stop only; interior stops act as
// control points and are smoothed over.
//
// Adapted from https://github.com/d3/d3-interpolate/blob/master/src/basis.js
type basisGradient struct {
	values      [][4]float64
	positions   []float64
	dmin, dmax  float64
	mode        BlendMode
	first, last Color
}

func newBasisGradient(colors []Color, positions []float64, mode BlendMode) *basisGradient {
	return &basisGradient{
		values:    convertColors(colors, mode),
		positions: positions,
		dmin:      positions[0],
		dmax:      positions[len(positions)-1],
		mode:      mode,
		first:     colors[0],
		last:      colors[len(colors)-1],
	}
}

func (g *basisGradient) at(t float64) Color {
	if c, ok := outsideDomain(t, g.dmin, g.dmax, g.first, g.last); ok {
		return c
	}

	i := segmentIndex(g.positions, t)
	p0, p1 := g.positions[i], g.positions[i+1]
	t1 := (t - p0) / (p1 - p0)
	n := len(g.values) - 1

	var out [4]float64
	for ch := range out {
		v1 := g.values[i][ch]
		v2 := g.values[i+1][ch]

		// Missing neighbours at the ends are extrapolated linearly.
		v0 := 2*v1 - v2
		if i > 0 {
			v0 = g.values[i-1][ch]
		}
		v3 := 2*v2 - v1
		if i < n-1 {
			v3 = g.values[i+2][ch]
		}

		out[ch] = basis(t1, v0, v1, v2, v3)
	}
	return colorFromChannels(g.mode, out)
}

// basis evaluates the uniform cubic B-spline blending function.
func basis(t1, v0, v1, v2, v3 float64) float64 {
	t2 := t1 * t1
	t3 := t2 * t1
	return ((1-3*t1+3*t2-t3)*v0 +
		(4-6*t2+3*t3)*v1 +
		(1+3*t1+3*t2-3*t3)*v2 +
		t3*v3) / 6
}
