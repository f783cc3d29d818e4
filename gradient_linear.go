package colorgrad

// linearGradient interpolates piecewise-linearly between consecutive stops
// in the working space of its blend mode.
type linearGradient struct {
	values      [][4]float64
	positions   []float64
	dmin, dmax  float64
	mode        BlendMode
	first, last Color
}

// newLinearGradient expects len(colors) == len(positions) >= 2 and
// non-decreasing positions; the builder guarantees both.
func newLinearGradient(colors []Color, positions []float64, mode BlendMode) *linearGradient {
	return &linearGradient{
		values:    convertColors(colors, mode),
		positions: positions,
		dmin:      positions[0],
		dmax:      positions[len(positions)-1],
		mode:      mode,
		first:     colors[0],
		last:      colors[len(colors)-1],
	}
}

func (g *linearGradient) at(t float64) Color {
	if c, ok := outsideDomain(t, g.dmin, g.dmax, g.first, g.last); ok {
		return c
	}

	i := segmentIndex(g.positions, t)
	p0, p1 := g.positions[i], g.positions[i+1]
	u := (t - p0) / (p1 - p0)

	return colorFromChannels(g.mode, lerpChannels(g.mode, g.values[i], g.values[i+1], u))
}
