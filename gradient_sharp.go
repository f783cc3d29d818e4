package colorgrad

import "sort"

// sharpStop is a position/color pair in a sharpGradient.
type sharpStop struct {
	pos   float64
	color Color
}

// sharpGradient shows flat color bands with optional linear ramps between
// them. Each base color owns two stops, at the start and end of its band;
// ramps always blend in plain sRGB.
type sharpGradient struct {
	stops       []sharpStop
	dmin, dmax  float64
	first, last Color
}

// newSharpGradient builds len(colors) equal bands over [dmin, dmax].
// smoothness is clamped to [0, 1]; each inner band edge moves inward by
// smoothness*span/n/4, so 0 gives a pure step function.
func newSharpGradient(colors []Color, dmin, dmax, smoothness float64) *sharpGradient {
	n := len(colors)
	width := clamp01(smoothness) * (dmax - dmin) / float64(n) / 4
	edges := linspace(dmin, dmax, n+1)

	stops := make([]sharpStop, 0, 2*n)
	for i, c := range colors {
		start, end := edges[i], edges[i+1]
		if i > 0 {
			start += width
		}
		if i < n-1 {
			end -= width
		}
		stops = append(stops, sharpStop{pos: start, color: c}, sharpStop{pos: end, color: c})
	}

	return &sharpGradient{
		stops: stops,
		dmin:  dmin,
		dmax:  dmax,
		first: colors[0],
		last:  colors[n-1],
	}
}

func (g *sharpGradient) at(t float64) Color {
	if c, ok := outsideDomain(t, g.dmin, g.dmax, g.first, g.last); ok {
		return c
	}

	// First stop at or after t.
	hi := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].pos >= t
	})
	if hi == 0 {
		hi = 1
	}
	lo := hi - 1
	s0, s1 := g.stops[lo], g.stops[hi]

	// Stops 2k and 2k+1 bound band k; odd-to-even pairs are ramps.
	if lo%2 == 0 {
		return s0.color
	}
	return s0.color.LerpRGB(s1.color, (t-s0.pos)/(s1.pos-s0.pos))
}
