package colorgrad

import (
	"math"
	"sort"
)

// evaluator is implemented by every interpolation strategy.
// Implementations are immutable after construction, so at may be
// called from any number of goroutines.
type evaluator interface {
	at(t float64) Color
}

// Gradient maps a scalar in its domain to a color.
//
// A Gradient is created by a Builder (or New, BuildGradient) and by
// Gradient.Sharp. It is immutable and safe for concurrent use.
type Gradient struct {
	impl       evaluator
	dmin, dmax float64
}

// At returns the color at t. Values outside the domain clamp to the
// first or last color. NaN yields opaque black.
func (g *Gradient) At(t float64) Color {
	return g.impl.at(t)
}

// Domain returns the first and last stop positions.
func (g *Gradient) Domain() (min, max float64) {
	return g.dmin, g.dmax
}

// RepeatAt returns the color at t with the gradient repeated outside its domain.
func (g *Gradient) RepeatAt(t float64) Color {
	return g.AtExtend(t, ExtendRepeat)
}

// ReflectAt returns the color at t with the gradient mirrored outside its domain.
func (g *Gradient) ReflectAt(t float64) Color {
	return g.AtExtend(t, ExtendReflect)
}

// AtExtend returns the color at t, mapping t into the domain with mode first.
func (g *Gradient) AtExtend(t float64, mode ExtendMode) Color {
	span := g.dmax - g.dmin
	if mode == ExtendPad || span <= 0 {
		return g.At(t)
	}
	u := applyExtendMode((t-g.dmin)/span, mode)
	return g.At(g.dmin + u*span)
}

// Colors returns n colors sampled evenly across the domain, both ends included.
func (g *Gradient) Colors(n int) []Color {
	pos := linspace(g.dmin, g.dmax, n)
	out := make([]Color, len(pos))
	for i, p := range pos {
		out[i] = g.At(p)
	}
	return out
}

// Sharp returns a posterized copy of the gradient with the given number of
// flat color bands. Smoothness in [0, 1] sets the width of the linear ramp
// between bands; 0 gives hard steps. A segment count of 0 is treated as 1.
func (g *Gradient) Sharp(segments uint, smoothness float64) *Gradient {
	if segments == 0 {
		segments = 1
	}
	return &Gradient{
		impl: newSharpGradient(g.Colors(int(segments)), g.dmin, g.dmax, smoothness),
		dmin: g.dmin,
		dmax: g.dmax,
	}
}

// ExtendMode defines how a gradient is sampled beyond its domain.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// linspace returns n evenly spaced values from min to max inclusive.
func linspace(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{min}
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max
	return out
}

// segmentIndex returns i with positions[i] < t <= positions[i+1].
// t must lie strictly inside the domain; equal adjacent positions are skipped.
func segmentIndex(positions []float64, t float64) int {
	i := sort.SearchFloat64s(positions, t)
	if i == 0 {
		i = 1
	}
	return i - 1
}

// outsideDomain resolves clamping and NaN shared by the strategies.
// ok reports whether c should be returned as is.
func outsideDomain(t, dmin, dmax float64, first, last Color) (c Color, ok bool) {
	switch {
	case t <= dmin:
		return first, true
	case t >= dmax:
		return last, true
	case math.IsNaN(t):
		return nanColor, true
	}
	return Color{}, false
}

// nanColor is returned for NaN input.
var nanColor = RGB(0, 0, 0)
