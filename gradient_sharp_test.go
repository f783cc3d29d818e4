package colorgrad

import (
	"math"
	"testing"
)

func TestSharpGradient_Stops(t *testing.T) {
	g := newSharpGradient([]Color{Red, Green, Blue}, 0, 12, 1)

	// width = 1 * 12 / 3 / 4 = 1
	want := []float64{0, 3, 5, 7, 9, 12}
	if len(g.stops) != len(want) {
		t.Fatalf("len(stops) = %d, want %d", len(g.stops), len(want))
	}
	for i, s := range g.stops {
		if math.Abs(s.pos-want[i]) > 1e-12 {
			t.Errorf("stops[%d].pos = %v, want %v", i, s.pos, want[i])
		}
	}
}

func TestSharpGradient_StepFunction(t *testing.T) {
	base := mustBuild(t, NewBuilder().Colors(Red, Green, Blue, White).Domain(-2, 2))
	// Sharp samples the base gradient at its own stop positions.
	bands := []Color{Red, Green, Blue, White}

	g := base.Sharp(4, 0)
	if min, max := g.Domain(); min != -2 || max != 2 {
		t.Fatalf("Domain() = (%v, %v), want (-2, 2)", min, max)
	}

	// Band k covers [-2+k, -1+k].
	for k, want := range bands {
		mid := -1.5 + float64(k)
		if got := g.At(mid); !colorsEqual(got, want, 1e-12) {
			t.Errorf("At(%v) = %v, want %v", mid, got, want)
		}
		// No transition zone: just inside each edge is still the band color.
		lo, hi := -2+float64(k), -1+float64(k)
		if k > 0 {
			if got := g.At(math.Nextafter(lo, hi)); got != g.At(mid) {
				t.Errorf("At(%v+) = %v, want band color %v", lo, got, g.At(mid))
			}
		}
		if got := g.At(hi); k < 3 && got != g.At(mid) {
			t.Errorf("At(%v) = %v, want band color %v", hi, got, g.At(mid))
		}
	}
}

func TestSharpGradient_Smoothness(t *testing.T) {
	base := mustBuild(t, NewBuilder().Colors(Red, Blue))
	g := base.Sharp(2, 1)

	// Bands meet at 0.5; the ramp spans 0.5 +- 1/8.
	tests := []struct {
		t    float64
		want Color
	}{
		{0.1, Red},
		{0.375, Red},
		{0.5, NewColor(0.5, 0, 0.5, 1)},
		{0.4375, NewColor(0.75, 0, 0.25, 1)},
		{0.625, Blue},
		{0.9, Blue},
	}
	for _, tt := range tests {
		if got := g.At(tt.t); !colorsEqual(got, tt.want, 1e-9) {
			t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestSharpGradient_SmoothnessClamped(t *testing.T) {
	base := mustBuild(t, NewBuilder().Colors(Red, Green, Blue))
	over, one := base.Sharp(3, 7), base.Sharp(3, 1)
	under, zero := base.Sharp(3, -3), base.Sharp(3, 0)
	for i := 0; i <= 50; i++ {
		x := float64(i) / 50
		if a, b := over.At(x), one.At(x); a != b {
			t.Errorf("Sharp(3, 7).At(%v) = %v, want %v", x, a, b)
		}
		if a, b := under.At(x), zero.At(x); a != b {
			t.Errorf("Sharp(3, -3).At(%v) = %v, want %v", x, a, b)
		}
	}
}

func TestSharpGradient_RampIgnoresBlendMode(t *testing.T) {
	base := mustBuild(t, NewBuilder().Colors(Red, Blue).Mode(BlendOklab))
	g := base.Sharp(2, 1)
	want := Red.LerpRGB(Blue, 0.5)
	if got := g.At(0.5); !colorsEqual(got, want, 1e-9) {
		t.Errorf("At(0.5) = %v, want RGB blend %v", got, want)
	}
}

func TestSharpGradient_SingleSegment(t *testing.T) {
	base := mustBuild(t, NewBuilder().Colors(Red, Blue))
	for _, n := range []uint{0, 1} {
		g := base.Sharp(n, 0.5)
		for _, x := range []float64{-1, 0, 0.3, 0.99, 1, 2} {
			if got := g.At(x); got != Red {
				t.Errorf("Sharp(%d, 0.5).At(%v) = %v, want %v", n, x, got, Red)
			}
		}
	}
}

func TestSharpGradient_Clamp(t *testing.T) {
	g := mustBuild(t, NewBuilder().Colors(Red, Green, Blue)).Sharp(5, 0.3)
	if got := g.At(-1); got != Red {
		t.Errorf("At(-1) = %v, want %v", got, Red)
	}
	if got := g.At(2); got != Blue {
		t.Errorf("At(2) = %v, want %v", got, Blue)
	}
}
