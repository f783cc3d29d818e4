package colorgrad

import "math"

// Builder collects colors, positions and modes, and validates them in Build.
//
// Invalid color strings passed to HTMLColors do not stop the chain; they
// are collected and reported together by Build.
//
// Example:
//
//	g, err := colorgrad.NewBuilder().
//	    HTMLColors("deeppink", "gold", "seagreen").
//	    Domain(0, 100).
//	    Mode(colorgrad.BlendOklab).
//	    Build()
type Builder struct {
	colors        []Color
	positions     []float64
	mode          BlendMode
	interpolation Interpolation
	invalidColors []string
}

// NewBuilder returns a builder with BlendRGB and InterpolationLinear.
func NewBuilder() *Builder {
	return &Builder{
		mode:          BlendRGB,
		interpolation: InterpolationLinear,
	}
}

// Colors appends colors.
func (b *Builder) Colors(colors ...Color) *Builder {
	b.colors = append(b.colors, colors...)
	return b
}

// HTMLColors appends colors given in CSS syntax. See ParseHTML for the
// accepted forms.
func (b *Builder) HTMLColors(colors ...string) *Builder {
	for _, s := range colors {
		c, err := ParseHTML(s)
		if err != nil {
			b.invalidColors = append(b.invalidColors, s)
			continue
		}
		b.colors = append(b.colors, c)
	}
	return b
}

// Domain sets the stop positions. Either one position per color, or two
// values giving the domain over which the colors are spread evenly.
// Without a domain the colors are spread over [0, 1].
func (b *Builder) Domain(positions ...float64) *Builder {
	b.positions = append([]float64(nil), positions...)
	return b
}

// Mode sets the blend mode.
func (b *Builder) Mode(mode BlendMode) *Builder {
	b.mode = mode
	return b
}

// Interpolation sets the interpolation.
func (b *Builder) Interpolation(interpolation Interpolation) *Builder {
	b.interpolation = interpolation
	return b
}

// Build validates the collected input and returns the gradient.
// It does not modify the builder, so it may be called repeatedly.
//
// Errors are an *InvalidColorError, ErrWrongDomainCount or ErrWrongDomain.
func (b *Builder) Build() (*Gradient, error) {
	log := Logger()

	if len(b.invalidColors) > 0 {
		err := &InvalidColorError{Colors: append([]string(nil), b.invalidColors...)}
		log.Debug("colorgrad: build rejected", "err", err)
		return nil, err
	}

	var colors []Color
	switch len(b.colors) {
	case 0:
		colors = []Color{Black, White}
	case 1:
		colors = []Color{b.colors[0], b.colors[0]}
	default:
		colors = append([]Color(nil), b.colors...)
	}

	positions, err := resolvePositions(b.positions, len(colors))
	if err != nil {
		log.Debug("colorgrad: build rejected", "err", err, "positions", b.positions, "colors", len(colors))
		return nil, err
	}

	mode := b.mode
	if mode == BlendHSV && b.interpolation != InterpolationLinear {
		log.Debug("colorgrad: blend mode fallback",
			"from", BlendHSV, "to", BlendRGB, "interpolation", b.interpolation)
		mode = BlendRGB
	}

	var impl evaluator
	switch b.interpolation {
	case InterpolationCatmullRom:
		impl = newCatmullRomGradient(colors, positions, mode)
	case InterpolationBasis:
		impl = newBasisGradient(colors, positions, mode)
	default:
		impl = newLinearGradient(colors, positions, mode)
	}

	g := &Gradient{
		impl: impl,
		dmin: positions[0],
		dmax: positions[len(positions)-1],
	}
	log.Debug("colorgrad: gradient built",
		"stops", len(colors), "mode", mode, "interpolation", b.interpolation,
		"min", g.dmin, "max", g.dmax)
	return g, nil
}

// resolvePositions turns user positions into one position per color.
func resolvePositions(pos []float64, n int) ([]float64, error) {
	switch len(pos) {
	case 0:
		return linspace(0, 1, n), nil
	case n:
		for i, p := range pos {
			if !isFinite(p) || (i > 0 && pos[i-1] > p) {
				return nil, ErrWrongDomain
			}
		}
		return append([]float64(nil), pos...), nil
	case 2:
		if !isFinite(pos[0]) || !isFinite(pos[1]) || pos[0] >= pos[1] {
			return nil, ErrWrongDomain
		}
		return linspace(pos[0], pos[1], n), nil
	default:
		return nil, ErrWrongDomainCount
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// BuildGradient builds a gradient in one call. colors come first, then the
// parsed htmlColors. See Builder for the validation rules.
func BuildGradient(colors []Color, htmlColors []string, positions []float64,
	mode BlendMode, interpolation Interpolation) (*Gradient, error) {
	return NewBuilder().
		Colors(colors...).
		HTMLColors(htmlColors...).
		Domain(positions...).
		Mode(mode).
		Interpolation(interpolation).
		Build()
}
