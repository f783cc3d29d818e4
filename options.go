package colorgrad

// Option configures a gradient built with New.
//
// Example:
//
//	g, err := colorgrad.New(
//	    colorgrad.WithHTMLColors("#C41189", "#00BFFF", "#FFD700"),
//	    colorgrad.WithInterpolation(colorgrad.InterpolationCatmullRom),
//	)
type Option func(*Builder)

// New builds a gradient from functional options.
// With no options it returns the black to white gradient over [0, 1].
func New(opts ...Option) (*Gradient, error) {
	b := NewBuilder()
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// WithColors appends colors.
func WithColors(colors ...Color) Option {
	return func(b *Builder) {
		b.Colors(colors...)
	}
}

// WithHTMLColors appends colors in CSS syntax.
func WithHTMLColors(colors ...string) Option {
	return func(b *Builder) {
		b.HTMLColors(colors...)
	}
}

// WithDomain sets the stop positions or the two-value domain.
func WithDomain(positions ...float64) Option {
	return func(b *Builder) {
		b.Domain(positions...)
	}
}

// WithBlendMode sets the blend mode.
func WithBlendMode(mode BlendMode) Option {
	return func(b *Builder) {
		b.Mode(mode)
	}
}

// WithInterpolation sets the interpolation.
func WithInterpolation(interpolation Interpolation) Option {
	return func(b *Builder) {
		b.Interpolation(interpolation)
	}
}
