package colorgrad

import "github.com/gogpu/colorgrad/internal/css"

// ParseHTML parses a color in web/CSS syntax.
//
// Supported forms:
//   - named colors, such as "gold" or "seagreen", and "transparent"
//   - hexadecimal "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - rgb(), rgba(), hsl(), hsla(), hwb()
//   - hsv() and hsva(), which are not part of CSS
func ParseHTML(s string) (Color, error) {
	r, g, b, a, err := css.Parse(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: r, G: g, B: b, A: a}, nil
}
