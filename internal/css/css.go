// Package css parses CSS color strings.
//
// Supported forms:
//   - named colors (https://www.w3.org/TR/css-color-4/#named-colors) and "transparent"
//   - hexadecimal "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"; the "#" is optional
//   - rgb() and rgba()
//   - hsl() and hsla()
//   - hwb()
//   - hsv() and hsva(), which are not part of CSS
//
// Function arguments use either the legacy comma syntax, "rgb(255, 0, 0, 0.5)",
// or the modern space syntax with a slashed alpha, "rgb(255 0 0 / 50%)".
// Channel values are clamped to their range; saturation, lightness,
// whiteness and blackness read plain numbers as percentages, as CSS Color 4
// does. Non-finite numbers are rejected. Matching is case-insensitive.
package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	icolor "github.com/gogpu/colorgrad/internal/color"
)

// ErrInvalidColor is wrapped by every error returned from Parse.
var ErrInvalidColor = errors.New("css: invalid color")

// Parse returns the sRGB components and alpha of a CSS color, each
// nominally in [0, 1].
func Parse(s string) (r, g, b, a float64, err error) {
	// Caser values are stateful; one per call keeps Parse safe for concurrent use.
	str := strings.TrimSpace(cases.Fold().String(s))

	switch {
	case str == "":
		return 0, 0, 0, 0, invalid(s)
	case str == "transparent":
		return 0, 0, 0, 0, nil
	case strings.HasPrefix(str, "#"):
		return parseHex(s, str[1:])
	}

	if c, ok := colornames.Map[str]; ok {
		return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255, nil
	}

	open := strings.IndexByte(str, '(')
	if open < 0 {
		return parseHex(s, str)
	}
	if !strings.HasSuffix(str, ")") {
		return 0, 0, 0, 0, invalid(s)
	}

	name := strings.TrimSpace(str[:open])
	args, ok := splitArgs(str[open+1 : len(str)-1])
	if !ok {
		return 0, 0, 0, 0, invalid(s)
	}

	a = 1
	if len(args) == 4 {
		if a, err = alpha(args[3]); err != nil {
			return 0, 0, 0, 0, invalid(s)
		}
	}

	var v [3]float64
	switch name {
	case "rgb", "rgba":
		for i := range v {
			if v[i], err = percentOr255(args[i]); err != nil {
				return 0, 0, 0, 0, invalid(s)
			}
		}
		return v[0], v[1], v[2], a, nil

	case "hsl", "hsla", "hsv", "hsva", "hwb":
		if v[0], err = angle(args[0]); err != nil {
			return 0, 0, 0, 0, invalid(s)
		}
		for i := 1; i < 3; i++ {
			if v[i], err = percent(args[i]); err != nil {
				return 0, 0, 0, 0, invalid(s)
			}
		}

	default:
		return 0, 0, 0, 0, invalid(s)
	}

	h := icolor.NormalizeHue(v[0])
	var c colorful.Color
	switch name {
	case "hsl", "hsla":
		c = colorful.Hsl(h, v[1], v[2])
	case "hsv", "hsva":
		c = colorful.Hsv(h, v[1], v[2])
	default:
		c = hwb(h, v[1], v[2])
	}
	return c.R, c.G, c.B, a, nil
}

// splitArgs splits the body of a color function into 3 or 4 arguments.
// Legacy syntax separates every argument with a comma. Modern syntax uses
// whitespace, and the optional alpha follows a slash. The two do not mix.
func splitArgs(body string) ([]string, bool) {
	if strings.Contains(body, ",") {
		if strings.Contains(body, "/") {
			return nil, false
		}
		args := strings.Split(body, ",")
		for i, arg := range args {
			args[i] = strings.TrimSpace(arg)
			if args[i] == "" || strings.IndexFunc(args[i], unicode.IsSpace) >= 0 {
				return nil, false
			}
		}
		return args, len(args) == 3 || len(args) == 4
	}

	channels, tail, hasAlpha := strings.Cut(body, "/")
	args := strings.Fields(channels)
	if len(args) != 3 {
		return nil, false
	}
	if hasAlpha {
		rest := strings.Fields(tail)
		if len(rest) != 1 {
			return nil, false
		}
		args = append(args, rest[0])
	}
	return args, true
}

// hwb converts hue, whiteness and blackness through HSV.
func hwb(h, w, bl float64) colorful.Color {
	if w+bl >= 1 {
		gray := w / (w + bl)
		return colorful.Color{R: gray, G: gray, B: gray}
	}
	v := 1 - bl
	s := 0.0
	if v != 0 {
		s = 1 - w/v
	}
	return colorful.Hsv(h, s, v)
}

// parseHex parses the digits of a hex color. orig is only used for errors.
// Supports "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func parseHex(orig, hex string) (r, g, b, a float64, err error) {
	var n [4]uint64
	n[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return 0, 0, 0, 0, invalid(orig)
			}
			n[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex)/2; i++ {
			d, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
			if err != nil {
				return 0, 0, 0, 0, invalid(orig)
			}
			n[i] = d
		}
	default:
		return 0, 0, 0, 0, invalid(orig)
	}

	return float64(n[0]) / 255, float64(n[1]) / 255, float64(n[2]) / 255, float64(n[3]) / 255, nil
}

// number parses a finite decimal number. Hexadecimal floats and the
// NaN and infinity spellings accepted by strconv are rejected.
func number(s string) (float64, error) {
	if strings.ContainsAny(s, "xXnN") {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// percentOr255 parses "50%" as 0.5 and "128" as 128/255, clamped to [0, 1].
func percentOr255(s string) (float64, error) {
	scale := 255.0
	if p, ok := strings.CutSuffix(s, "%"); ok {
		s, scale = p, 100
	}
	v, err := number(s)
	return icolor.ClampUnit(v / scale), err
}

// percent parses saturation, lightness, value, whiteness and blackness.
// "50%" and "50" both mean 0.5; the result is clamped to [0, 1].
func percent(s string) (float64, error) {
	v, err := number(strings.TrimSuffix(s, "%"))
	return icolor.ClampUnit(v / 100), err
}

// alpha parses "50%" and "0.5" alike, clamped to [0, 1].
func alpha(s string) (float64, error) {
	scale := 1.0
	if p, ok := strings.CutSuffix(s, "%"); ok {
		s, scale = p, 100
	}
	v, err := number(s)
	return icolor.ClampUnit(v / scale), err
}

// angle parses a hue in degrees; deg, grad, rad and turn units are accepted.
func angle(s string) (float64, error) {
	units := []struct {
		suffix string
		scale  float64
	}{
		{"deg", 1},
		{"grad", 360.0 / 400},
		{"rad", 180 / math.Pi},
		{"turn", 360},
	}
	// "grad" must be tried before "rad".
	for _, u := range units {
		if p, ok := strings.CutSuffix(s, u.suffix); ok {
			v, err := number(p)
			return v * u.scale, err
		}
	}
	return number(s)
}

func invalid(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidColor, s)
}
