package colorgrad

import (
	"errors"
	"strings"
)

// Sentinel errors returned by Builder.Build.
var (
	// ErrInvalidColor matches an *InvalidColorError under errors.Is.
	ErrInvalidColor = errors.New("colorgrad: invalid html colors")

	// ErrWrongDomainCount is returned when the number of positions is
	// neither 0, 2, nor the number of colors.
	ErrWrongDomainCount = errors.New("colorgrad: wrong domain count")

	// ErrWrongDomain is returned when positions decrease, or when a
	// two-value domain has min >= max.
	ErrWrongDomain = errors.New("colorgrad: wrong domain")
)

// InvalidColorError lists every color string that failed to parse.
type InvalidColorError struct {
	Colors []string
}

func (e *InvalidColorError) Error() string {
	quoted := make([]string, len(e.Colors))
	for i, s := range e.Colors {
		quoted[i] = "'" + s + "'"
	}
	return ErrInvalidColor.Error() + ": " + strings.Join(quoted, ", ")
}

// Is reports whether target is ErrInvalidColor.
func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}
