// Package coords converts between degrees-minutes-seconds text and decimal
// degrees.
//
// Accepted input is degrees, a degree sign, minutes, a quote, seconds and a
// second quote, optionally followed by a hemisphere letter:
//
//	41°24'12.2"N
//	73º 51' 24"
//	18Â°31'14.4"
//
// The hemisphere is recorded but ParseCoordinate does not apply it; use
// Coordinate.Signed for south/west negation.
package coords

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/agentstation/automark/pkg/errors"
)

// Hemisphere is one of N, S, E, W, or zero when the text carried none.
type Hemisphere rune

// Hemispheres.
const (
	North Hemisphere = 'N'
	South Hemisphere = 'S'
	East  Hemisphere = 'E'
	West  Hemisphere = 'W'
)

// String returns the hemisphere letter, or "" when unset.
func (h Hemisphere) String() string {
	if h == 0 {
		return ""
	}
	return string(rune(h))
}

// Axis selects the hemisphere letters used when rendering DMS text.
type Axis int

// Axes.
const (
	Latitude Axis = iota
	Longitude
)

// Coordinate is a parsed DMS value.
type Coordinate struct {
	Degrees    float64
	Minutes    float64
	Seconds    float64
	Hemisphere Hemisphere
}

// Decimal returns degrees + minutes/60 + seconds/3600, ignoring the hemisphere.
func (c Coordinate) Decimal() float64 {
	return c.Degrees + c.Minutes/60 + c.Seconds/3600
}

// Signed returns Decimal negated for the southern and western hemispheres.
func (c Coordinate) Signed() float64 {
	d := c.Decimal()
	if c.Hemisphere == South || c.Hemisphere == West {
		return -math.Abs(d)
	}
	return d
}

// ParseCoordinate converts DMS text to decimal degrees without applying the
// hemisphere sign.
func ParseCoordinate(raw string) (float64, error) {
	c, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	return c.Decimal(), nil
}

var componentNames = [3]string{"degrees", "minutes", "seconds"}

// Parse splits DMS text into its three numeric components and hemisphere.
// It fails with a FormatError unless exactly three numbers are found.
func Parse(raw string) (Coordinate, error) {
	var c Coordinate

	// "Â°" is a UTF-8 degree sign decoded as Latin-1.
	text := strings.ReplaceAll(strings.TrimSpace(raw), "Â", "")

	var numbers []string
	for _, piece := range strings.FieldsFunc(text, isSeparator) {
		if h, ok := trailingHemisphere(piece); ok {
			c.Hemisphere = h
		}
		num := strings.TrimFunc(piece, func(r rune) bool { return !isNumeric(r) })
		if strings.IndexFunc(num, unicode.IsDigit) < 0 {
			continue
		}
		numbers = append(numbers, num)
	}

	if len(numbers) != len(componentNames) {
		return Coordinate{}, errors.NewFormatError("coordinate", raw,
			fmt.Sprintf("expected degrees, minutes and seconds, found %d numeric components", len(numbers)), nil)
	}

	values := make([]float64, len(numbers))
	for i, num := range numbers {
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Coordinate{}, errors.NewFormatError("coordinate", raw,
				fmt.Sprintf("%s %q is not a number", componentNames[i], num), err)
		}
		values[i] = v
	}

	c.Degrees, c.Minutes, c.Seconds = values[0], values[1], values[2]
	return c, nil
}

// FormatDMS renders decimal degrees as DMS text with one decimal of seconds
// and a hemisphere letter for the axis, e.g. 41°24'12.2"N.
func FormatDMS(decimal float64, axis Axis) string {
	h := North
	if axis == Longitude {
		h = East
	}
	if decimal < 0 {
		if axis == Longitude {
			h = West
		} else {
			h = South
		}
	}

	abs := math.Abs(decimal)
	deg := math.Floor(abs)
	minutes := (abs - deg) * 60
	mins := math.Floor(minutes)
	sec := math.Round((minutes-mins)*60*10) / 10

	if sec >= 60 {
		sec -= 60
		mins++
	}
	if mins >= 60 {
		mins -= 60
		deg++
	}

	return fmt.Sprintf("%d°%d'%s\"%s", int(deg), int(mins), strconv.FormatFloat(sec, 'f', 1, 64), h)
}

func isSeparator(r rune) bool {
	switch r {
	case '°', 'º', '˚', '\'', '"', '′', '″', '‘', '’', '“', '”', ';':
		return true
	}
	return unicode.IsSpace(r)
}

func isNumeric(r rune) bool {
	return unicode.IsDigit(r) || r == '.' || r == '-' || r == '+'
}

func trailingHemisphere(piece string) (Hemisphere, bool) {
	trimmed := strings.TrimRightFunc(piece, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if trimmed == "" {
		return 0, false
	}
	last := unicode.ToUpper(rune(trimmed[len(trimmed)-1]))
	switch Hemisphere(last) {
	case North, South, East, West:
		return Hemisphere(last), true
	}
	return 0, false
}
