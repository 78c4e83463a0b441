// Package geometry keeps the length, breadth and area of a plot or room
// consistent while the user edits one of them at a time.
package geometry

import (
	"fmt"
	"math"
	"strings"
)

// Dimensions is a rectangular footprint. All values are non-negative.
type Dimensions struct {
	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
	Area    float64 `json:"area"`
}

// Field names the dimension being edited.
type Field string

const (
	FieldLength  Field = "length"
	FieldBreadth Field = "breadth"
	FieldArea    Field = "area"
)

// ParseField accepts the full field names and the single-letter forms l, b and a.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "length", "l":
		return FieldLength, nil
	case "breadth", "b":
		return FieldBreadth, nil
	case "area", "a":
		return FieldArea, nil
	}
	return "", fmt.Errorf("unknown dimension field %q", s)
}

// Reconcile applies a single-field edit and returns the resulting triple.
//
// Editing length or breadth recomputes the area. Editing the area recomputes
// breadth from a known length, else length from a known breadth, else assumes
// a square. A non-positive area leaves length and breadth untouched.
func Reconcile(current Dimensions, field Field, value float64) Dimensions {
	d := Dimensions{
		Length:  nonNegative(current.Length),
		Breadth: nonNegative(current.Breadth),
		Area:    nonNegative(current.Area),
	}
	value = nonNegative(value)

	switch field {
	case FieldLength:
		d.Length = value
		d.Area = Round2(d.Length * d.Breadth)
	case FieldBreadth:
		d.Breadth = value
		d.Area = Round2(d.Length * d.Breadth)
	case FieldArea:
		// re-entering the area the sides were derived from must not shift them
		if value == d.Area && derivedFrom(d, value) {
			return d
		}
		d.Area = value
		if value <= 0 {
			return d
		}
		switch {
		case d.Length > 0:
			d.Breadth = Round2(value / d.Length)
		case d.Breadth > 0:
			d.Length = Round2(value / d.Breadth)
		default:
			side := Round2(math.Sqrt(value))
			d.Length, d.Breadth = side, side
		}
	}

	return d
}

// Consistent reports whether area matches length*breadth when both are known.
func (d Dimensions) Consistent() bool {
	if d.Length <= 0 || d.Breadth <= 0 {
		return true
	}
	return d.Area == Round2(d.Length*d.Breadth)
}

// derivedFrom reports whether the sides of d are what an area edit to value
// would have produced.
func derivedFrom(d Dimensions, value float64) bool {
	if d.Length <= 0 || d.Breadth <= 0 {
		return false
	}
	if Round2(value/d.Length) == d.Breadth || Round2(value/d.Breadth) == d.Length {
		return true
	}
	side := Round2(math.Sqrt(value))
	return d.Length == side && d.Breadth == side
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
