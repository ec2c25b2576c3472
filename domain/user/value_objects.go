package user

import (
	"math"
	"strconv"
)

// Name value object - a non-empty display name. It is also the lookup key,
// although uniqueness is not enforced.
type Name struct {
	value string
}

// NewName accepts any answer value; only non-empty strings are names.
func NewName(v any) (Name, error) {
	s, ok := v.(string)
	if !ok {
		return Name{}, NewInvalidTypeError("name", v)
	}
	if len(s) == 0 {
		return Name{}, NewInvalidNameError()
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

func (n Name) Equals(other Name) bool {
	return n.value == other.value
}

func (n Name) String() string {
	return n.value
}

// Age value object - any finite number greater than 0. Fractions are kept.
type Age struct {
	value float64
}

// NewAge accepts any numeric answer value; anything that is not a number
// is a type error.
func NewAge(v any) (Age, error) {
	var n float64
	switch x := v.(type) {
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case float32:
		n = float64(x)
	case float64:
		n = x
	default:
		return Age{}, NewInvalidTypeError("age", v)
	}

	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return Age{}, NewInvalidAgeError(v)
	}
	return Age{value: n}, nil
}

func (a Age) Value() float64 {
	return a.value
}

// String formats without trailing zeros: 30 -> "30", 30.5 -> "30.5".
func (a Age) String() string {
	return strconv.FormatFloat(a.value, 'f', -1, 64)
}
