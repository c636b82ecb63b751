package tensor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ScalarKind tags the value held by a Scalar.
type ScalarKind int

// Scalar kinds.
const (
	ScalarBool ScalarKind = iota
	ScalarInt
	ScalarFloat
	ScalarComplex
)

// Scalar is a single numeric value used as the right operand of the *Scalar kernels.
// Its kind only has weak influence on type promotion.
type Scalar struct {
	kind ScalarKind
	b    bool
	i    int64
	f    float64
	c    complex128
}

// BoolScalar wraps a boolean value.
func BoolScalar(v bool) Scalar { return Scalar{kind: ScalarBool, b: v} }

// IntScalar wraps an integer value.
func IntScalar(v int64) Scalar { return Scalar{kind: ScalarInt, i: v} }

// FloatScalar wraps a floating point value.
func FloatScalar(v float64) Scalar { return Scalar{kind: ScalarFloat, f: v} }

// ComplexScalar wraps a complex value.
func ComplexScalar(v complex128) Scalar { return Scalar{kind: ScalarComplex, c: v} }

// Kind returns the scalar's kind.
func (s Scalar) Kind() ScalarKind { return s.kind }

// Bool returns the boolean value. Only meaningful for ScalarBool.
func (s Scalar) Bool() bool { return s.b }

// Int returns the integer value. Only meaningful for ScalarInt.
func (s Scalar) Int() int64 { return s.i }

// Float returns the floating point value. Only meaningful for ScalarFloat.
func (s Scalar) Float() float64 { return s.f }

// Complex returns the value as complex128, converting real kinds.
func (s Scalar) Complex() complex128 {
	switch s.kind {
	case ScalarBool:
		if s.b {
			return 1
		}
		return 0
	case ScalarInt:
		return complex(float64(s.i), 0)
	case ScalarFloat:
		return complex(s.f, 0)
	default:
		return s.c
	}
}

// String formats the scalar value.
func (s Scalar) String() string {
	switch s.kind {
	case ScalarBool:
		return strconv.FormatBool(s.b)
	case ScalarInt:
		return strconv.FormatInt(s.i, 10)
	case ScalarFloat:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	default:
		return fmt.Sprint(s.c)
	}
}

// ParseScalar parses "true"/"false", an integer, a float or a complex literal
// such as "(1+2i)" into the narrowest matching kind.
func ParseScalar(text string) (Scalar, error) {
	t := strings.TrimSpace(text)
	if b, err := strconv.ParseBool(t); err == nil && (t == "true" || t == "false") {
		return BoolScalar(b), nil
	}
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return IntScalar(i), nil
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return FloatScalar(f), nil
	}
	if c, err := strconv.ParseComplex(t, 128); err == nil {
		return ComplexScalar(c), nil
	}
	return Scalar{}, errors.Errorf("cannot parse scalar %q", text)
}
