package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomlx/gomlx/pkg/core/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/born-ml/elemwise/tensor"
)

// parseValues parses a comma separated list of scalar literals.
func parseValues(text string) ([]tensor.Scalar, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	fields := strings.Split(text, ",")
	vals := make([]tensor.Scalar, len(fields))
	for i, f := range fields {
		s, err := tensor.ParseScalar(f)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i)
		}
		vals[i] = s
	}
	return vals, nil
}

// parseShape parses "2,3" or "2x3". An empty string means a 1D shape of n
// elements and "scalar" a 0-D shape.
func parseShape(text string, n int) (tensor.Shape, error) {
	text = strings.TrimSpace(text)
	switch text {
	case "":
		return tensor.Shape{n}, nil
	case "scalar":
		return tensor.Shape{}, nil
	}
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == 'x' })
	shape := make(tensor.Shape, len(fields))
	for i, f := range fields {
		d, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "shape %q", text)
		}
		shape[i] = d
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

// buildTensor creates a contiguous tensor of dtype from textual values.
func buildTensor(values, shapeText, dtypeName string) (*tensor.RawTensor, error) {
	vals, err := parseValues(values)
	if err != nil {
		return nil, err
	}
	shape, err := parseShape(shapeText, len(vals))
	if err != nil {
		return nil, err
	}
	if shape.NumElements() != len(vals) {
		return nil, errors.Errorf("shape %v needs %d values, got %d", shape, shape.NumElements(), len(vals))
	}
	dtype, err := tensor.ParseDataType(dtypeName)
	if err != nil {
		return nil, err
	}

	r, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	if err := fill(r, vals); err != nil {
		return nil, err
	}
	return r, nil
}

//nolint:gocyclo,cyclop // One case per supported element type
func fill(r *tensor.RawTensor, vals []tensor.Scalar) error {
	switch r.DType() {
	case tensor.Bool:
		return fillReal[bool](r, vals)
	case tensor.Uint8:
		return fillReal[uint8](r, vals)
	case tensor.Uint16:
		return fillReal[uint16](r, vals)
	case tensor.Uint32:
		return fillReal[uint32](r, vals)
	case tensor.Uint64:
		return fillReal[uint64](r, vals)
	case tensor.Int8:
		return fillReal[int8](r, vals)
	case tensor.Int16:
		return fillReal[int16](r, vals)
	case tensor.Int32:
		return fillReal[int32](r, vals)
	case tensor.Int64:
		return fillReal[int64](r, vals)
	case tensor.Float16:
		return fillReal[float16.Float16](r, vals)
	case tensor.BFloat16:
		return fillReal[bfloat16.BFloat16](r, vals)
	case tensor.Float32:
		return fillReal[float32](r, vals)
	case tensor.Float64:
		return fillReal[float64](r, vals)
	case tensor.Complex64:
		dst := tensor.Elements[complex64](r)
		for i, s := range vals {
			dst[i] = complex64(s.Complex())
		}
	case tensor.Complex128:
		dst := tensor.Elements[complex128](r)
		for i, s := range vals {
			dst[i] = s.Complex()
		}
	}
	return nil
}

func fillReal[T tensor.DType](r *tensor.RawTensor, vals []tensor.Scalar) error {
	dst := tensor.Elements[T](r)
	for i, s := range vals {
		if s.Kind() == tensor.ScalarComplex {
			return errors.Errorf("value %d: complex literal %s for %s tensor", i, s, r.DType())
		}
		if s.Kind() == tensor.ScalarInt {
			dst[i] = intValue[T](s.Int())
			continue
		}
		dst[i] = tensor.ValueOf[T](real(s.Complex()))
	}
	return nil
}

// intValue converts integers exactly into integer types and through float64
// otherwise.
func intValue[T tensor.DType](v int64) T {
	var out any
	var zero T
	switch any(zero).(type) {
	case uint8:
		out = uint8(v)
	case uint16:
		out = uint16(v)
	case uint32:
		out = uint32(v)
	case uint64:
		out = uint64(v)
	case int8:
		out = int8(v)
	case int16:
		out = int16(v)
	case int32:
		out = int32(v)
	case int64:
		out = v
	default:
		return tensor.ValueOf[T](float64(v))
	}
	return out.(T)
}

// formatValues renders the logical elements of r in row-major order.
//
//nolint:gocyclo,cyclop // One case per supported element type
func formatValues(r *tensor.RawTensor) []string {
	switch r.DType() {
	case tensor.Bool:
		return formatAs(r, strconv.FormatBool)
	case tensor.Uint8:
		return formatAs(r, func(v uint8) string { return strconv.FormatUint(uint64(v), 10) })
	case tensor.Uint16:
		return formatAs(r, func(v uint16) string { return strconv.FormatUint(uint64(v), 10) })
	case tensor.Uint32:
		return formatAs(r, func(v uint32) string { return strconv.FormatUint(uint64(v), 10) })
	case tensor.Uint64:
		return formatAs(r, func(v uint64) string { return strconv.FormatUint(v, 10) })
	case tensor.Int8:
		return formatAs(r, func(v int8) string { return strconv.FormatInt(int64(v), 10) })
	case tensor.Int16:
		return formatAs(r, func(v int16) string { return strconv.FormatInt(int64(v), 10) })
	case tensor.Int32:
		return formatAs(r, func(v int32) string { return strconv.FormatInt(int64(v), 10) })
	case tensor.Int64:
		return formatAs(r, func(v int64) string { return strconv.FormatInt(v, 10) })
	case tensor.Float16:
		return formatAs(r, func(v float16.Float16) string { return formatFloat(float64(v.Float32()), 32) })
	case tensor.BFloat16:
		return formatAs(r, func(v bfloat16.BFloat16) string { return formatFloat(float64(v.Float32()), 32) })
	case tensor.Float32:
		return formatAs(r, func(v float32) string { return formatFloat(float64(v), 32) })
	case tensor.Float64:
		return formatAs(r, func(v float64) string { return formatFloat(v, 64) })
	case tensor.Complex64:
		return formatAs(r, func(v complex64) string { return fmt.Sprint(v) })
	case tensor.Complex128:
		return formatAs(r, func(v complex128) string { return fmt.Sprint(v) })
	}
	return nil
}

func formatAs[T tensor.DType](r *tensor.RawTensor, f func(T) string) []string {
	vals := tensor.ToSlice[T](r)
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = f(v)
	}
	return out
}

func formatFloat(v float64, bits int) string {
	return strconv.FormatFloat(v, 'g', -1, bits)
}
