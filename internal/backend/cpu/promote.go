package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/elemwise/internal/tensor"
)

// ErrIncompatibleTypes is returned when two types have no common type.
var ErrIncompatibleTypes = errors.New("incompatible types")

var signedOfSize = map[int]tensor.DataType{
	1: tensor.Int8,
	2: tensor.Int16,
	4: tensor.Int32,
	8: tensor.Int64,
}

// PromoteTypes returns the common computation type of a and b.
//
// Lattice:
//   - Bool promotes to the other operand's type
//   - integers promote to the wider one; mixing signedness picks a signed type
//     wide enough for both (Uint8+Int8 → Int16), Uint64 with a signed type fails
//   - integer with floating promotes to the floating type
//   - Float16 with BFloat16 promotes to Float32
//   - complex and non-complex types do not mix
//
// With halfToFloat, a Float16 or BFloat16 result is widened to Float32.
func PromoteTypes(a, b tensor.DataType, halfToFloat bool) (tensor.DataType, error) {
	t, err := promoteTypes(a, b)
	if err != nil {
		return 0, err
	}
	if halfToFloat && t.IsReducedPrecision() {
		return tensor.Float32, nil
	}
	return t, nil
}

func promoteTypes(a, b tensor.DataType) (tensor.DataType, error) {
	switch {
	case a == b:
		return a, nil
	case a == tensor.Bool:
		return b, nil
	case b == tensor.Bool:
		return a, nil
	case a.IsComplex() != b.IsComplex():
		return 0, errors.Wrapf(ErrIncompatibleTypes, "%s and %s: complex and non-complex types do not mix", a, b)
	case a.IsComplex():
		return tensor.Complex128, nil
	case a.IsFloating() && b.IsFloating():
		return promoteFloats(a, b), nil
	case a.IsFloating():
		return a, nil
	case b.IsFloating():
		return b, nil
	default:
		return promoteIntegers(a, b)
	}
}

func promoteFloats(a, b tensor.DataType) tensor.DataType {
	switch {
	case a.IsReducedPrecision() && b.IsReducedPrecision():
		return tensor.Float32
	case a.IsReducedPrecision():
		return b
	case b.IsReducedPrecision():
		return a
	case a.Size() >= b.Size():
		return a
	default:
		return b
	}
}

func promoteIntegers(a, b tensor.DataType) (tensor.DataType, error) {
	if a.IsUnsigned() == b.IsUnsigned() {
		if a.Size() >= b.Size() {
			return a, nil
		}
		return b, nil
	}
	u, s := a, b
	if s.IsUnsigned() {
		u, s = s, u
	}
	if s.Size() > u.Size() {
		return s, nil
	}
	if u.Size() == 8 {
		return 0, errors.Wrapf(ErrIncompatibleTypes, "%s and %s: no signed type holds both", a, b)
	}
	return signedOfSize[u.Size()*2], nil
}

// PromoteTypeWithScalar returns the common type of a tensor of type t and the
// scalar s. The scalar has weak influence: it adopts the tensor's type unless
// its category is wider (an integer scalar with a Bool tensor gives Int64, a
// floating scalar with an integer or Bool tensor gives Float32). A complex
// scalar only combines with complex tensors.
func PromoteTypeWithScalar(t tensor.DataType, s tensor.Scalar, halfToFloat bool) (tensor.DataType, error) {
	var r tensor.DataType
	switch s.Kind() {
	case tensor.ScalarBool:
		r = t
	case tensor.ScalarInt:
		r = t
		if t == tensor.Bool {
			r = tensor.Int64
		}
	case tensor.ScalarFloat:
		r = t
		if !t.IsFloating() && !t.IsComplex() {
			r = tensor.Float32
		}
	case tensor.ScalarComplex:
		if !t.IsComplex() {
			return 0, errors.Wrapf(ErrIncompatibleTypes, "%s tensor with complex scalar", t)
		}
		r = t
	}
	if halfToFloat && r.IsReducedPrecision() {
		return tensor.Float32, nil
	}
	return r, nil
}

// CanCast reports whether values of type from may be written to an output of
// type to: complex to non-complex, floating to integral and non-bool to bool
// are rejected, everything else (including narrowing) is allowed.
func CanCast(from, to tensor.DataType) bool {
	switch {
	case from.IsComplex() && !to.IsComplex():
		return false
	case from.IsFloating() && to.IsIntegral():
		return false
	case from != tensor.Bool && to == tensor.Bool:
		return false
	}
	return true
}
