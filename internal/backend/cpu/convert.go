package cpu

import (
	"github.com/gomlx/gomlx/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"

	"github.com/born-ml/elemwise/internal/tensor"
)

// realCompute lists the types non-complex arithmetic is carried out in.
// Reduced precision types never appear: they are widened to float32.
type realCompute interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | float32 | float64
}

// complexCompute lists the complex compute types.
type complexCompute interface {
	complex64 | complex128
}

// loader returns a function reading the element at a storage offset of t
// converted to the compute type C.
func loader[C realCompute](t *tensor.RawTensor) func(off int) C {
	switch t.DType() {
	case tensor.Bool:
		s := tensor.Elements[bool](t)
		return func(off int) C {
			if s[off] {
				return 1
			}
			return 0
		}
	case tensor.Uint8:
		return loadAs[C](tensor.Elements[uint8](t))
	case tensor.Uint16:
		return loadAs[C](tensor.Elements[uint16](t))
	case tensor.Uint32:
		return loadAs[C](tensor.Elements[uint32](t))
	case tensor.Uint64:
		return loadAs[C](tensor.Elements[uint64](t))
	case tensor.Int8:
		return loadAs[C](tensor.Elements[int8](t))
	case tensor.Int16:
		return loadAs[C](tensor.Elements[int16](t))
	case tensor.Int32:
		return loadAs[C](tensor.Elements[int32](t))
	case tensor.Int64:
		return loadAs[C](tensor.Elements[int64](t))
	case tensor.Float16:
		s := tensor.Elements[float16.Float16](t)
		return func(off int) C { return C(s[off].Float32()) }
	case tensor.BFloat16:
		s := tensor.Elements[bfloat16.BFloat16](t)
		return func(off int) C { return C(s[off].Float32()) }
	case tensor.Float32:
		return loadAs[C](tensor.Elements[float32](t))
	case tensor.Float64:
		return loadAs[C](tensor.Elements[float64](t))
	}
	bug("no real loader from %s", t.DType())
	return nil
}

func loadAs[C, S realCompute](s []S) func(off int) C {
	return func(off int) C { return C(s[off]) }
}

// storer returns a function writing a compute value into t at a storage
// offset, converted to t's dtype.
func storer[C realCompute](t *tensor.RawTensor) func(off int, v C) {
	switch t.DType() {
	case tensor.Bool:
		s := tensor.Elements[bool](t)
		return func(off int, v C) { s[off] = v != 0 }
	case tensor.Uint8:
		return storeAs[C](tensor.Elements[uint8](t))
	case tensor.Uint16:
		return storeAs[C](tensor.Elements[uint16](t))
	case tensor.Uint32:
		return storeAs[C](tensor.Elements[uint32](t))
	case tensor.Uint64:
		return storeAs[C](tensor.Elements[uint64](t))
	case tensor.Int8:
		return storeAs[C](tensor.Elements[int8](t))
	case tensor.Int16:
		return storeAs[C](tensor.Elements[int16](t))
	case tensor.Int32:
		return storeAs[C](tensor.Elements[int32](t))
	case tensor.Int64:
		return storeAs[C](tensor.Elements[int64](t))
	case tensor.Float16:
		s := tensor.Elements[float16.Float16](t)
		return func(off int, v C) { s[off] = float16.Fromfloat32(float32(v)) }
	case tensor.BFloat16:
		s := tensor.Elements[bfloat16.BFloat16](t)
		return func(off int, v C) { s[off] = bfloat16.FromFloat32(float32(v)) }
	case tensor.Float32:
		return storeAs[C](tensor.Elements[float32](t))
	case tensor.Float64:
		return storeAs[C](tensor.Elements[float64](t))
	case tensor.Complex64:
		s := tensor.Elements[complex64](t)
		return func(off int, v C) { s[off] = complex(float32(v), 0) }
	case tensor.Complex128:
		s := tensor.Elements[complex128](t)
		return func(off int, v C) { s[off] = complex(float64(v), 0) }
	}
	bug("no real storer into %s", t.DType())
	return nil
}

func storeAs[C, D realCompute](d []D) func(off int, v C) {
	return func(off int, v C) { d[off] = D(v) }
}

// scalarTo converts a scalar into a real compute type.
func scalarTo[C realCompute](s tensor.Scalar) C {
	switch s.Kind() {
	case tensor.ScalarBool:
		if s.Bool() {
			return 1
		}
		return 0
	case tensor.ScalarInt:
		return C(s.Int())
	case tensor.ScalarFloat:
		return C(s.Float())
	}
	bug("complex scalar reached real compute type")
	return 0
}

// complexScalarTo converts a scalar into a complex compute type.
func complexScalarTo[C complexCompute](s tensor.Scalar) C {
	return C(s.Complex())
}
