package tensor

import (
	"fmt"

	"github.com/gomlx/gomlx/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, DataTypeOf[T]())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full(shape, ValueOf[T](1), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Arange creates a 1D tensor holding start, start+1, ... up to end (exclusive).
//
// Example:
//
//	t := tensor.Arange[int32](0, 10, backend) // [0, 1, 2, ..., 9]
func Arange[T DType, B Backend](start, end float64, b B) *Tensor[T, B] {
	numElements := int(end - start)
	if numElements <= 0 {
		panic(fmt.Sprintf("Arange: end %v must be greater than start %v", end, start))
	}

	t := Zeros[T, B](Shape{numElements}, b)
	data := t.Data()
	for i := range data {
		data[i] = ValueOf[T](start + float64(i))
	}
	return t
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	t := tensor.Eye[float32](3, backend) // 3x3 identity matrix
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	one := ValueOf[T](1)
	for i := 0; i < n; i++ {
		t.Set(one, i, i)
	}
	return t
}

// ValueOf converts v to the element type T. Integer types truncate, Bool is
// v != 0, the 16-bit float types round to nearest and complex types get a
// zero imaginary part.
//
//nolint:gocyclo,cyclop // One case per supported element type
func ValueOf[T DType](v float64) T {
	var out any
	var zero T
	switch any(zero).(type) {
	case bool:
		out = v != 0
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
		out = int64(v)
	case float16.Float16:
		out = float16.Fromfloat32(float32(v))
	case bfloat16.BFloat16:
		out = bfloat16.FromFloat32(float32(v))
	case float32:
		out = float32(v)
	case float64:
		out = v
	case complex64:
		out = complex(float32(v), 0)
	case complex128:
		out = complex(v, 0)
	}
	return out.(T)
}
