package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tensor is a generic tensor with element type T and backend B.
// It provides type-safe operations over multi-dimensional arrays.
//
// Type Parameters:
//   - T: Data type (must satisfy DType constraint)
//   - B: Computation backend (must implement Backend interface)
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
//	result, err := t.Add(t)
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
// Panics if the raw tensor's dtype does not match T.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	if dt := DataTypeOf[T](); raw.DType() != dt {
		panic(fmt.Sprintf("tensor.New: raw tensor is %s, not %s", raw.DType(), dt))
	}
	return &Tensor[T, B]{
		raw:     raw,
		backend: b,
	}
}

// FromValues creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromValues[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	raw, err := FromSlice(shape, data)
	if err != nil {
		return nil, errors.Wrap(err, "tensor.FromValues")
	}
	return New[T, B](raw, b), nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used by backend implementations for low-level operations.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Data returns a typed slice view of the tensor's storage.
// The slice directly accesses the underlying memory (zero-copy). For
// strided views index it with Raw().Strides(), or use Values.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T, B]) Data() []T {
	return Elements[T](t.raw)
}

// Values returns a copy of the logical elements in row-major order.
func (t *Tensor[T, B]) Values() []T {
	return ToSlice[T](t.raw)
}

// Item returns the scalar value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor[T, B]) Item() T {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.Shape()))
	}
	return t.Data()[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T, B]) At(indices ...int) T {
	return t.Data()[t.offsetOf(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T, B]) Set(value T, indices ...int) {
	t.Data()[t.offsetOf(indices)] = value
}

func (t *Tensor[T, B]) offsetOf(indices []int) int {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}

	// Calculate storage offset using strides
	offset := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.raw.DType(), t.raw.Shape(), t.backend.Name())
}

// Clone creates a contiguous deep copy of the tensor.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	raw, err := FromSlice(t.Shape(), t.Values())
	if err != nil {
		panic(err) // Shape comes from a valid tensor
	}
	return New[T, B](raw, t.backend)
}
