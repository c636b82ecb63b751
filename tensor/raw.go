// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/elemwise/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape, strides and type information via Shape(), Strides(), DType()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Zero-copy strided views via View(), Permute() and Expand()
//   - In-place Resize() bounded by the buffer capacity
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32()        // Type-safe access
//	t, _ := raw.Permute(1, 0)      // Shares the buffer
type RawTensor = tensor.RawTensor

// NewRaw creates a new contiguous raw tensor with the given shape and dtype.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// NewRawWithCapacity creates a raw tensor whose buffer can hold capacity
// elements, so that kernels can later resize it up to that count.
func NewRawWithCapacity(shape Shape, dtype DataType, capacity int) (*RawTensor, error) {
	return tensor.NewRawWithCapacity(shape, dtype, capacity)
}

// RawFromSlice creates a contiguous raw tensor holding a copy of data.
func RawFromSlice[T DType](shape Shape, data []T) (*RawTensor, error) {
	return tensor.FromSlice(shape, data)
}

// Elements returns the storage of r as a []T starting at the view's offset.
func Elements[T DType](r *RawTensor) []T {
	return tensor.Elements[T](r)
}

// ToSlice gathers the logical elements of r in row-major order.
func ToSlice[T DType](r *RawTensor) []T {
	return tensor.ToSlice[T](r)
}
