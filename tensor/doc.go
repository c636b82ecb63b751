// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor types consumed by the elemwise kernels.
//
// # Overview
//
// This package provides:
//   - RawTensor: typed, strided views over a fixed-capacity buffer
//   - Generic type-safe tensors (Tensor[T, B]) dispatching to a Backend
//   - NumPy-style broadcasting
//   - Scalars for the tensor-with-scalar kernels
//   - Data types from bool to complex128, including float16 and bfloat16
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/elemwise/backend/cpu"
//	    "github.com/born-ml/elemwise/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    y, _ := tensor.FromValues([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//
//	    z, err := x.Mul(y) // Shape: [2, 3]
//	}
//
// # Raw kernels
//
// The backend writes into caller-owned outputs. An output created with
// NewRawWithCapacity can be reused across calls of different shapes as long
// as the broadcast shape fits its capacity:
//
//	out, _ := tensor.NewRawWithCapacity(tensor.Shape{0}, tensor.Float32, 1024)
//	_, err := backend.Mul(a, b, out)
package tensor
