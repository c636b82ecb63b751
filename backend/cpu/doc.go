// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for the elemwise kernels.
//
// # Overview
//
// This package implements broadcasting Mul, Add and Sub, plus their
// tensor-with-scalar variants, over all tensor data types:
//   - Pure Go implementation (no CGO)
//   - NumPy-compatible broadcasting and type promotion
//   - Batched fast paths for same-type contiguous operands
//   - Float16 and BFloat16 computed in float32, stored narrow
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
//	    a, _ := tensor.RawFromSlice(tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
//	    b, _ := tensor.RawFromSlice(tensor.Shape{3}, []float32{0.5, 1, 2})
//	    out, _ := tensor.NewRawWithCapacity(tensor.Shape{0}, tensor.Float32, 6)
//
//	    if _, err := backend.Mul(a, b, out); err != nil {
//	        // errors.Is(err, cpu.ErrInvalidArgument)
//	    }
//	}
//
// # Errors
//
// Invalid dtype combinations and incompatible shapes are reported as errors
// wrapping ErrInvalidArgument. An output whose capacity cannot hold the
// broadcast shape is a programming error and panics.
package cpu
