// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/elemwise/internal/tensor"

// Backend defines the elementwise kernel family tensors dispatch to.
//
// Implementations:
//   - backend/cpu: portable Go kernels with batched fast paths
//
// Example:
//
//	import (
//	    "github.com/born-ml/elemwise/backend/cpu"
//	    "github.com/born-ml/elemwise/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z, err := x.Add(y)  // Uses backend.Add under the hood
type Backend = tensor.Backend

// Scalar is a single value for the tensor-with-scalar operations.
type Scalar = tensor.Scalar

// ScalarKind tags the value held by a Scalar.
type ScalarKind = tensor.ScalarKind

// Scalar kinds.
const (
	ScalarBool    ScalarKind = tensor.ScalarBool
	ScalarInt     ScalarKind = tensor.ScalarInt
	ScalarFloat   ScalarKind = tensor.ScalarFloat
	ScalarComplex ScalarKind = tensor.ScalarComplex
)

// BoolScalar wraps a boolean value.
func BoolScalar(v bool) Scalar { return tensor.BoolScalar(v) }

// IntScalar wraps an integer value.
func IntScalar(v int64) Scalar { return tensor.IntScalar(v) }

// FloatScalar wraps a floating point value.
func FloatScalar(v float64) Scalar { return tensor.FloatScalar(v) }

// ComplexScalar wraps a complex value.
func ComplexScalar(v complex128) Scalar { return tensor.ComplexScalar(v) }

// ParseScalar parses a bool, integer, float or complex literal.
func ParseScalar(text string) (Scalar, error) { return tensor.ParseScalar(text) }
