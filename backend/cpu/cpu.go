// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/elemwise/internal/backend/cpu"
	"github.com/born-ml/elemwise/tensor"
)

// ErrInvalidArgument is wrapped by every error the kernels report.
var ErrInvalidArgument = internalcpu.ErrInvalidArgument

// DefaultLaneBytes is the default batch width of the vectorized paths.
const DefaultLaneBytes = internalcpu.DefaultLaneBytes

// Options configures a Backend.
type Options = internalcpu.Options

// Path describes the execution strategy chosen for a binary call.
type Path = internalcpu.Path

// Backend represents the CPU backend implementation.
//
// Each call runs on a fresh kernel context and returns its first failure as
// an error. A Backend may be shared between goroutines as long as
// concurrent calls do not share an output tensor.
type Backend struct {
	cpu *internalcpu.CPUBackend
}

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/elemwise/backend/cpu"
//	    "github.com/born-ml/elemwise/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return &Backend{cpu: internalcpu.New()}
}

// NewWithOptions creates a CPU backend with the given options.
func NewWithOptions(opts Options) *Backend {
	return &Backend{cpu: internalcpu.NewWithOptions(opts)}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return b.cpu.Name()
}

// LaneBytes returns the configured batch width in bytes.
func (b *Backend) LaneBytes() int {
	return b.cpu.LaneBytes()
}

// Mul computes out = a * b with broadcasting and returns out.
func (b *Backend) Mul(x, y, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	ctx := internalcpu.NewContext()
	return b.cpu.Mul(ctx, x, y, out), ctx.Err()
}

// Add computes out = a + b with broadcasting and returns out.
func (b *Backend) Add(x, y, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	ctx := internalcpu.NewContext()
	return b.cpu.Add(ctx, x, y, out), ctx.Err()
}

// Sub computes out = a - b with broadcasting and returns out.
func (b *Backend) Sub(x, y, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	ctx := internalcpu.NewContext()
	return b.cpu.Sub(ctx, x, y, out), ctx.Err()
}

// MulScalar computes out = x * s and returns out.
func (b *Backend) MulScalar(x *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	ctx := internalcpu.NewContext()
	return b.cpu.MulScalar(ctx, x, s, out), ctx.Err()
}

// AddScalar computes out = x + s and returns out.
func (b *Backend) AddScalar(x *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	ctx := internalcpu.NewContext()
	return b.cpu.AddScalar(ctx, x, s, out), ctx.Err()
}

// SubScalar computes out = x - s and returns out.
func (b *Backend) SubScalar(x *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	ctx := internalcpu.NewContext()
	return b.cpu.SubScalar(ctx, x, s, out), ctx.Err()
}

// SelectPath reports the strategy a binary call over a, b and out would use.
func SelectPath(a, b, out *tensor.RawTensor) Path {
	return internalcpu.SelectPath(a, b, out)
}

// PromoteTypes returns the common type the kernels compute two operands of
// types a and b in, before half precision widening.
func PromoteTypes(a, b tensor.DataType) (tensor.DataType, error) {
	return internalcpu.PromoteTypes(a, b, false)
}

// PromoteTypeWithScalar returns the common type of a tensor of type t and s.
func PromoteTypeWithScalar(t tensor.DataType, s tensor.Scalar) (tensor.DataType, error) {
	return internalcpu.PromoteTypeWithScalar(t, s, false)
}

// CanCast reports whether a result of type from may be stored into to.
func CanCast(from, to tensor.DataType) bool {
	return internalcpu.CanCast(from, to)
}
