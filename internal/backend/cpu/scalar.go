package cpu

import (
	"github.com/born-ml/elemwise/internal/tensor"
)

// Scalar operations - element-wise operations between a tensor and one value.

// scalarTensor handles out = op(t, single), or op(single, t) when reversed,
// where single holds exactly one element and t and out are contiguous.
// The value of single is read once for the whole pass.
func (cpu *CPUBackend) scalarTensor(ctx *Context, op opKind, t, single, out *tensor.RawTensor, shape tensor.Shape, reversed bool) {
	tt, st, ot := t.DType(), single.DType(), out.DType()

	if tt == st && tt == ot && !tt.IsReducedPrecision() {
		if !checkOp(ctx, op, tt) {
			return
		}
		resizeOutput(op.String(), out, shape)
		k := vectorKernelsFor(tt)
		k.scalar(lanesFor(cpu.laneBytes, k.elemSize), op, out, t, k.fromTensor(single), reversed)
		return
	}

	common, err := PromoteTypes(tt, st, true)
	if err != nil {
		ctx.Fail(invalidArgument("%s: %v", op, err))
		return
	}
	if !ctx.check(CanCast(common, ot), "%s: cannot cast %s result to %s output", op, common, ot) {
		return
	}
	resizeOutput(op.String(), out, shape)
	if tt.IsComplex() || st.IsComplex() || ot.IsComplex() {
		if !ctx.check(tt == st && tt == ot, "%s: complex operands need identical types, got %s, %s -> %s", op, tt, st, ot) {
			return
		}
	}
	if !checkOp(ctx, op, common) {
		return
	}

	k := computeKernelsFor(common)
	k.scalar(op, t, out, k.fromTensor(single), reversed)
}

// MulScalar computes out = x * s. The output takes x's shape.
func (cpu *CPUBackend) MulScalar(ctx *Context, x *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryScalar(ctx, opMul, x, s, out)
}

// AddScalar computes out = x + s.
func (cpu *CPUBackend) AddScalar(ctx *Context, x *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryScalar(ctx, opAdd, x, s, out)
}

// SubScalar computes out = x - s.
func (cpu *CPUBackend) SubScalar(ctx *Context, x *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryScalar(ctx, opSub, x, s, out)
}

// binaryScalar promotes with the scalar's weak type. A Float16 or BFloat16
// common type computes in float32 and is narrowed again on store when the
// output keeps the 16-bit type.
func (cpu *CPUBackend) binaryScalar(ctx *Context, op opKind, x *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) *tensor.RawTensor {
	xt, ot := x.DType(), out.DType()

	common, err := PromoteTypeWithScalar(xt, s, false)
	if err != nil {
		ctx.Fail(invalidArgument("%s: %v", op, err))
		return out
	}
	if !ctx.check(CanCast(common, ot), "%s: cannot cast %s result to %s output", op, common, ot) {
		return out
	}
	if (common.IsComplex() || ot.IsComplex()) && !ctx.check(xt == ot, "%s: complex operands need identical types, got %s -> %s", op, xt, ot) {
		return out
	}

	compute := common
	if compute.IsReducedPrecision() {
		compute = tensor.Float32
	}
	if !checkOp(ctx, op, compute) {
		return out
	}

	resizeOutput(op.String(), out, x.Shape())

	if xt == compute && xt == ot && x.IsContiguous() && out.IsContiguous() {
		k := vectorKernelsFor(xt)
		k.scalar(lanesFor(cpu.laneBytes, k.elemSize), op, out, x, k.fromScalar(s), false)
		return out
	}

	k := computeKernelsFor(compute)
	k.scalar(op, x, out, k.fromScalar(s), false)
	return out
}
