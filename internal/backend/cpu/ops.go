package cpu

import (
	"github.com/sirupsen/logrus"

	"github.com/born-ml/elemwise/internal/logging"
	"github.com/born-ml/elemwise/internal/tensor"
)

// opKind identifies a binary elementwise operation of the kernel family.
type opKind int

const (
	opMul opKind = iota
	opAdd
	opSub
)

func (k opKind) String() string {
	switch k {
	case opMul:
		return "mul"
	case opAdd:
		return "add"
	case opSub:
		return "sub"
	default:
		return "unknown"
	}
}

// arithFunc returns the closure computing op on T.
func arithFunc[T arith](op opKind) func(x, y T) T {
	switch op {
	case opAdd:
		return func(x, y T) T { return x + y }
	case opSub:
		return func(x, y T) T { return x - y }
	default:
		return func(x, y T) T { return x * y }
	}
}

// boolFunc returns op on booleans held as 0/1 bytes: mul is AND, add is OR.
func boolFunc(op opKind) func(x, y uint8) uint8 {
	if op == opAdd {
		return func(x, y uint8) uint8 { return x | y }
	}
	return func(x, y uint8) uint8 { return x & y }
}

// checkOp rejects operations that have no meaning in the compute type.
func checkOp(ctx *Context, op opKind, compute tensor.DataType) bool {
	return ctx.check(!(op == opSub && compute == tensor.Bool),
		"%s: subtraction of bool operands is not supported", op)
}

// Mul computes out = a * b with broadcasting. Failures are recorded on ctx;
// out is returned in every case.
func (cpu *CPUBackend) Mul(ctx *Context, a, b, out *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(ctx, opMul, a, b, out)
}

// Add computes out = a + b with broadcasting.
func (cpu *CPUBackend) Add(ctx *Context, a, b, out *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(ctx, opAdd, a, b, out)
}

// Sub computes out = a - b with broadcasting.
func (cpu *CPUBackend) Sub(ctx *Context, a, b, out *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(ctx, opSub, a, b, out)
}

func (cpu *CPUBackend) binary(ctx *Context, op opKind, a, b, out *tensor.RawTensor) *tensor.RawTensor {
	shape, err := ComputeBroadcastShape(a.Shape(), b.Shape())
	if err != nil {
		ctx.Fail(err)
		return out
	}

	path := SelectPath(a, b, out)
	cpu.logPath(op, path, a, b, out)

	switch path.Kind {
	case PathScalar:
		if path.Reversed {
			cpu.scalarTensor(ctx, op, b, a, out, shape, true)
		} else {
			cpu.scalarTensor(ctx, op, a, b, out, shape, false)
		}
	case PathVectorized1D, PathVectorizedBroadcast:
		cpu.vectorized(ctx, op, path, a, b, out, shape)
	default:
		cpu.generic(ctx, op, a, b, out, shape)
	}
	return out
}

// vectorized runs the batched paths. The selector guarantees one shared,
// non-reduced-precision dtype; anything else is a bug.
func (cpu *CPUBackend) vectorized(ctx *Context, op opKind, path Path, a, b, out *tensor.RawTensor, shape tensor.Shape) {
	dt := out.DType()
	if a.DType() != dt || b.DType() != dt || dt.IsReducedPrecision() {
		bug("%s: vectorized path selected for %s, %s -> %s", op, a.DType(), b.DType(), dt)
	}
	if !checkOp(ctx, op, dt) {
		return
	}
	resizeOutput(op.String(), out, shape)

	k := vectorKernelsFor(dt)
	lanes := lanesFor(cpu.laneBytes, k.elemSize)
	if path.Kind == PathVectorized1D {
		k.map2(lanes, op, out, a, b)
		return
	}
	k.broadcast(lanes, op, path, out, a, b)
}

// generic promotes both operands, validates the output type and iterates the
// broadcast index space element by element.
func (cpu *CPUBackend) generic(ctx *Context, op opKind, a, b, out *tensor.RawTensor, shape tensor.Shape) {
	at, bt, ot := a.DType(), b.DType(), out.DType()

	common, err := PromoteTypes(at, bt, true)
	if err != nil {
		ctx.Fail(invalidArgument("%s: %v", op, err))
		return
	}
	if !ctx.check(CanCast(common, ot), "%s: cannot cast %s result to %s output", op, common, ot) {
		return
	}

	plan := resizeToBroadcastTarget(op.String(), a, b, out, shape)

	if at.IsComplex() || bt.IsComplex() || ot.IsComplex() {
		if !ctx.check(at == bt && at == ot, "%s: complex operands need identical types, got %s, %s -> %s", op, at, bt, ot) {
			return
		}
	}
	if !checkOp(ctx, op, common) {
		return
	}

	resolveInner(common, ot).apply(op, a, b, out, plan)
}

func (cpu *CPUBackend) logPath(op opKind, path Path, a, b, out *tensor.RawTensor) {
	log := logging.Get()
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	log.WithFields(logrus.Fields{
		"op":      op.String(),
		"path":    path.String(),
		"a":       a.Shape(),
		"b":       b.Shape(),
		"dtypes":  []string{a.DType().String(), b.DType().String(), out.DType().String()},
		"trivial": isTrivialBroadcast(a.Shape(), b.Shape()),
	}).Debug("selected path")
}
