package cpu

import (
	"github.com/born-ml/elemwise/internal/tensor"
)

// computeKernels bundles the casting kernels of one compute type.
type computeKernels struct {
	// generic applies op over plan, casting a and b into the compute type
	// and the result into out's dtype.
	generic func(op opKind, a, b, out *tensor.RawTensor, plan *broadcastPlan)
	// scalar applies op between every element of t and sv, a compute value.
	scalar func(op opKind, t, out *tensor.RawTensor, sv any, reversed bool)
	// fromTensor reads a singleton tensor into a compute value.
	fromTensor func(single *tensor.RawTensor) any
	// fromScalar converts a scalar into a compute value.
	fromScalar func(s tensor.Scalar) any
}

// computeTable is indexed by the compute tensor.DataType. Bool computes in
// uint8 with 0/1 results. Float16 and BFloat16 have no entry.
var computeTable = [...]computeKernels{
	tensor.Bool:       newRealKernels(boolFunc),
	tensor.Uint8:      newRealKernels(arithFunc[uint8]),
	tensor.Uint16:     newRealKernels(arithFunc[uint16]),
	tensor.Uint32:     newRealKernels(arithFunc[uint32]),
	tensor.Uint64:     newRealKernels(arithFunc[uint64]),
	tensor.Int8:       newRealKernels(arithFunc[int8]),
	tensor.Int16:      newRealKernels(arithFunc[int16]),
	tensor.Int32:      newRealKernels(arithFunc[int32]),
	tensor.Int64:      newRealKernels(arithFunc[int64]),
	tensor.Float16:    {},
	tensor.BFloat16:   {},
	tensor.Float32:    newRealKernels(arithFunc[float32]),
	tensor.Float64:    newRealKernels(arithFunc[float64]),
	tensor.Complex64:  newComplexKernels[complex64](),
	tensor.Complex128: newComplexKernels[complex128](),
}

// innerKernel is the resolved generic kernel of a (compute, out) dtype pair.
// Pairs CanCast rejects resolve to the unreachable variant.
type innerKernel struct {
	run         func(op opKind, a, b, out *tensor.RawTensor, plan *broadcastPlan)
	unreachable bool
}

func resolveInner(compute, outType tensor.DataType) innerKernel {
	if !CanCast(compute, outType) {
		return innerKernel{unreachable: true}
	}
	return innerKernel{run: computeKernelsFor(compute).generic}
}

func (k innerKernel) apply(op opKind, a, b, out *tensor.RawTensor, plan *broadcastPlan) {
	if k.unreachable {
		bug("canCast should have been checked above")
	}
	k.run(op, a, b, out, plan)
}

func computeKernelsFor(dt tensor.DataType) computeKernels {
	if !dt.Valid() || computeTable[dt].generic == nil {
		bug("no compute kernels for %s", dt)
	}
	return computeTable[dt]
}

func newRealKernels[C realCompute](fnFor func(opKind) func(x, y C) C) computeKernels {
	return computeKernels{
		generic: func(op opKind, a, b, out *tensor.RawTensor, plan *broadcastPlan) {
			fn := fnFor(op)
			loadA, loadB, store := loader[C](a), loader[C](b), storer[C](out)
			plan.forEach(func(aOff, bOff, outOff int) {
				store(outOff, fn(loadA(aOff), loadB(bOff)))
			})
		},
		scalar: func(op opKind, t, out *tensor.RawTensor, sv any, reversed bool) {
			fn := fnFor(op)
			s := sv.(C)
			load, store := loader[C](t), storer[C](out)
			eachElement(t, out, func(off, outOff int) {
				if reversed {
					store(outOff, fn(s, load(off)))
				} else {
					store(outOff, fn(load(off), s))
				}
			})
		},
		fromTensor: func(single *tensor.RawTensor) any {
			return loader[C](single)(0)
		},
		fromScalar: func(s tensor.Scalar) any {
			return scalarTo[C](s)
		},
	}
}

func newComplexKernels[C complexCompute]() computeKernels {
	return computeKernels{
		generic: func(op opKind, a, b, out *tensor.RawTensor, plan *broadcastPlan) {
			fn := arithFunc[C](op)
			sa, sb, so := tensor.Elements[C](a), tensor.Elements[C](b), tensor.Elements[C](out)
			plan.forEach(func(aOff, bOff, outOff int) {
				so[outOff] = fn(sa[aOff], sb[bOff])
			})
		},
		scalar: func(op opKind, t, out *tensor.RawTensor, sv any, reversed bool) {
			fn := arithFunc[C](op)
			s := sv.(C)
			st, so := tensor.Elements[C](t), tensor.Elements[C](out)
			eachElement(t, out, func(off, outOff int) {
				if reversed {
					so[outOff] = fn(s, st[off])
				} else {
					so[outOff] = fn(st[off], s)
				}
			})
		},
		fromTensor: func(single *tensor.RawTensor) any {
			return tensor.Elements[C](single)[0]
		},
		fromScalar: func(s tensor.Scalar) any {
			return complexScalarTo[C](s)
		},
	}
}

// eachElement visits t and out, which hold the same number of elements, in
// row-major order. Contiguous pairs are walked as one linear run.
func eachElement(t, out *tensor.RawTensor, fn func(off, outOff int)) {
	n := t.NumElements()
	if t.IsContiguous() && out.IsContiguous() {
		for i := 0; i < n; i++ {
			fn(i, i)
		}
		return
	}
	plan := &broadcastPlan{
		shape:      t.Shape(),
		aStrides:   t.Strides(),
		bStrides:   make([]int, len(t.Shape())),
		outStrides: computeBroadcastStrides(out, t.Shape()),
	}
	plan.forEach(func(off, _, outOff int) {
		fn(off, outOff)
	})
}
