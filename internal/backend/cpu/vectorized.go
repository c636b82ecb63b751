package cpu

import (
	"unsafe"

	"github.com/born-ml/elemwise/internal/tensor"
)

// arith lists the storage types the vectorized paths are instantiated for.
// Bool tensors go through their uint8 representation.
type arith interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 |
		float32 | float64 | complex64 | complex128
}

// vectorKernels bundles the batched kernels of one storage type.
type vectorKernels struct {
	map2       func(lanes int, op opKind, out, a, b *tensor.RawTensor)
	broadcast  func(lanes int, op opKind, path Path, out, a, b *tensor.RawTensor)
	scalar     func(lanes int, op opKind, out, t *tensor.RawTensor, sv any, reversed bool)
	fromTensor func(single *tensor.RawTensor) any
	fromScalar func(s tensor.Scalar) any
	elemSize   int
}

// vectorTable is indexed by tensor.DataType. Reduced precision types have no
// entry: they always compute in float32 on the generic or slow scalar paths.
var vectorTable = [...]vectorKernels{
	tensor.Bool:       newVectorKernels(boolView, boolFunc, func(s tensor.Scalar) uint8 { return boolByte(s.Complex() != 0) }),
	tensor.Uint8:      newVectorKernels(tensor.Elements[uint8], arithFunc[uint8], scalarTo[uint8]),
	tensor.Uint16:     newVectorKernels(tensor.Elements[uint16], arithFunc[uint16], scalarTo[uint16]),
	tensor.Uint32:     newVectorKernels(tensor.Elements[uint32], arithFunc[uint32], scalarTo[uint32]),
	tensor.Uint64:     newVectorKernels(tensor.Elements[uint64], arithFunc[uint64], scalarTo[uint64]),
	tensor.Int8:       newVectorKernels(tensor.Elements[int8], arithFunc[int8], scalarTo[int8]),
	tensor.Int16:      newVectorKernels(tensor.Elements[int16], arithFunc[int16], scalarTo[int16]),
	tensor.Int32:      newVectorKernels(tensor.Elements[int32], arithFunc[int32], scalarTo[int32]),
	tensor.Int64:      newVectorKernels(tensor.Elements[int64], arithFunc[int64], scalarTo[int64]),
	tensor.Float16:    {},
	tensor.BFloat16:   {},
	tensor.Float32:    newVectorKernels(tensor.Elements[float32], arithFunc[float32], scalarTo[float32]),
	tensor.Float64:    newVectorKernels(tensor.Elements[float64], arithFunc[float64], scalarTo[float64]),
	tensor.Complex64:  newVectorKernels(tensor.Elements[complex64], arithFunc[complex64], complexScalarTo[complex64]),
	tensor.Complex128: newVectorKernels(tensor.Elements[complex128], arithFunc[complex128], complexScalarTo[complex128]),
}

func vectorKernelsFor(dt tensor.DataType) vectorKernels {
	if !dt.Valid() || vectorTable[dt].map2 == nil {
		bug("no vectorized kernels for %s", dt)
	}
	return vectorTable[dt]
}

func newVectorKernels[T arith](
	view func(*tensor.RawTensor) []T,
	fnFor func(opKind) func(x, y T) T,
	convert func(tensor.Scalar) T,
) vectorKernels {
	var zero T
	return vectorKernels{
		map2: func(lanes int, op opKind, out, a, b *tensor.RawTensor) {
			n := out.NumElements()
			map2(lanes, fnFor(op), view(out)[:n], view(a)[:n], view(b)[:n])
		},
		broadcast: func(lanes int, op opKind, path Path, out, a, b *tensor.RawTensor) {
			applyBroadcast(lanes, fnFor(op), path, view(out), view(a), view(b), a.Shape(), b.Shape())
		},
		scalar: func(lanes int, op opKind, out, t *tensor.RawTensor, sv any, reversed bool) {
			n := out.NumElements()
			mapScalar(lanes, fnFor(op), view(out)[:n], view(t)[:n], sv.(T), reversed)
		},
		fromTensor: func(single *tensor.RawTensor) any {
			return view(single)[0]
		},
		fromScalar: func(s tensor.Scalar) any {
			return convert(s)
		},
		elemSize: int(unsafe.Sizeof(zero)),
	}
}

// boolView exposes a bool tensor as bytes holding 0 or 1.
func boolView(r *tensor.RawTensor) []uint8 {
	b := tensor.Elements[bool](r)
	if len(b) == 0 {
		return nil
	}
	//nolint:gosec // bool and uint8 share size and the 0/1 representation
	return unsafe.Slice((*uint8)(unsafe.Pointer(&b[0])), len(b))
}

func boolByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

// lanesFor returns how many elements of elemSize bytes fit a batch of laneBytes.
func lanesFor(laneBytes, elemSize int) int {
	return max(1, laneBytes/elemSize)
}

// map2 computes dst[i] = fn(a[i], b[i]) in batches of lanes elements,
// finishing with a scalar remainder loop.
func map2[T any](lanes int, fn func(x, y T) T, dst, a, b []T) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+lanes <= n; i += lanes {
		vd, va, vb := dst[i:i+lanes], a[i:i+lanes], b[i:i+lanes]
		for j := range vd {
			vd[j] = fn(va[j], vb[j])
		}
	}
	for ; i < n; i++ {
		dst[i] = fn(a[i], b[i])
	}
}

// mapScalar computes dst[i] = fn(a[i], s), or fn(s, a[i]) when reversed.
func mapScalar[T any](lanes int, fn func(x, y T) T, dst, a []T, s T, reversed bool) {
	if reversed {
		orig := fn
		fn = func(x, y T) T { return orig(y, x) }
	}
	n := len(dst)
	a = a[:n]
	i := 0
	for ; i+lanes <= n; i += lanes {
		vd, va := dst[i:i+lanes], a[i:i+lanes]
		for j := range vd {
			vd[j] = fn(va[j], s)
		}
	}
	for ; i < n; i++ {
		dst[i] = fn(a[i], s)
	}
}

// applyBroadcast runs one of the recognized broadcast patterns over
// contiguous storage. With path.Reversed the repeated operand is a, and fn
// still receives its arguments in (a, b) order.
func applyBroadcast[T any](lanes int, fn func(x, y T) T, path Path, dst, a, b []T, aShape, bShape tensor.Shape) {
	lhs, rhs := a, b
	lhsShape := aShape.TrimLeadingOnes()
	f := fn
	if path.Reversed {
		lhs, rhs = b, a
		lhsShape = bShape.TrimLeadingOnes()
		f = func(x, y T) T { return fn(y, x) }
	}

	switch path.Pattern {
	case Pattern2dBy1d:
		m, n := lhsShape[0], lhsShape[1]
		for i := 0; i < m; i++ {
			row := i * n
			map2(lanes, f, dst[row:row+n], lhs[row:row+n], rhs[:n])
		}
	case PatternNdByNd:
		d := len(lhsShape) + path.Dim
		outer := lhsShape[:d].NumElements()
		size := lhsShape[d]
		inner := lhsShape[d+1:].NumElements()
		for o := 0; o < outer; o++ {
			r := rhs[o*inner : (o+1)*inner]
			for j := 0; j < size; j++ {
				base := (o*size + j) * inner
				map2(lanes, f, dst[base:base+inner], lhs[base:base+inner], r)
			}
		}
	case PatternLastDim:
		last := len(lhsShape) - 1
		outer := lhsShape[:last].NumElements()
		k := lhsShape[last]
		for o := 0; o < outer; o++ {
			base := o * k
			mapScalar(lanes, f, dst[base:base+k], lhs[base:base+k], rhs[o], false)
		}
	default:
		bug("vectorized broadcast called with pattern %s", path.Pattern)
	}
}
