package cpu

import (
	"fmt"

	"github.com/born-ml/elemwise/internal/logging"
	"github.com/born-ml/elemwise/internal/tensor"
)

// broadcastPlan is the resolved iteration space of one binary call.
type broadcastPlan struct {
	shape      tensor.Shape
	aStrides   []int // 0 on dimensions a is broadcast along
	bStrides   []int
	outStrides []int
	trivial    bool // a and b match ignoring leading 1s
	linear     bool // trivial and every tensor contiguous
}

// ComputeBroadcastShape returns the right-aligned broadcast of a and b, or an
// ErrInvalidArgument error when they are incompatible.
func ComputeBroadcastShape(a, b tensor.Shape) (tensor.Shape, error) {
	shape, _, err := tensor.BroadcastShapes(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return shape, nil
}

// isTrivialBroadcast reports whether two shapes describe the same flat run of
// elements once leading unit dimensions are dropped.
func isTrivialBroadcast(a, b tensor.Shape) bool {
	return a.TrimLeadingOnes().Equal(b.TrimLeadingOnes())
}

// resizeOutput asks out to take the given shape. Failing to do so is fatal:
// output capacity is a precondition the kernel cannot repair.
func resizeOutput(name string, out *tensor.RawTensor, shape tensor.Shape) {
	if err := out.Resize(shape); err != nil {
		msg := fmt.Sprintf("%s: failed to resize output tensor: %v", name, err)
		logging.Get().Error(msg)
		panic(msg)
	}
	if out.NumElements() != shape.NumElements() {
		msg := fmt.Sprintf("%s: output has %d elements after resize, want %d", name, out.NumElements(), shape.NumElements())
		logging.Get().Error(msg)
		panic(msg)
	}
}

// resizeToBroadcastTarget sizes out to shape and returns the plan iterating it.
func resizeToBroadcastTarget(name string, a, b, out *tensor.RawTensor, shape tensor.Shape) *broadcastPlan {
	resizeOutput(name, out, shape)
	trivial := isTrivialBroadcast(a.Shape(), b.Shape())
	return &broadcastPlan{
		shape:      shape,
		aStrides:   computeBroadcastStrides(a, shape),
		bStrides:   computeBroadcastStrides(b, shape),
		outStrides: out.Strides(),
		trivial:    trivial,
		linear:     trivial && a.IsContiguous() && b.IsContiguous() && out.IsContiguous(),
	}
}

// computeBroadcastStrides computes the strides reading t as if broadcast to outShape.
// Padded dimensions and dimensions of size 1 get stride 0; the rest keep t's native stride.
func computeBroadcastStrides(t *tensor.RawTensor, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inShape := t.Shape()
	inStrides := t.Strides()
	offset := outDim - len(inShape)

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = inStrides[inIdx]
		}
	}

	return strides
}

// forEach visits the output index space in row-major order, passing the
// element offsets of a, b and out for each coordinate.
func (p *broadcastPlan) forEach(fn func(aOff, bOff, outOff int)) {
	n := p.shape.NumElements()
	if p.linear {
		for i := 0; i < n; i++ {
			fn(i, i, i)
		}
		return
	}
	if n == 0 {
		return
	}
	ndim := len(p.shape)
	coords := make([]int, ndim)
	aOff, bOff, outOff := 0, 0, 0

	for i := 0; i < n; i++ {
		fn(aOff, bOff, outOff)
		for d := ndim - 1; d >= 0; d-- {
			coords[d]++
			aOff += p.aStrides[d]
			bOff += p.bStrides[d]
			outOff += p.outStrides[d]
			if coords[d] < p.shape[d] {
				break
			}
			aOff -= coords[d] * p.aStrides[d]
			bOff -= coords[d] * p.bStrides[d]
			outOff -= coords[d] * p.outStrides[d]
			coords[d] = 0
		}
	}
}
