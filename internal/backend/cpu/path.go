package cpu

import (
	"fmt"

	"github.com/born-ml/elemwise/internal/tensor"
)

// PathKind is the execution strategy of a binary call.
type PathKind int

// Execution strategies, in selection priority order.
const (
	PathScalar PathKind = iota
	PathVectorized1D
	PathVectorizedBroadcast
	PathGeneric
)

// String returns the strategy name.
func (k PathKind) String() string {
	switch k {
	case PathScalar:
		return "scalar"
	case PathVectorized1D:
		return "vectorized-1d"
	case PathVectorizedBroadcast:
		return "vectorized-broadcast"
	case PathGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// BroadcastPattern names the broadcast shapes the vectorized broadcast path handles.
type BroadcastPattern int

// Recognized broadcast patterns. Shapes are compared after dropping leading 1s.
const (
	PatternNone BroadcastPattern = iota
	// Pattern2dBy1d: [M, N] with [N].
	Pattern2dBy1d
	// PatternNdByNd: equal ranks, one interior dimension is 1 on one side.
	PatternNdByNd
	// PatternLastDim: equal ranks, the last dimension is 1 on one side.
	PatternLastDim
)

// String returns the pattern name.
func (p BroadcastPattern) String() string {
	switch p {
	case Pattern2dBy1d:
		return "2d-by-1d"
	case PatternNdByNd:
		return "nd-by-nd"
	case PatternLastDim:
		return "last-dim"
	default:
		return "none"
	}
}

// Path is the outcome of SelectPath.
type Path struct {
	Kind    PathKind
	Pattern BroadcastPattern
	// Reversed means the roles of the operands are swapped: for PathScalar the
	// singleton is a, for broadcast patterns a is the side being repeated.
	Reversed bool
	// Dim is the broadcast dimension counted from the end (-1 is the last one).
	// Only set for PatternNdByNd and PatternLastDim.
	Dim int
}

// String formats the path for logs.
func (p Path) String() string {
	s := p.Kind.String()
	if p.Kind == PathVectorizedBroadcast {
		s += fmt.Sprintf("(%s dim=%d)", p.Pattern, p.Dim)
	}
	if p.Reversed {
		s += " reversed"
	}
	return s
}

// SelectPath chooses the execution strategy for out = op(a, b). It is a pure
// function of shapes, strides and dtypes; the first matching rule wins:
//  1. an operand with exactly one element, the other contiguous → PathScalar
//  2. same non-reduced-precision dtype everywhere, contiguous, shapes equal
//     ignoring leading 1s → PathVectorized1D
//  3. same gate, recognized broadcast pattern → PathVectorizedBroadcast
//  4. anything else → PathGeneric
func SelectPath(a, b, out *tensor.RawTensor) Path {
	if out.IsContiguous() {
		if b.NumElements() == 1 && a.IsContiguous() {
			return Path{Kind: PathScalar}
		}
		if a.NumElements() == 1 && b.IsContiguous() {
			return Path{Kind: PathScalar, Reversed: true}
		}
	}

	dt := a.DType()
	if dt != b.DType() || dt != out.DType() || dt.IsReducedPrecision() {
		return Path{Kind: PathGeneric}
	}
	if !a.IsContiguous() || !b.IsContiguous() || !out.IsContiguous() {
		return Path{Kind: PathGeneric}
	}
	if isTrivialBroadcast(a.Shape(), b.Shape()) {
		return Path{Kind: PathVectorized1D}
	}
	return selectBroadcastPath(a.Shape().TrimLeadingOnes(), b.Shape().TrimLeadingOnes())
}

func selectBroadcastPath(lhs, rhs tensor.Shape) Path {
	if len(lhs) == 2 && len(rhs) == 1 && lhs[1] == rhs[0] {
		return Path{Kind: PathVectorizedBroadcast, Pattern: Pattern2dBy1d}
	}
	if len(lhs) == 1 && len(rhs) == 2 && rhs[1] == lhs[0] {
		return Path{Kind: PathVectorizedBroadcast, Pattern: Pattern2dBy1d, Reversed: true}
	}

	dim := broadcastDim(lhs, rhs)
	switch {
	case dim < -1:
		return Path{Kind: PathVectorizedBroadcast, Pattern: PatternNdByNd, Dim: dim, Reversed: countOnes(rhs) != 1}
	case dim == -1:
		return Path{Kind: PathVectorizedBroadcast, Pattern: PatternLastDim, Dim: dim, Reversed: countOnes(lhs) == 1}
	}
	return Path{Kind: PathGeneric}
}

// broadcastDim returns the single dimension (negative, from the end) along
// which equal-rank shapes differ by a size-1 side, or 0 when there is no such
// unique dimension. The leading dimension is never a broadcast dimension.
func broadcastDim(lhs, rhs tensor.Shape) int {
	if len(lhs) != len(rhs) {
		return 0
	}
	dim := 0
	for i := len(lhs) - 1; i > 0; i-- {
		switch {
		case lhs[i] == 1 || rhs[i] == 1:
			if dim != 0 {
				return 0
			}
			dim = i - len(lhs)
		case lhs[i] != rhs[i]:
			return 0
		}
	}
	if len(lhs) > 0 && lhs[0] != rhs[0] {
		return 0
	}
	return dim
}

func countOnes(s tensor.Shape) int {
	n := 0
	for _, d := range s {
		if d == 1 {
			n++
		}
	}
	return n
}
