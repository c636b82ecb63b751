package tensor

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrCapacityExceeded is wrapped by Resize when the new shape does not fit in the buffer.
var ErrCapacityExceeded = errors.New("tensor capacity exceeded")

// RawTensor is the low-level tensor representation.
//
// A RawTensor is a typed, strided view over a byte buffer whose capacity is
// fixed at construction. Strides and offset are expressed in elements.
// Several views may share one buffer (see Permute and Expand).
type RawTensor struct {
	buffer []byte   // Caller-owned storage, never reallocated
	shape  Shape    // Tensor dimensions
	stride []int    // Element strides, 0 on broadcast (expanded) dims
	dtype  DataType // Runtime type information
	offset int      // Element offset of the first element
}

// NewRaw creates a new contiguous RawTensor with the given shape and type.
// Memory is allocated and zeroed.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return NewRawWithCapacity(shape, dtype, shape.NumElements())
}

// NewRawWithCapacity creates a contiguous RawTensor whose buffer can hold
// capacity elements, so that it can later be resized up to that count.
func NewRawWithCapacity(shape Shape, dtype DataType, capacity int) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	if !dtype.Valid() {
		return nil, errors.Errorf("invalid data type %d", int(dtype))
	}
	numElements := shape.NumElements()
	if capacity < numElements {
		return nil, errors.Wrapf(ErrCapacityExceeded, "capacity %d < %d elements of shape %v", capacity, numElements, shape)
	}

	return &RawTensor{
		buffer: make([]byte, capacity*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// FromSlice creates a contiguous tensor of the given shape holding a copy of data.
func FromSlice[T DType](shape Shape, data []T) (*RawTensor, error) {
	dtype := DataTypeOf[T]()
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("shape %v needs %d elements, got %d", shape, shape.NumElements(), len(data))
	}
	r, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	copy(Elements[T](r), data)
	return r, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's element strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Offset returns the element offset of the view into its buffer.
func (r *RawTensor) Offset() int {
	return r.offset
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Capacity returns how many elements the underlying buffer can hold.
func (r *RawTensor) Capacity() int {
	return len(r.buffer) / r.dtype.Size()
}

// ByteSize returns the logical size of the tensor in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw bytes covered by this view, starting at its offset.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	start := r.offset * r.dtype.Size()
	return r.buffer[start : start+r.StorageLen()*r.dtype.Size()]
}

// StorageLen returns the number of elements spanned by the view in its buffer,
// from the offset to the furthest addressable element.
func (r *RawTensor) StorageLen() int {
	if r.NumElements() == 0 {
		return 0
	}
	last := 0
	for i, dim := range r.shape {
		last += (dim - 1) * r.stride[i]
	}
	return last + 1
}

// IsContiguous reports whether elements are laid out densely in row-major order.
// Dimensions of size 1 are ignored.
func (r *RawTensor) IsContiguous() bool {
	expected := 1
	for i := len(r.shape) - 1; i >= 0; i-- {
		if r.shape[i] == 1 {
			continue
		}
		if r.stride[i] != expected {
			return false
		}
		expected *= r.shape[i]
	}
	return true
}

// Resize changes the tensor's shape in place. The buffer is never reallocated:
// the new element count must fit the capacity. Afterwards the tensor is
// contiguous from its offset. Resizing to the current shape is a no-op.
func (r *RawTensor) Resize(shape Shape) error {
	if r.shape.Equal(shape) {
		return nil
	}
	if err := shape.Validate(); err != nil {
		return errors.Wrap(err, "resize")
	}
	if need := r.offset + shape.NumElements(); need > r.Capacity() {
		return errors.Wrapf(ErrCapacityExceeded, "resize to %v needs %d elements, capacity is %d",
			shape, need, r.Capacity())
	}
	r.shape = shape.Clone()
	r.stride = shape.ComputeStrides()
	return nil
}

// View returns a tensor sharing r's buffer with the given geometry.
// Shape, strides and offset are in elements and must stay inside the buffer.
func (r *RawTensor) View(shape Shape, strides []int, offset int) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "view")
	}
	if len(strides) != len(shape) {
		return nil, errors.Errorf("view: %d strides for %d dimensions", len(strides), len(shape))
	}
	for i, s := range strides {
		if s < 0 {
			return nil, errors.Errorf("view: negative stride %d at dimension %d", s, i)
		}
	}
	v := &RawTensor{
		buffer: r.buffer,
		shape:  shape.Clone(),
		stride: append([]int(nil), strides...),
		dtype:  r.dtype,
		offset: offset,
	}
	if offset < 0 || offset+v.StorageLen() > r.Capacity() {
		return nil, errors.Errorf("view: shape %v strides %v offset %d exceed buffer of %d elements",
			shape, strides, offset, r.Capacity())
	}
	return v, nil
}

// Permute returns a view with dimensions reordered by axes.
func (r *RawTensor) Permute(axes ...int) (*RawTensor, error) {
	ndim := len(r.shape)
	if len(axes) != ndim {
		return nil, errors.Errorf("permute: axes length %d != ndim %d", len(axes), ndim)
	}
	seen := make([]bool, ndim)
	shape := make(Shape, ndim)
	strides := make([]int, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, errors.Errorf("permute: invalid axis %d for %dD tensor", ax, ndim)
		}
		if seen[ax] {
			return nil, errors.Errorf("permute: duplicate axis %d", ax)
		}
		seen[ax] = true
		shape[i] = r.shape[ax]
		strides[i] = r.stride[ax]
	}
	return r.View(shape, strides, r.offset)
}

// Expand returns a stride-0 view broadcasting r to shape.
func (r *RawTensor) Expand(shape Shape) (*RawTensor, error) {
	target, _, err := BroadcastShapes(r.shape, shape)
	if err != nil {
		return nil, errors.Wrap(err, "expand")
	}
	if !target.Equal(shape) {
		return nil, errors.Errorf("expand: cannot expand %v to %v", r.shape, shape)
	}
	pad := len(shape) - len(r.shape)
	strides := make([]int, len(shape))
	for i := range shape {
		j := i - pad
		if j >= 0 && r.shape[j] == shape[i] {
			strides[i] = r.stride[j]
		}
	}
	return r.View(shape, strides, r.offset)
}

// Elements returns the storage of r as a []T starting at the view's offset
// and spanning StorageLen elements. Index it with strides, or directly when
// the tensor is contiguous. Panics if T does not match the tensor's dtype.
func Elements[T DType](r *RawTensor) []T {
	if dt := DataTypeOf[T](); dt != r.dtype {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, dt))
	}
	n := r.StorageLen()
	if n == 0 {
		return nil
	}
	data := r.buffer[r.offset*r.dtype.Size():]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by StorageLen()
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}

// ToSlice gathers the logical elements of r in row-major order into a new slice.
func ToSlice[T DType](r *RawTensor) []T {
	src := Elements[T](r)
	out := make([]T, r.NumElements())
	if len(out) == 0 {
		return out
	}
	if r.IsContiguous() {
		copy(out, src)
		return out
	}
	coords := make([]int, len(r.shape))
	off := 0
	for i := range out {
		out[i] = src[off]
		for d := len(coords) - 1; d >= 0; d-- {
			coords[d]++
			off += r.stride[d]
			if coords[d] < r.shape[d] {
				break
			}
			off -= coords[d] * r.stride[d]
			coords[d] = 0
		}
	}
	return out
}

// AsFloat32 interprets a contiguous float32 tensor as []float32.
func (r *RawTensor) AsFloat32() []float32 {
	return Elements[float32](r)
}

// AsFloat64 interprets a contiguous float64 tensor as []float64.
func (r *RawTensor) AsFloat64() []float64 {
	return Elements[float64](r)
}

// AsInt32 interprets a contiguous int32 tensor as []int32.
func (r *RawTensor) AsInt32() []int32 {
	return Elements[int32](r)
}

// AsInt64 interprets a contiguous int64 tensor as []int64.
func (r *RawTensor) AsInt64() []int64 {
	return Elements[int64](r)
}

// AsBool interprets a contiguous bool tensor as []bool.
func (r *RawTensor) AsBool() []bool {
	return Elements[bool](r)
}
