package tensor

// Add performs element-wise addition with broadcasting.
// The result is a new tensor of type T.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c, err := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) (*Tensor[T, B], error) {
	return t.binary(other, t.backend.Add)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) (*Tensor[T, B], error) {
	return t.binary(other, t.backend.Sub)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) (*Tensor[T, B], error) {
	return t.binary(other, t.backend.Mul)
}

// AddScalar adds s to every element.
func (t *Tensor[T, B]) AddScalar(s Scalar) (*Tensor[T, B], error) {
	return t.withScalar(s, t.backend.AddScalar)
}

// SubScalar subtracts s from every element.
func (t *Tensor[T, B]) SubScalar(s Scalar) (*Tensor[T, B], error) {
	return t.withScalar(s, t.backend.SubScalar)
}

// MulScalar multiplies every element by s.
func (t *Tensor[T, B]) MulScalar(s Scalar) (*Tensor[T, B], error) {
	return t.withScalar(s, t.backend.MulScalar)
}

func (t *Tensor[T, B]) binary(other *Tensor[T, B], op func(a, b, out *RawTensor) (*RawTensor, error)) (*Tensor[T, B], error) {
	shape, _, err := BroadcastShapes(t.Shape(), other.Shape())
	if err != nil {
		return nil, err
	}
	out, err := NewRaw(shape, t.DType())
	if err != nil {
		return nil, err
	}
	if _, err := op(t.raw, other.raw, out); err != nil {
		return nil, err
	}
	return New[T, B](out, t.backend), nil
}

func (t *Tensor[T, B]) withScalar(s Scalar, op func(x *RawTensor, s Scalar, out *RawTensor) (*RawTensor, error)) (*Tensor[T, B], error) {
	out, err := NewRaw(t.Shape(), t.DType())
	if err != nil {
		return nil, err
	}
	if _, err := op(t.raw, s, out); err != nil {
		return nil, err
	}
	return New[T, B](out, t.backend), nil
}

// Transpose returns a strided view with dimensions permuted by axes.
//
// If axes is empty, reverses all dimensions (for 2D, this is standard transpose).
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{2, 3, 4}, backend)
//	transposed, err := t.Transpose(2, 0, 1) // Shape: [4, 2, 3]
func (t *Tensor[T, B]) Transpose(axes ...int) (*Tensor[T, B], error) {
	if len(axes) == 0 {
		n := len(t.Shape())
		axes = make([]int, n)
		for i := range axes {
			axes[i] = n - 1 - i
		}
	}
	view, err := t.raw.Permute(axes...)
	if err != nil {
		return nil, err
	}
	return New[T, B](view, t.backend), nil
}

// Expand returns a stride-0 view broadcasting the tensor to shape.
func (t *Tensor[T, B]) Expand(shape Shape) (*Tensor[T, B], error) {
	view, err := t.raw.Expand(shape)
	if err != nil {
		return nil, err
	}
	return New[T, B](view, t.backend), nil
}
