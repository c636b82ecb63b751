package tensor

// Backend defines the elementwise kernel family a typed Tensor dispatches to.
//
// Every operation writes into a caller-provided output, resizing it to the
// broadcast shape, and returns it. The output's dtype selects the result
// type: it may differ from the operands' types as long as the promoted
// compute type can be cast to it.
//
// Implementations:
//   - backend/cpu: portable Go kernels with batched fast paths
type Backend interface {
	// Element-wise binary operations with broadcasting
	Add(a, b, out *RawTensor) (*RawTensor, error)
	Sub(a, b, out *RawTensor) (*RawTensor, error)
	Mul(a, b, out *RawTensor) (*RawTensor, error)

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, s Scalar, out *RawTensor) (*RawTensor, error) // add scalar
	SubScalar(x *RawTensor, s Scalar, out *RawTensor) (*RawTensor, error) // subtract scalar
	MulScalar(x *RawTensor, s Scalar, out *RawTensor) (*RawTensor, error) // multiply by scalar

	// Metadata
	Name() string
}
