package tensor

import (
	"github.com/pkg/errors"
)

// mockBackend is a naive float32 reference backend for testing the typed
// Tensor front end without the CPU kernels.
type mockBackend struct{}

func newMockBackend() *mockBackend {
	return &mockBackend{}
}

func (m *mockBackend) Name() string { return "mock" }

func (m *mockBackend) Add(a, b, out *RawTensor) (*RawTensor, error) {
	return m.binary(a, b, out, func(x, y float32) float32 { return x + y })
}

func (m *mockBackend) Sub(a, b, out *RawTensor) (*RawTensor, error) {
	return m.binary(a, b, out, func(x, y float32) float32 { return x - y })
}

func (m *mockBackend) Mul(a, b, out *RawTensor) (*RawTensor, error) {
	return m.binary(a, b, out, func(x, y float32) float32 { return x * y })
}

func (m *mockBackend) AddScalar(x *RawTensor, s Scalar, out *RawTensor) (*RawTensor, error) {
	return m.scalar(x, s, out, func(x, y float32) float32 { return x + y })
}

func (m *mockBackend) SubScalar(x *RawTensor, s Scalar, out *RawTensor) (*RawTensor, error) {
	return m.scalar(x, s, out, func(x, y float32) float32 { return x - y })
}

func (m *mockBackend) MulScalar(x *RawTensor, s Scalar, out *RawTensor) (*RawTensor, error) {
	return m.scalar(x, s, out, func(x, y float32) float32 { return x * y })
}

func (m *mockBackend) binary(a, b, out *RawTensor, fn func(x, y float32) float32) (*RawTensor, error) {
	shape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return out, err
	}
	ea, err := a.Expand(shape)
	if err != nil {
		return out, err
	}
	eb, err := b.Expand(shape)
	if err != nil {
		return out, err
	}
	if err := out.Resize(shape); err != nil {
		return out, err
	}
	va, vb, vo := ToSlice[float32](ea), ToSlice[float32](eb), Elements[float32](out)
	for i := range va {
		vo[i] = fn(va[i], vb[i])
	}
	return out, nil
}

func (m *mockBackend) scalar(x *RawTensor, s Scalar, out *RawTensor, fn func(x, y float32) float32) (*RawTensor, error) {
	if s.Kind() == ScalarComplex {
		return out, errors.New("mock: complex scalars are not supported")
	}
	v := float32(real(s.Complex()))
	vx, vo := ToSlice[float32](x), Elements[float32](out)
	for i := range vx {
		vo[i] = fn(vx[i], v)
	}
	return out, nil
}
