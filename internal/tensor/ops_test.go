package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorBinaryOps(t *testing.T) {
	backend := newMockBackend()
	a, err := FromValues([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	require.NoError(t, err)
	b, err := FromValues([]float32{10, 20, 30}, Shape{3}, backend)
	require.NoError(t, err)

	tests := []struct {
		name     string
		op       func(x, y *Tensor[float32, *mockBackend]) (*Tensor[float32, *mockBackend], error)
		expected []float32
	}{
		{"Add", (*Tensor[float32, *mockBackend]).Add, []float32{11, 22, 33, 14, 25, 36}},
		{"Sub", (*Tensor[float32, *mockBackend]).Sub, []float32{-9, -18, -27, -6, -15, -24}},
		{"Mul", (*Tensor[float32, *mockBackend]).Mul, []float32{10, 40, 90, 40, 100, 180}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, Shape{2, 3}, got.Shape())
			assert.Equal(t, tt.expected, got.Values())
		})
	}
}

func TestTensorBinaryIncompatible(t *testing.T) {
	backend := newMockBackend()
	a := Zeros[float32](Shape{2, 3}, backend)
	b := Zeros[float32](Shape{4}, backend)

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrIncompatibleShapes)
}

func TestTensorScalarOps(t *testing.T) {
	backend := newMockBackend()
	x, _ := FromValues([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)

	got, err := x.MulScalar(FloatScalar(2.5))
	require.NoError(t, err)
	assert.Equal(t, []float32{2.5, 5, 7.5, 10}, got.Values())

	got, err = x.AddScalar(IntScalar(10))
	require.NoError(t, err)
	assert.Equal(t, []float32{11, 12, 13, 14}, got.Values())

	got, err = x.SubScalar(IntScalar(1))
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2, 3}, got.Values())

	_, err = x.MulScalar(ComplexScalar(1i))
	assert.Error(t, err)
}

func TestTensorTranspose(t *testing.T) {
	backend := newMockBackend()
	x, _ := FromValues([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)

	tr, err := x.Transpose()
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, tr.Shape())
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, tr.Values())
	assert.Equal(t, float32(4), tr.At(0, 1))

	// Views share storage.
	tr.Set(42, 2, 1)
	assert.Equal(t, float32(42), x.At(1, 2))

	_, err = x.Transpose(0, 0)
	assert.Error(t, err)
}

func TestTensorExpand(t *testing.T) {
	backend := newMockBackend()
	row, _ := FromValues([]float32{1, 2}, Shape{2}, backend)

	ex, err := row.Expand(Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 1, 2, 1, 2}, ex.Values())

	sum, err := ex.Add(ex)
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 4, 2, 4, 2, 4}, sum.Values())
}

func TestTensorClone(t *testing.T) {
	backend := newMockBackend()
	x, _ := FromValues([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)
	tr, _ := x.Transpose()

	c := tr.Clone()
	assert.True(t, c.Raw().IsContiguous())
	assert.Equal(t, []float32{1, 3, 2, 4}, c.Data())

	c.Set(0, 0, 0)
	assert.Equal(t, float32(1), x.At(0, 0), "clone must not share storage")
}

func TestTensorString(t *testing.T) {
	x := Zeros[int32](Shape{2, 2}, newMockBackend())
	assert.Equal(t, "Tensor[int32][2 2] on mock", x.String())
}

func TestNewDTypeMismatchPanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Int32)
	assert.Panics(t, func() {
		New[float32](raw, newMockBackend())
	})
}
