package tensor

import (
	"testing"

	"github.com/gomlx/gomlx/pkg/core/dtypes/bfloat16"
	"github.com/stretchr/testify/assert"
	"github.com/x448/float16"
)

func TestZerosOnesFull(t *testing.T) {
	backend := newMockBackend()

	z := Zeros[int64](Shape{2, 2}, backend)
	assert.Equal(t, []int64{0, 0, 0, 0}, z.Data())

	o := Ones[bool](Shape{3}, backend)
	assert.Equal(t, []bool{true, true, true}, o.Data())

	h := Ones[float16.Float16](Shape{2}, backend)
	assert.Equal(t, float32(1), h.At(1).Float32())

	f := Full(Shape{2}, complex64(2+1i), backend)
	assert.Equal(t, []complex64{2 + 1i, 2 + 1i}, f.Data())
}

func TestArange(t *testing.T) {
	backend := newMockBackend()

	a := Arange[int32](0, 5, backend)
	assert.Equal(t, Shape{5}, a.Shape())
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, a.Data())

	b := Arange[bfloat16.BFloat16](2, 4, backend)
	assert.Equal(t, float32(3), b.At(1).Float32())

	assert.Panics(t, func() { Arange[float32](3, 3, backend) })
}

func TestEye(t *testing.T) {
	e := Eye[float64](3, newMockBackend())
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, e.Data())
}

func TestItem(t *testing.T) {
	backend := newMockBackend()
	x := Full(Shape{1, 1}, int16(7), backend)
	assert.Equal(t, int16(7), x.Item())

	assert.Panics(t, func() { Zeros[int16](Shape{2}, backend).Item() })
}
