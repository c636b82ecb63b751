package cpu

import (
	"testing"

	"github.com/born-ml/elemwise/internal/tensor"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return New()
}

// Helper to check float32 slices are equal within epsilon.
func float32SliceEqual(a, b []float32) bool {
	const epsilon = 1e-6
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

// mustFromSlice builds a contiguous tensor or fails the test.
func mustFromSlice[T tensor.DType](t *testing.T, shape tensor.Shape, data []T) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.FromSlice(shape, data)
	if err != nil {
		t.Fatalf("FromSlice(%v): %v", shape, err)
	}
	return r
}

// newOut returns an empty output tensor able to hold capacity elements.
func newOut(t *testing.T, dtype tensor.DataType, capacity int) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRawWithCapacity(tensor.Shape{0}, dtype, capacity)
	if err != nil {
		t.Fatalf("NewRawWithCapacity: %v", err)
	}
	return r
}

// TestCPUBackend_New tests backend creation.
func TestCPUBackend_New(t *testing.T) {
	backend := New()
	if backend == nil {
		t.Fatal("New() returned nil")
	}
	if backend.Name() != "CPU" {
		t.Errorf("Expected name 'CPU', got '%s'", backend.Name())
	}
	if backend.LaneBytes() != DefaultLaneBytes {
		t.Errorf("Expected %d lane bytes, got %d", DefaultLaneBytes, backend.LaneBytes())
	}
	if got := NewWithOptions(Options{LaneBytes: 64}).LaneBytes(); got != 64 {
		t.Errorf("Expected 64 lane bytes, got %d", got)
	}
}

// TestCPUBackend_Add tests element-wise addition.
func TestCPUBackend_Add(t *testing.T) {
	backend := newTestBackend()

	// Test same shape addition
	t.Run("SameShape", func(t *testing.T) {
		a := mustFromSlice(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
		b := mustFromSlice(t, tensor.Shape{2, 3}, []float32{10, 11, 12, 13, 14, 15})
		out := newOut(t, tensor.Float32, 6)
		ctx := NewContext()

		result := backend.Add(ctx, a, b, out)
		if ctx.Err() != nil {
			t.Fatalf("Add failed: %v", ctx.Err())
		}

		expected := []float32{11, 13, 15, 17, 19, 21}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Add result = %v, want %v", result.AsFloat32(), expected)
		}
	})

	// Test broadcasting
	t.Run("Broadcasting", func(t *testing.T) {
		a := mustFromSlice(t, tensor.Shape{3, 1}, []float32{1, 2, 3})
		b := mustFromSlice(t, tensor.Shape{1, 2}, []float32{10, 20})
		out := newOut(t, tensor.Float32, 6)
		ctx := NewContext()

		result := backend.Add(ctx, a, b, out)
		if ctx.Err() != nil {
			t.Fatalf("Add failed: %v", ctx.Err())
		}

		if !result.Shape().Equal(tensor.Shape{3, 2}) {
			t.Errorf("Add shape = %v, want [3 2]", result.Shape())
		}
		expected := []float32{11, 21, 12, 22, 13, 23}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("Add result = %v, want %v", result.AsFloat32(), expected)
		}
	})
}

// TestCPUBackend_Sub tests element-wise subtraction.
func TestCPUBackend_Sub(t *testing.T) {
	backend := newTestBackend()

	a := mustFromSlice(t, tensor.Shape{4}, []int32{10, 20, 30, 40})
	b := mustFromSlice(t, tensor.Shape{4}, []int32{1, 2, 3, 4})
	out := newOut(t, tensor.Int32, 4)
	ctx := NewContext()

	result := backend.Sub(ctx, a, b, out)
	if ctx.Err() != nil {
		t.Fatalf("Sub failed: %v", ctx.Err())
	}

	expected := []int32{9, 18, 27, 36}
	got := result.AsInt32()
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Sub[%d] = %d, want %d", i, got[i], expected[i])
		}
	}
}

// TestCPUBackend_Mul tests element-wise multiplication.
func TestCPUBackend_Mul(t *testing.T) {
	backend := newTestBackend()

	a := mustFromSlice(t, tensor.Shape{3}, []float64{1.5, 2, -3})
	b := mustFromSlice(t, tensor.Shape{3}, []float64{2, 0.5, 4})
	out := newOut(t, tensor.Float64, 3)
	ctx := NewContext()

	result := backend.Mul(ctx, a, b, out)
	if ctx.Err() != nil {
		t.Fatalf("Mul failed: %v", ctx.Err())
	}

	expected := []float64{3, 1, -12}
	got := result.AsFloat64()
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Mul[%d] = %v, want %v", i, got[i], expected[i])
		}
	}
}
