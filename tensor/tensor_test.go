// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/elemwise/backend/cpu"
	"github.com/born-ml/elemwise/tensor"
)

// TestBackendInterface verifies that cpu.Backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	// Test Shape() method.
	shape := raw.Shape()
	if !shape.Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", shape)
	}

	// Test DType() method.
	dtype := raw.DType()
	if dtype != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", dtype)
	}

	// Test NumElements() method.
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}

	// Test Permute() view.
	tr, err := raw.Permute(1, 0)
	if err != nil {
		t.Fatalf("Permute failed: %v", err)
	}
	if tr.IsContiguous() {
		t.Error("Permute(1, 0) should not be contiguous")
	}
}

// TestTensorCreationFunctions checks the public constructors.
func TestTensorCreationFunctions(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name string
		got  []float32
		want []float32
	}{
		{"Zeros", tensor.Zeros[float32](tensor.Shape{2}, backend).Data(), []float32{0, 0}},
		{"Ones", tensor.Ones[float32](tensor.Shape{2}, backend).Data(), []float32{1, 1}},
		{"Full", tensor.Full[float32](tensor.Shape{2}, 2.5, backend).Data(), []float32{2.5, 2.5}},
		{"Arange", tensor.Arange[float32](3, 5, backend).Data(), []float32{3, 4}},
		{"Eye", tensor.Eye[float32](2, backend).Data(), []float32{1, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != len(tt.want) {
				t.Fatalf("%s length = %d, want %d", tt.name, len(tt.got), len(tt.want))
			}
			for i := range tt.want {
				if tt.got[i] != tt.want[i] {
					t.Errorf("%s[%d] = %v, want %v", tt.name, i, tt.got[i], tt.want[i])
				}
			}
		})
	}
}

// TestParseHelpers checks the public parsing helpers.
func TestParseHelpers(t *testing.T) {
	dt, err := tensor.ParseDataType("bf16")
	if err != nil || dt != tensor.BFloat16 {
		t.Errorf("ParseDataType(bf16) = %v, %v", dt, err)
	}

	s, err := tensor.ParseScalar("-2.5")
	if err != nil || s.Kind() != tensor.ScalarFloat || s.Float() != -2.5 {
		t.Errorf("ParseScalar(-2.5) = %v, %v", s, err)
	}

	if got := tensor.DataTypeOf[complex64](); got != tensor.Complex64 {
		t.Errorf("DataTypeOf[complex64]() = %v", got)
	}
}
