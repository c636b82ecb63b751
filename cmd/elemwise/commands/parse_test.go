package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/elemwise/tensor"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		text    string
		n       int
		want    tensor.Shape
		wantErr bool
	}{
		{text: "", n: 4, want: tensor.Shape{4}},
		{text: "scalar", n: 1, want: tensor.Shape{}},
		{text: "2,3", want: tensor.Shape{2, 3}},
		{text: "2x3x1", want: tensor.Shape{2, 3, 1}},
		{text: " 4 , 0 ", want: tensor.Shape{4, 0}},
		{text: "2,a", wantErr: true},
		{text: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := parseShape(tt.text, tt.n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildTensor(t *testing.T) {
	r, err := buildTensor("1,2.5,-3", "", "float64")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3}, r.Shape())
	assert.Equal(t, []float64{1, 2.5, -3}, tensor.ToSlice[float64](r))

	r, err = buildTensor("300,-1", "", "int64")
	require.NoError(t, err)
	assert.Equal(t, []int64{300, -1}, tensor.ToSlice[int64](r))

	r, err = buildTensor("(1+2i),3", "", "complex128")
	require.NoError(t, err)
	assert.Equal(t, []complex128{1 + 2i, 3}, tensor.ToSlice[complex128](r))

	r, err = buildTensor("1.5", "", "float16")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.5"}, formatValues(r))

	_, err = buildTensor("1", "", "float8")
	assert.Error(t, err)

	_, err = buildTensor("1,x", "", "float32")
	assert.Error(t, err)
}

func TestFormatValues(t *testing.T) {
	r, err := buildTensor("true,false", "", "bool")
	require.NoError(t, err)
	assert.Equal(t, []string{"true", "false"}, formatValues(r))

	r, err = buildTensor("0.1", "", "float32")
	require.NoError(t, err)
	assert.Equal(t, []string{"0.1"}, formatValues(r))

	r, err = buildTensor("255", "", "uint8")
	require.NoError(t, err)
	assert.Equal(t, []string{"255"}, formatValues(r))
}
