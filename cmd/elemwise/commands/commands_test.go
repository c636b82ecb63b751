package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh root command and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBinaryCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "mul by singleton",
			args: []string{"mul", "--a", "1,2,3,4,5,6", "--a-shape", "2,3", "--b", "2"},
			want: "shape: [2 3]\ndtype: float32\nvalues: [2 4 6 8 10 12]\n",
		},
		{
			name: "add outer broadcast",
			args: []string{"add", "--a", "1,2", "--a-shape", "2x1", "--b", "10,20,30", "--b-shape", "1x3"},
			want: "shape: [2 3]\ndtype: float32\nvalues: [11 21 31 12 22 32]\n",
		},
		{
			name: "sub int32",
			args: []string{"sub", "--a", "5,7", "--a-dtype", "int32", "--b", "1,2", "--b-dtype", "int32"},
			want: "shape: [2]\ndtype: int32\nvalues: [4 5]\n",
		},
		{
			name: "mixed dtypes promote",
			args: []string{"add", "--a", "1,2", "--a-dtype", "int32", "--b", "0.5,0.25", "--b-dtype", "float64"},
			want: "shape: [2]\ndtype: float64\nvalues: [1.5 2.25]\n",
		},
		{
			name: "scalar into wider output",
			args: []string{"add", "--a", "1,2", "--a-dtype", "int32", "--scalar", "1.5", "--out-dtype", "float64"},
			want: "shape: [2]\ndtype: float64\nvalues: [2.5 3.5]\n",
		},
		{
			name: "bool mul is and",
			args: []string{"mul", "--a", "true,true,false", "--a-dtype", "bool", "--b", "true,false,false", "--b-dtype", "bool"},
			want: "shape: [3]\ndtype: bool\nvalues: [true false false]\n",
		},
		{
			name: "zero-d operands",
			args: []string{"mul", "--a", "3", "--a-shape", "scalar", "--b", "4", "--b-shape", "scalar"},
			want: "shape: []\ndtype: float32\nvalues: [12]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBinaryCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "bool subtraction",
			args:    []string{"sub", "--a", "true", "--a-dtype", "bool", "--b", "true,false", "--b-dtype", "bool"},
			wantErr: "subtraction of bool",
		},
		{
			name:    "incompatible shapes",
			args:    []string{"add", "--a", "1,2,3", "--b", "1,2"},
			wantErr: "not compatible for broadcasting",
		},
		{
			name:    "output too small",
			args:    []string{"mul", "--a", "1,2,3", "--b", "2", "--out-capacity", "2"},
			wantErr: "--out-capacity",
		},
		{
			name:    "scalar and b together",
			args:    []string{"mul", "--a", "1", "--b", "2", "--scalar", "3"},
			wantErr: "mutually exclusive",
		},
		{
			name:    "missing right operand",
			args:    []string{"mul", "--a", "1"},
			wantErr: "--scalar is required",
		},
		{
			name:    "complex literal in real tensor",
			args:    []string{"mul", "--a", "(1+2i)", "--b", "1"},
			wantErr: "complex literal",
		},
		{
			name:    "narrowing output",
			args:    []string{"mul", "--a", "1.5", "--b", "2", "--out-dtype", "int32"},
			wantErr: "cannot cast",
		},
		{
			name:    "shape value mismatch",
			args:    []string{"mul", "--a", "1,2,3", "--a-shape", "2,2", "--b", "1"},
			wantErr: "needs 4 values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPathCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "singleton",
			args: []string{"--a", "1,2,3", "--b", "2"},
			want: "scalar",
		},
		{
			name: "same shape",
			args: []string{"--a", "1,2,3", "--b", "4,5,6"},
			want: "vectorized-1d",
		},
		{
			name: "row broadcast",
			args: []string{"--a", "1,2,3,4,5,6", "--a-shape", "2,3", "--b", "1,2,3"},
			want: "vectorized-broadcast(2d-by-1d dim=0)",
		},
		{
			name: "mixed dtypes",
			args: []string{"--a", "1,2,3", "--a-dtype", "int32", "--b", "4,5,6"},
			want: "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, append([]string{"path"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", got)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, got, "elemwise "+version)
}

func TestLogLevelFlag(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "mul", "--a", "1", "--b", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}
