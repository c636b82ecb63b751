// Package tensor provides the core tensor types used by the elemwise kernels.
package tensor

import (
	"strings"

	"github.com/gomlx/gomlx/pkg/core/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// DType is a constraint for element types that can back a RawTensor.
// It lists exact types: float16.Float16 and bfloat16.BFloat16 share uint16 as
// underlying type and must stay distinguishable from it.
type DType interface {
	bool | uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float16.Float16 | bfloat16.BFloat16 | float32 | float64 |
		complex64 | complex128
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Bool DataType = iota
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Float16
	BFloat16
	Float32
	Float64
	Complex64
	Complex128
)

// ErrUnknownDataType is returned by ParseDataType for unrecognized names.
var ErrUnknownDataType = errors.New("unknown data type")

var dataTypeNames = [...]string{
	Bool:       "bool",
	Uint8:      "uint8",
	Uint16:     "uint16",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Float16:    "float16",
	BFloat16:   "bfloat16",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
}

// Valid reports whether dt is one of the enumerated data types.
func (dt DataType) Valid() bool {
	return dt >= Bool && dt <= Complex128
}

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Uint8, Int8:
		return 1
	case Uint16, Int16, Float16, BFloat16:
		return 2
	case Uint32, Int32, Float32:
		return 4
	case Uint64, Int64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	if !dt.Valid() {
		return "unknown"
	}
	return dataTypeNames[dt]
}

// IsComplex reports whether dt is a complex type.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// IsFloating reports whether dt is a real floating point type, reduced precision included.
func (dt DataType) IsFloating() bool {
	switch dt {
	case Float16, BFloat16, Float32, Float64:
		return true
	}
	return false
}

// IsReducedPrecision reports whether dt is one of the 16-bit floating point types.
func (dt DataType) IsReducedPrecision() bool {
	return dt == Float16 || dt == BFloat16
}

// IsIntegral reports whether dt is an integer type. Bool is not integral.
func (dt DataType) IsIntegral() bool {
	return dt >= Uint8 && dt <= Int64
}

// IsUnsigned reports whether dt is an unsigned integer type.
func (dt DataType) IsUnsigned() bool {
	return dt >= Uint8 && dt <= Uint64
}

// ParseDataType resolves a data type from its String() name.
// A few common aliases ("half", "bf16", "float", "double", "int", "long") are accepted.
func ParseDataType(name string) (DataType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "half", "f16":
		return Float16, nil
	case "bf16":
		return BFloat16, nil
	case "float", "f32":
		return Float32, nil
	case "double", "f64":
		return Float64, nil
	case "int", "i32":
		return Int32, nil
	case "long", "i64":
		return Int64, nil
	case "byte", "u8":
		return Uint8, nil
	}
	for dt, s := range dataTypeNames {
		if s == n {
			return DataType(dt), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownDataType, "%q", name)
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case bool:
		return Bool
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float16.Float16:
		return Float16
	case bfloat16.BFloat16:
		return BFloat16
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic("unsupported type")
	}
}

// DataTypeOf returns the DataType matching the Go type T.
func DataTypeOf[T DType]() DataType {
	var zero T
	return inferDataType(zero)
}
