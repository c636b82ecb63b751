package tensor

import (
	"github.com/gomlx/gomlx/pkg/core/dtypes"
	"github.com/pkg/errors"
)

var toGoMLX = [...]dtypes.DType{
	Bool:       dtypes.Bool,
	Uint8:      dtypes.Uint8,
	Uint16:     dtypes.Uint16,
	Uint32:     dtypes.Uint32,
	Uint64:     dtypes.Uint64,
	Int8:       dtypes.Int8,
	Int16:      dtypes.Int16,
	Int32:      dtypes.Int32,
	Int64:      dtypes.Int64,
	Float16:    dtypes.Float16,
	BFloat16:   dtypes.BFloat16,
	Float32:    dtypes.Float32,
	Float64:    dtypes.Float64,
	Complex64:  dtypes.Complex64,
	Complex128: dtypes.Complex128,
}

// ToGoMLX returns the equivalent GoMLX dtype, or dtypes.InvalidDType.
func (dt DataType) ToGoMLX() dtypes.DType {
	if !dt.Valid() {
		return dtypes.InvalidDType
	}
	return toGoMLX[dt]
}

// FromGoMLX converts a GoMLX dtype into a DataType.
func FromGoMLX(d dtypes.DType) (DataType, error) {
	for dt, g := range toGoMLX {
		if g == d {
			return DataType(dt), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownDataType, "gomlx dtype %s", d)
}
