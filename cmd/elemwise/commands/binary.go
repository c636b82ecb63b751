package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/born-ml/elemwise/backend/cpu"
	"github.com/born-ml/elemwise/internal/logging"
	"github.com/born-ml/elemwise/tensor"
)

// operandFlags describes one tensor operand on the command line.
type operandFlags struct {
	values string
	shape  string
	dtype  string
}

// callFlags holds the operands and output settings of one kernel call.
type callFlags struct {
	a, b        operandFlags
	scalar      string
	outDType    string
	outCapacity int
}

func (f *callFlags) register(cmd *cobra.Command, withScalar bool) {
	flags := cmd.Flags()
	for _, o := range []struct {
		name string
		op   *operandFlags
	}{{"a", &f.a}, {"b", &f.b}} {
		flags.StringVar(&o.op.values, o.name, "", "comma separated values of operand "+o.name)
		flags.StringVar(&o.op.shape, o.name+"-shape", "", `shape of operand `+o.name+` ("2,3"; empty means 1D, "scalar" means 0-D)`)
		flags.StringVar(&o.op.dtype, o.name+"-dtype", "float32", "dtype of operand "+o.name)
	}
	if withScalar {
		flags.StringVar(&f.scalar, "scalar", "", "scalar right operand used instead of --b")
	}
	flags.StringVar(&f.outDType, "out-dtype", "", "output dtype (default is the promoted dtype)")
	flags.IntVar(&f.outCapacity, "out-capacity", 0, "output capacity in elements (default is the result size)")
	_ = cmd.MarkFlagRequired("a")
}

// operands holds the parsed inputs of a call. b is nil for scalar calls.
type operands struct {
	a, b   *tensor.RawTensor
	scalar tensor.Scalar
	out    *tensor.RawTensor
}

func (f *callFlags) build() (*operands, error) {
	ops := &operands{}
	var err error

	ops.a, err = buildTensor(f.a.values, f.a.shape, f.a.dtype)
	if err != nil {
		return nil, errors.Wrap(err, "operand a")
	}

	var outType tensor.DataType
	var shape tensor.Shape
	if f.scalar != "" {
		if f.b.values != "" {
			return nil, errors.New("--scalar and --b are mutually exclusive")
		}
		if ops.scalar, err = tensor.ParseScalar(f.scalar); err != nil {
			return nil, err
		}
		if outType, err = cpu.PromoteTypeWithScalar(ops.a.DType(), ops.scalar); err != nil {
			return nil, err
		}
		shape = ops.a.Shape()
	} else {
		if f.b.values == "" {
			return nil, errors.New("one of --b or --scalar is required")
		}
		if ops.b, err = buildTensor(f.b.values, f.b.shape, f.b.dtype); err != nil {
			return nil, errors.Wrap(err, "operand b")
		}
		if outType, err = cpu.PromoteTypes(ops.a.DType(), ops.b.DType()); err != nil {
			return nil, err
		}
		if shape, _, err = tensor.BroadcastShapes(ops.a.Shape(), ops.b.Shape()); err != nil {
			return nil, err
		}
	}

	if f.outDType != "" {
		if outType, err = tensor.ParseDataType(f.outDType); err != nil {
			return nil, err
		}
	}

	capacity := f.outCapacity
	if capacity == 0 {
		capacity = shape.NumElements()
	}
	if capacity < shape.NumElements() {
		return nil, errors.Errorf("--out-capacity %d cannot hold the %v result", capacity, shape)
	}
	if ops.out, err = tensor.NewRawWithCapacity(tensor.Shape{0}, outType, capacity); err != nil {
		return nil, err
	}
	return ops, nil
}

func newBinaryCmd(op string, opts *globalOptions) *cobra.Command {
	flags := &callFlags{}

	cmd := &cobra.Command{
		Use:   op,
		Short: fmt.Sprintf("Compute out = a %s b with broadcasting", opSymbol(op)),
		Example: fmt.Sprintf(`  elemwise %[1]s --a 1,2,3,4,5,6 --a-shape 2,3 --b 2
  elemwise %[1]s --a 1,2 --a-dtype int32 --scalar 1.5 --out-dtype float64`, op),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops, err := flags.build()
			if err != nil {
				return err
			}
			out, err := runBinary(opts.backend(), op, ops)
			if err != nil {
				return err
			}
			printTensor(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flags.register(cmd, true)
	return cmd
}

func runBinary(b *cpu.Backend, op string, ops *operands) (*tensor.RawTensor, error) {
	log := logging.Get().WithFields(logrus.Fields{"op": op, "a": ops.a.Shape()})

	if ops.b == nil {
		log.WithField("scalar", ops.scalar.String()).Debug("running scalar kernel")
		switch op {
		case "mul":
			return b.MulScalar(ops.a, ops.scalar, ops.out)
		case "add":
			return b.AddScalar(ops.a, ops.scalar, ops.out)
		default:
			return b.SubScalar(ops.a, ops.scalar, ops.out)
		}
	}

	log.WithField("b", ops.b.Shape()).Debug("running binary kernel")
	switch op {
	case "mul":
		return b.Mul(ops.a, ops.b, ops.out)
	case "add":
		return b.Add(ops.a, ops.b, ops.out)
	default:
		return b.Sub(ops.a, ops.b, ops.out)
	}
}

func opSymbol(op string) string {
	switch op {
	case "mul":
		return "*"
	case "add":
		return "+"
	default:
		return "-"
	}
}

func printTensor(w io.Writer, r *tensor.RawTensor) {
	fmt.Fprintf(w, "shape: %v\n", r.Shape())
	fmt.Fprintf(w, "dtype: %s\n", r.DType())
	fmt.Fprintf(w, "values: [%s]\n", strings.Join(formatValues(r), " "))
}
