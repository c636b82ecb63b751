// Package cpu implements the broadcasting elementwise binary kernels on CPU.
//
// A call resolves the broadcast shape, then picks one of four strategies
// (see SelectPath): a scalar fast path, a batched contiguous path, a batched
// broadcast path for a few recognized shape patterns, and a generic strided
// path that casts every element through the promoted compute type.
//
// Calls are synchronous and allocate nothing beyond small per-call stride
// slices. A backend may be shared between goroutines as long as concurrent
// calls do not share an output tensor.
package cpu

// DefaultLaneBytes is the default batch width of the vectorized paths.
const DefaultLaneBytes = 32

// Options configures a CPUBackend.
type Options struct {
	// LaneBytes is the batch width in bytes. Non-positive means DefaultLaneBytes.
	LaneBytes int
}

// CPUBackend implements the elementwise kernels on CPU.
type CPUBackend struct {
	laneBytes int
}

// New creates a new CPU backend with default options.
func New() *CPUBackend {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a CPU backend with the given options.
func NewWithOptions(opts Options) *CPUBackend {
	lb := opts.LaneBytes
	if lb <= 0 {
		lb = DefaultLaneBytes
	}
	return &CPUBackend{
		laneBytes: lb,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// LaneBytes returns the configured batch width in bytes.
func (cpu *CPUBackend) LaneBytes() int {
	return cpu.laneBytes
}
