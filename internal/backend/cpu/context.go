package cpu

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/elemwise/internal/logging"
)

// ErrInvalidArgument classifies user-facing failures: incompatible shapes,
// illegal dtype combinations, outputs the compute type cannot be cast to.
var ErrInvalidArgument = errors.New("invalid argument")

// Context carries the failure state of kernel calls.
// The first reported failure wins; later ones are dropped.
type Context struct {
	err error
}

// NewContext returns an empty kernel context.
func NewContext() *Context {
	return &Context{}
}

// Fail records err unless a failure was already recorded.
func (c *Context) Fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Err returns the first recorded failure, or nil.
func (c *Context) Err() error {
	return c.err
}

// Reset clears the recorded failure so the context can be reused.
func (c *Context) Reset() {
	c.err = nil
}

// check records an invalid-argument failure when cond is false and reports cond.
func (c *Context) check(cond bool, format string, args ...any) bool {
	if !cond {
		c.Fail(invalidArgument(format, args...))
	}
	return cond
}

func invalidArgument(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// bug reports a broken internal invariant: the path selection and promotion
// layers disagree with the apply layer. It never returns.
func bug(format string, args ...any) {
	msg := "BUG: " + fmt.Sprintf(format, args...)
	logging.Get().Error(msg)
	panic(msg)
}
