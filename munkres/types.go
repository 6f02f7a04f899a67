// Package munkres defines options and sentinel errors for the
// Kuhn–Munkres solver.
package munkres

import "errors"

// DefaultEpsilon is the absolute tolerance used by the equality-subgraph
// test (label(x) + label(y) == value(x,y)). Label arithmetic accumulates
// float64 rounding, so near-equal sums must be treated as equal; 1e-4 is
// a safe default for cost scales around 1..1e6. Callers with much larger
// or much smaller value scales should tune Options.Epsilon accordingly.
const DefaultEpsilon = 1e-4

// Sentinel errors returned by the solver.
var (
	// ErrNilMatrix indicates a nil value matrix was passed to Solve.
	ErrNilMatrix = errors.New("munkres: value matrix is nil")

	// ErrShape indicates Rows() > Cols(); the algorithm certifies optimality
	// only when the row side is the smaller one.
	ErrShape = errors.New("munkres: rows must not exceed cols")

	// ErrBadEpsilon indicates Options.Epsilon < 0, which would invert the
	// equality test and break the labeling invariant.
	ErrBadEpsilon = errors.New("munkres: epsilon must be non-negative")
)

// Options configures the solver.
//
// Fields:
//   - Epsilon — absolute tolerance for the equality-subgraph membership test.
//     Zero means exact comparison (only safe for integral value tables).
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the recommended solver configuration.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}
