// Package hotloop is a library of CPU-level optimization micro-kernels:
// branch-free conditional reduction, loop-carried dependency breaking,
// loop transformation and traversal-order pairs. Every optimized kernel
// ships next to its naive twin and the two are required to agree on
// every input; the performance story lives in the benchmark suite, the
// semantic story in this package's contracts.
package hotloop

import (
	"github.com/hotloop/hotloop/internal/common"
	"github.com/hotloop/hotloop/internal/kernel/hazard"
	"github.com/hotloop/hotloop/internal/kernel/reduce"
)

// DefaultThreshold is the threshold Evaluate applies when callers have
// no reason to pick another one.
const DefaultThreshold = reduce.DefaultThreshold

// ErrLengthMismatch is returned by Apply when the three sequences do
// not have equal length.
var ErrLengthMismatch = hazard.ErrLengthMismatch

// Evaluate reports whether the sum of the even elements of seq
// strictly exceeds threshold. The empty sequence evaluates to false
// for any non-negative threshold. The best available kernel is chosen
// at startup; all kernels are exact equivalents.
func Evaluate(seq []int64, threshold int64) bool {
	return reduce.Evaluate(seq, threshold)
}

// EvaluateBranchy is Evaluate pinned to the branching kernel.
func EvaluateBranchy(seq []int64, threshold int64) bool {
	return reduce.EvaluateBranchy(seq, threshold)
}

// EvaluateBranchless is Evaluate pinned to the branch-free kernel.
func EvaluateBranchless(seq []int64, threshold int64) bool {
	return reduce.EvaluateBranchless(seq, threshold)
}

// Apply runs the chain update over a, b and c in place and returns the
// final value of b[len(b)-1]. All three sequences must have equal
// length; otherwise ErrLengthMismatch is returned and nothing is
// modified. The sequences are mutated in place, so concurrent calls
// over aliased slices are the caller's responsibility to serialize.
func Apply(a, b, c []int64) (int64, error) {
	return hazard.Apply(a, b, c)
}

// Kernel returns the name of the reduction kernel Evaluate dispatches
// to on this machine.
func Kernel() string {
	return reduce.Kernel()
}

// Version returns the library version.
func Version() string {
	return common.Version
}
