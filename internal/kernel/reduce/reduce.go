/*
Copyright 2025 Hotloop Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
// Package reduce implements conditional reduction kernels over int64
// sequences in both branching and branch-free forms.
package reduce

// This file contains the even-sum reduction in its three shapes:
// a branchy baseline, a branchless rewrite, and an unrolled
// multi-accumulator version that also breaks the dependency chain.
// All three must produce the same accumulator at every prefix of the
// input; the branchless forms only restructure control flow into
// straight-line arithmetic.

const (
	// DefaultThreshold is the threshold Evaluate applies when callers
	// have no reason to pick another one.
	DefaultThreshold = 1000

	// maskBatchSize is the unroll width for the mask kernels.
	maskBatchSize = 8
)

// SumEvenBranchy accumulates the even elements of a with a conditional
// branch per element. Baseline form; the branch is unpredictable on
// random parity input.
func SumEvenBranchy(a []int64) int64 {
	var sum int64
	for _, v := range a {
		if v%2 == 0 {
			sum += v
		}
	}
	return sum
}

// SumEvenBranchless accumulates the even elements of a without a data
// dependent branch. The parity bit v&1 is 0 or 1 for negative values
// too under two's complement, so 1-(v&1) is a 0/1 evenness indicator.
func SumEvenBranchless(a []int64) int64 {
	var sum int64
	for _, v := range a {
		sum += v * (1 - (v & 1))
	}
	return sum
}

// SumEvenUnrolled is the branchless form unrolled 4-wide with four
// independent accumulators to break the accumulator dependency chain.
func SumEvenUnrolled(a []int64) int64 {
	var sum0, sum1, sum2, sum3 int64

	// Process 4 elements at a time with independent accumulators
	i := 0
	for ; i <= len(a)-4; i += 4 {
		sum0 += a[i] * (1 - (a[i] & 1))
		sum1 += a[i+1] * (1 - (a[i+1] & 1))
		sum2 += a[i+2] * (1 - (a[i+2] & 1))
		sum3 += a[i+3] * (1 - (a[i+3] & 1))
	}

	// Handle remaining elements
	var tail int64
	for ; i < len(a); i++ {
		tail += a[i] * (1 - (a[i] & 1))
	}

	return sum0 + sum1 + sum2 + sum3 + tail
}

// EvenMask writes a true into dst for every even element of a.
// dst must be at least as long as a.
func EvenMask(dst []bool, a []int64) {
	// Process 8 elements at a time
	i := 0
	for ; i <= len(a)-maskBatchSize; i += maskBatchSize {
		dst[i] = a[i]&1 == 0
		dst[i+1] = a[i+1]&1 == 0
		dst[i+2] = a[i+2]&1 == 0
		dst[i+3] = a[i+3]&1 == 0
		dst[i+4] = a[i+4]&1 == 0
		dst[i+5] = a[i+5]&1 == 0
		dst[i+6] = a[i+6]&1 == 0
		dst[i+7] = a[i+7]&1 == 0
	}

	// Handle remaining elements
	for ; i < len(a); i++ {
		dst[i] = a[i]&1 == 0
	}
}

// MaskedSum accumulates the elements of a selected by mask.
// mask must be at least as long as a.
func MaskedSum(a []int64, mask []bool) int64 {
	var sum int64
	for i, v := range a {
		if mask[i] {
			sum += v
		}
	}
	return sum
}

// SumEvenMasked is the two-pass route: materialize the parity mask,
// then reduce through it. Same contract as the single-pass kernels.
func SumEvenMasked(a []int64) int64 {
	if len(a) == 0 {
		return 0
	}
	mask := make([]bool, len(a))
	EvenMask(mask, a)
	return MaskedSum(a, mask)
}

// Evaluate reports whether the sum of the even elements of seq strictly
// exceeds threshold. The empty sequence sums to 0 and never exceeds a
// non-negative threshold. The kernel is chosen by the dispatch table in
// dispatch.go.
func Evaluate(seq []int64, threshold int64) bool {
	return sumEvenFuncs[sumEvenID].sumEven(seq) > threshold
}

// EvaluateBranchy is Evaluate pinned to the branchy baseline kernel.
func EvaluateBranchy(seq []int64, threshold int64) bool {
	return SumEvenBranchy(seq) > threshold
}

// EvaluateBranchless is Evaluate pinned to the branchless kernel.
func EvaluateBranchless(seq []int64, threshold int64) bool {
	return SumEvenBranchless(seq) > threshold
}
