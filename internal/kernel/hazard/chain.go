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
// Package hazard implements a loop-carried dependency update in its
// naive and dependency-broken forms.
package hazard

import "errors"

// ErrLengthMismatch is returned when the three sequences passed to a
// chain update do not have equal length.
var ErrLengthMismatch = errors.New("sequences must have equal length")

// The update rule per index i in 0..L-2 is
//
//	a[i] += b[i]
//	b[i+1] += c[i]
//
// In this order each iteration writes b[i+1] which the next iteration
// reads, a true carried dependency that blocks vectorization. Hoisting
// the first a-update out of the loop reorders the body so each b[i] is
// finalized before a[i] reads it, with no value flowing between
// iterations. Final contents of a and b must be bit-identical between
// the two forms.

// Chain runs the naive single-pass update with the carried dependency
// and returns the final value of b[L-1] (0 when L is 0).
func Chain(a, b, c []int64) (int64, error) {
	if len(a) != len(b) || len(b) != len(c) {
		return 0, ErrLengthMismatch
	}
	n := len(b)
	if n == 0 {
		return 0, nil
	}

	for i := 0; i <= n-2; i++ {
		a[i] += b[i]
		b[i+1] += c[i]
	}
	return b[n-1], nil
}

// ChainHoisted runs the same update with the dependency chain broken:
// the first a-update is hoisted above the loop and the last b-update
// sunk below it, leaving a straight-line body the compiler can
// vectorize. Results are bit-identical to Chain.
func ChainHoisted(a, b, c []int64) (int64, error) {
	if len(a) != len(b) || len(b) != len(c) {
		return 0, ErrLengthMismatch
	}
	n := len(b)
	if n == 0 {
		return 0, nil
	}
	if n == 1 {
		// No index pair exists; the naive loop body never runs.
		return b[0], nil
	}

	a[0] += b[0]
	for i := 1; i <= n-2; i++ {
		b[i] += c[i-1]
		a[i] += b[i]
	}
	b[n-1] += c[n-2]
	return b[n-1], nil
}

// Apply runs the chain update over a, b and c in place and returns the
// final value of b[L-1]. All three sequences must have equal length;
// otherwise ErrLengthMismatch is returned and nothing is modified.
// The dependency-broken form is used.
func Apply(a, b, c []int64) (int64, error) {
	return ChainHoisted(a, b, c)
}
