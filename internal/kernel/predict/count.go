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
// Package predict implements match-counting kernels in branchy and
// branch-free forms. Counters are explicit values owned by the caller,
// never package state.
package predict

// CountEqualBranchy counts the elements of a equal to v with a
// conditional branch per element. Fast when the outcome is heavily
// skewed one way, slow on a 50% match rate.
func CountEqualBranchy(a []int64, v int64) int64 {
	var count int64
	for _, x := range a {
		if x == v {
			count++
		}
	}
	return count
}

// CountEqualBranchless counts the same matches with straight-line
// arithmetic. x|-x has the sign bit set exactly when x is nonzero, so
// the shifted-and-masked expression is a 0/1 inequality indicator.
func CountEqualBranchless(a []int64, v int64) int64 {
	var count int64
	for _, x := range a {
		d := x ^ v
		count += 1 - ((d|-d)>>63)&1
	}
	return count
}

// MatchMask writes 1 into dst for every element of a equal to v and 0
// otherwise. dst must be at least as long as a. The comparison
// compiles to a flag-setting instruction rather than a jump.
func MatchMask(dst []byte, a []int64, v int64) {
	for i, x := range a {
		var res byte
		if x == v {
			res = 1
		}
		dst[i] = res
	}
}
