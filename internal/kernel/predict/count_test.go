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
package predict

import (
	"math/rand"
	"testing"
)

// TestCountEqualEquivalence checks the branchy and branchless counters
// agree on random input with ~50% match rate.
func TestCountEqualEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, size := range []int{0, 1, 10, 1000} {
		a := make([]int64, size)
		for i := range a {
			a[i] = 42 + rng.Int63n(2) // 42 or 43
		}

		want := CountEqualBranchy(a, 42)
		if got := CountEqualBranchless(a, 42); got != want {
			t.Errorf("size %d: branchless = %d, branchy = %d", size, got, want)
		}
	}
}

// TestCountEqualFixed pins down edge values including negatives and
// the extremes of int64.
func TestCountEqualFixed(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		v    int64
		want int64
	}{
		{"empty", nil, 0, 0},
		{"no match", []int64{1, 2, 3}, 4, 0},
		{"all match", []int64{7, 7, 7}, 7, 3},
		{"negative", []int64{-5, 5, -5}, -5, 2},
		{"zero", []int64{0, 0, 1}, 0, 2},
		{"min int64", []int64{-9223372036854775808, 0}, -9223372036854775808, 1},
		{"max int64", []int64{9223372036854775807, -1}, 9223372036854775807, 1},
	}

	for _, tt := range tests {
		if got := CountEqualBranchy(tt.in, tt.v); got != tt.want {
			t.Errorf("%s: branchy = %d, want %d", tt.name, got, tt.want)
		}
		if got := CountEqualBranchless(tt.in, tt.v); got != tt.want {
			t.Errorf("%s: branchless = %d, want %d", tt.name, got, tt.want)
		}
	}
}

// TestMatchMask checks the mask kernel against the counters.
func TestMatchMask(t *testing.T) {
	a := []int64{1, 42, 3, 42, 42}
	dst := make([]byte, len(a))

	MatchMask(dst, a, 42)

	want := []byte{0, 1, 0, 1, 1}
	var total int64
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("index %d: mask = %d, want %d", i, dst[i], want[i])
		}
		total += int64(dst[i])
	}

	if count := CountEqualBranchy(a, 42); total != count {
		t.Errorf("mask sum = %d, count = %d", total, count)
	}
}

// BenchmarkCountEqual compares the counters on randomized input so the
// branch predictor cannot memorize the outcome.
func BenchmarkCountEqual(b *testing.B) {
	const size = 4096

	// 50% match rate
	rng := rand.New(rand.NewSource(1))
	a := make([]int64, size)
	for i := range a {
		if rng.Float32() < 0.5 {
			a[i] = 42
		} else {
			a[i] = 43
		}
	}

	b.Run("Branchy", func(b *testing.B) {
		var sink int64
		for i := 0; i < b.N; i++ {
			sink += CountEqualBranchy(a, 42)
		}
		_ = sink
	})

	b.Run("Branchless", func(b *testing.B) {
		var sink int64
		for i := 0; i < b.N; i++ {
			sink += CountEqualBranchless(a, 42)
		}
		_ = sink
	})
}
