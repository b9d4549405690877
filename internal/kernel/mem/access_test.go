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
package mem

import (
	"math/rand"
	"testing"
)

func makeMatrix(rows, cols int, rng *rand.Rand) [][]int64 {
	m := make([][]int64, rows)
	for i := range m {
		m[i] = make([]int64, cols)
		for j := range m[i] {
			m[i][j] = rng.Int63n(100)
		}
	}
	return m
}

func cloneMatrix(m [][]int64) [][]int64 {
	out := make([][]int64, len(m))
	for i := range m {
		out[i] = make([]int64, len(m[i]))
		copy(out[i], m[i])
	}
	return out
}

// TestIncrementMatrixEquivalence checks row-major and column-major
// sweeps leave identical contents.
func TestIncrementMatrixEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	m1 := makeMatrix(33, 17, rng)
	m2 := cloneMatrix(m1)

	IncrementMatrix(m1)
	IncrementMatrixColumnMajor(m2)

	for i := range m1 {
		for j := range m1[i] {
			if m1[i][j] != m2[i][j] {
				t.Errorf("[%d][%d]: row-major = %d, column-major = %d", i, j, m1[i][j], m2[i][j])
			}
		}
	}
}

// TestIncrementMatrixRagged checks the column-major sweep handles rows
// of unequal length.
func TestIncrementMatrixRagged(t *testing.T) {
	m1 := [][]int64{{1, 2, 3}, {4}, {5, 6}}
	m2 := cloneMatrix(m1)

	IncrementMatrix(m1)
	IncrementMatrixColumnMajor(m2)

	for i := range m1 {
		for j := range m1[i] {
			if m1[i][j] != m2[i][j] {
				t.Errorf("[%d][%d]: row-major = %d, column-major = %d", i, j, m1[i][j], m2[i][j])
			}
		}
	}
}

// TestSumBlocked checks the blocked reduction against a plain loop,
// across sizes around the block boundary.
func TestSumBlocked(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for _, size := range []int{0, 1, 63, 64, 65, 128, 1000} {
		a := make([]int64, size)
		var want int64
		for i := range a {
			a[i] = rng.Int63n(200) - 100
			want += a[i]
		}

		if got := SumBlocked(a); got != want {
			t.Errorf("size %d: SumBlocked = %d, want %d", size, got, want)
		}
	}
}

// TestAddOneStrided checks stride 1 matches a dense pass and larger
// strides only touch their positions.
func TestAddOneStrided(t *testing.T) {
	a := make([]float64, 10)
	AddOneStrided(a, 1)
	for i, v := range a {
		if v != 1.0 {
			t.Errorf("stride 1: index %d = %f, want 1", i, v)
		}
	}

	b := make([]float64, 10)
	AddOneStrided(b, 4)
	for i, v := range b {
		want := 0.0
		if i%4 == 0 {
			want = 1.0
		}
		if v != want {
			t.Errorf("stride 4: index %d = %f, want %f", i, v, want)
		}
	}
}

// BenchmarkIncrementMatrix compares the two traversal orders on a
// matrix large enough that columns thrash the cache.
func BenchmarkIncrementMatrix(b *testing.B) {
	const rows, cols = 512, 512

	rng := rand.New(rand.NewSource(1))
	m := makeMatrix(rows, cols, rng)

	b.Run("RowMajor", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			IncrementMatrix(m)
		}
	})

	b.Run("ColumnMajor", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			IncrementMatrixColumnMajor(m)
		}
	})
}
