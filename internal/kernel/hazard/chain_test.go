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
package hazard

import (
	"errors"
	"math/rand"
	"testing"
)

func cloneInt64(a []int64) []int64 {
	out := make([]int64, len(a))
	copy(out, a)
	return out
}

// TestChainFiveElements runs the reference 5-element vector through
// both forms and checks they produce identical arrays and tail value.
func TestChainFiveElements(t *testing.T) {
	a1 := []int64{0, 0, 0, 0, 0}
	b1 := []int64{1, 1, 1, 1, 1}
	c1 := []int64{1, 1, 1, 1, 1}

	a2 := cloneInt64(a1)
	b2 := cloneInt64(b1)
	c2 := cloneInt64(c1)

	tail1, err := Chain(a1, b1, c1)
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}
	tail2, err := ChainHoisted(a2, b2, c2)
	if err != nil {
		t.Fatalf("ChainHoisted: %v", err)
	}

	if tail1 != tail2 {
		t.Errorf("tail: naive = %d, hoisted = %d", tail1, tail2)
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Errorf("a[%d]: naive = %d, hoisted = %d", i, a1[i], a2[i])
		}
		if b1[i] != b2[i] {
			t.Errorf("b[%d]: naive = %d, hoisted = %d", i, b1[i], b2[i])
		}
	}
}

// TestChainEquivalence checks random inputs across lengths, including
// the degenerate 0, 1 and 2 element cases.
func TestChainEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	sizes := []int{0, 1, 2, 3, 5, 10, 100, 1000}
	for _, size := range sizes {
		a1 := make([]int64, size)
		b1 := make([]int64, size)
		c1 := make([]int64, size)
		for i := 0; i < size; i++ {
			a1[i] = rng.Int63n(200) - 100
			b1[i] = rng.Int63n(200) - 100
			c1[i] = rng.Int63n(200) - 100
		}

		a2 := cloneInt64(a1)
		b2 := cloneInt64(b1)
		c2 := cloneInt64(c1)

		tail1, err := Chain(a1, b1, c1)
		if err != nil {
			t.Fatalf("size %d: Chain: %v", size, err)
		}
		tail2, err := ChainHoisted(a2, b2, c2)
		if err != nil {
			t.Fatalf("size %d: ChainHoisted: %v", size, err)
		}

		if tail1 != tail2 {
			t.Errorf("size %d: tail naive = %d, hoisted = %d", size, tail1, tail2)
		}
		for i := 0; i < size; i++ {
			if a1[i] != a2[i] {
				t.Fatalf("size %d: a[%d] naive = %d, hoisted = %d", size, i, a1[i], a2[i])
			}
			if b1[i] != b2[i] {
				t.Fatalf("size %d: b[%d] naive = %d, hoisted = %d", size, i, b1[i], b2[i])
			}
		}
	}
}

// TestChainTailValue verifies the returned value is the final b tail.
func TestChainTailValue(t *testing.T) {
	a := []int64{0, 0, 0}
	b := []int64{1, 2, 3}
	c := []int64{10, 20, 30}

	tail, err := Apply(a, b, c)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if tail != b[len(b)-1] {
		t.Errorf("tail = %d, b[L-1] = %d", tail, b[len(b)-1])
	}
	// b[2] = 3 + c[1] = 23
	if tail != 23 {
		t.Errorf("tail = %d, want 23", tail)
	}
}

// TestChainLengthMismatch checks the precondition is enforced instead
// of truncating or reading out of bounds.
func TestChainLengthMismatch(t *testing.T) {
	a := make([]int64, 4)
	b := make([]int64, 5)
	c := make([]int64, 5)

	if _, err := Apply(a, b, c); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Apply with short a: err = %v, want ErrLengthMismatch", err)
	}
	if _, err := Chain(b, b, a); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Chain with short c: err = %v, want ErrLengthMismatch", err)
	}

	// Inputs must be untouched on failure
	for i, v := range b {
		if v != 0 {
			t.Errorf("b[%d] modified on precondition failure: %d", i, v)
		}
	}
}

// TestChainEmpty checks the zero-length case returns 0 with no error.
func TestChainEmpty(t *testing.T) {
	tail, err := Apply(nil, nil, nil)
	if err != nil {
		t.Fatalf("Apply(nil): %v", err)
	}
	if tail != 0 {
		t.Errorf("empty tail = %d, want 0", tail)
	}
}

// BenchmarkChain compares the carried-dependency loop against the
// dependency-broken one.
func BenchmarkChain(b *testing.B) {
	const size = 1000

	mkInput := func() ([]int64, []int64, []int64) {
		x := make([]int64, size)
		y := make([]int64, size)
		z := make([]int64, size)
		for i := 0; i < size; i++ {
			x[i] = int64(i)
			y[i] = int64(i * 2)
			z[i] = int64(i * 3)
		}
		return x, y, z
	}

	b.Run("Naive", func(b *testing.B) {
		x, y, z := mkInput()
		for i := 0; i < b.N; i++ {
			Chain(x, y, z)
		}
	})

	b.Run("Hoisted", func(b *testing.B) {
		x, y, z := mkInput()
		for i := 0; i < b.N; i++ {
			ChainHoisted(x, y, z)
		}
	})
}
