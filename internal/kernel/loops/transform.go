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
// Package loops implements classic loop transformation pairs: manual
// unrolling, fusion/fission and interchange. Each pair produces
// identical output; only the traversal shape differs.
package loops

//------------------------------------------------------------------------------
// Loop Unrolling
//------------------------------------------------------------------------------

// FillSequence writes 0..len(dst)-1 into dst one element per iteration.
func FillSequence(dst []int64) {
	for i := range dst {
		dst[i] = int64(i)
	}
}

// FillSequenceUnrolled writes the same sequence with a stride-4 body,
// trading fewer loop tests and jumps for a larger code footprint.
func FillSequenceUnrolled(dst []int64) {
	// Process 4 elements at a time
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] = int64(i)
		dst[i+1] = int64(i + 1)
		dst[i+2] = int64(i + 2)
		dst[i+3] = int64(i + 3)
	}

	// Handle remaining elements
	for ; i < len(dst); i++ {
		dst[i] = int64(i)
	}
}

//------------------------------------------------------------------------------
// Loop Fusion / Fission
//------------------------------------------------------------------------------

// ScaleOffsetFused computes dst[i] = a[i]*scale + offset in one pass.
// dst must be at least as long as a.
func ScaleOffsetFused(dst, a []int64, scale, offset int64) {
	for i, v := range a {
		dst[i] = v*scale + offset
	}
}

// ScaleOffsetFissioned computes the same result split into a scale
// pass and an offset pass, each unrolled 8-wide. Two sweeps over the
// data instead of one; useful when the fused body would exhaust
// registers or when only one half is needed elsewhere.
func ScaleOffsetFissioned(dst, a []int64, scale, offset int64) {
	n := len(a)

	// Scale pass, 8 elements at a time
	i := 0
	for ; i <= n-8; i += 8 {
		dst[i] = a[i] * scale
		dst[i+1] = a[i+1] * scale
		dst[i+2] = a[i+2] * scale
		dst[i+3] = a[i+3] * scale
		dst[i+4] = a[i+4] * scale
		dst[i+5] = a[i+5] * scale
		dst[i+6] = a[i+6] * scale
		dst[i+7] = a[i+7] * scale
	}
	for ; i < n; i++ {
		dst[i] = a[i] * scale
	}

	// Offset pass, 8 elements at a time
	i = 0
	for ; i <= n-8; i += 8 {
		dst[i] += offset
		dst[i+1] += offset
		dst[i+2] += offset
		dst[i+3] += offset
		dst[i+4] += offset
		dst[i+5] += offset
		dst[i+6] += offset
		dst[i+7] += offset
	}
	for ; i < n; i++ {
		dst[i] += offset
	}
}

//------------------------------------------------------------------------------
// Loop Interchange
//------------------------------------------------------------------------------

// MatMulIJK multiplies n×n row-major matrices a and b into dst with
// the textbook i-j-k nest. The inner loop walks b down a column, a
// stride-n access pattern that misses cache on every step for large n.
// dst is overwritten.
func MatMulIJK(dst, a, b []int64, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum int64
			for k := 0; k < n; k++ {
				sum += a[i*n+k] * b[k*n+j]
			}
			dst[i*n+j] = sum
		}
	}
}

// MatMulIKJ is the interchanged i-k-j nest. The inner loop walks both
// dst and b along contiguous rows, so every access is sequential.
// Output is identical to MatMulIJK. dst is overwritten.
func MatMulIKJ(dst, a, b []int64, n int) {
	for i := 0; i < n; i++ {
		row := dst[i*n : i*n+n]
		for j := range row {
			row[j] = 0
		}
		for k := 0; k < n; k++ {
			aik := a[i*n+k]
			for j := 0; j < n; j++ {
				row[j] += aik * b[k*n+j]
			}
		}
	}
}
