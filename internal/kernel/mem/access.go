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
// Package mem implements cache-locality traversal kernels: row-major
// versus column-major sweeps, block-batched reduction and strided
// updates.
package mem

// blockSize is the batch length for blocked traversals, sized so a
// block of int64 stays within L1.
const blockSize = 64

// IncrementMatrix adds 1 to every element, walking each row in order.
// Row-major traversal touches memory sequentially, so each cache line
// is used fully before it is evicted.
func IncrementMatrix(m [][]int64) {
	for i := range m {
		row := m[i]
		for j := range row {
			row[j]++
		}
	}
}

// IncrementMatrixColumnMajor adds 1 to every element, walking columns
// first. On a large matrix every step lands on a different cache line.
// Ragged rows are handled by skipping rows shorter than the column
// index, so the final contents always match IncrementMatrix.
func IncrementMatrixColumnMajor(m [][]int64) {
	maxCols := 0
	for i := range m {
		if len(m[i]) > maxCols {
			maxCols = len(m[i])
		}
	}

	for j := 0; j < maxCols; j++ {
		for i := range m {
			if j < len(m[i]) {
				m[i][j]++
			}
		}
	}
}

// SumBlocked sums a in blocks to keep the working set inside L1 while
// the reduction runs. Result equals the naive sum.
func SumBlocked(a []int64) int64 {
	var sum int64

	for i := 0; i < len(a); i += blockSize {
		end := i + blockSize
		if end > len(a) {
			end = len(a)
		}

		// Process current block
		for j := i; j < end; j++ {
			sum += a[j]
		}
	}

	return sum
}

// AddOneStrided adds 1 to every stride-th element starting at index 0.
// The stride-4 shape mirrors the classic software-prefetch demo loop;
// here the hardware prefetcher does the work, the kernel only keeps
// the access pattern regular. stride must be positive.
func AddOneStrided(a []float64, stride int) {
	for i := 0; i < len(a); i += stride {
		a[i] += 1.0
	}
}
