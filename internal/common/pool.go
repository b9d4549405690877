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
package common

import "sync"

// Scratch slice pools for the benchmark runner. Kernel timing loops
// request fresh working buffers per run; pooling them keeps allocation
// out of the measured region.

const (
	smallSliceSize  = 1 << 10 // 1K elements
	mediumSliceSize = 1 << 14 // 16K elements
	largeSliceSize  = 1 << 20 // 1M elements
)

var (
	smallInt64Pool = &sync.Pool{
		New: func() interface{} {
			return make([]int64, smallSliceSize)
		},
	}

	mediumInt64Pool = &sync.Pool{
		New: func() interface{} {
			return make([]int64, mediumSliceSize)
		},
	}

	largeInt64Pool = &sync.Pool{
		New: func() interface{} {
			return make([]int64, largeSliceSize)
		},
	}
)

// getInt64Pool returns the smallest pool whose buffers fit n elements,
// or nil when n exceeds the largest pooled size.
func getInt64Pool(n int) *sync.Pool {
	switch {
	case n <= smallSliceSize:
		return smallInt64Pool
	case n <= mediumSliceSize:
		return mediumInt64Pool
	case n <= largeSliceSize:
		return largeInt64Pool
	}
	return nil
}

// GetInt64Slice returns a zeroed scratch slice of length n.
func GetInt64Slice(n int) []int64 {
	pool := getInt64Pool(n)
	if pool == nil {
		return make([]int64, n)
	}

	s := pool.Get().([]int64)[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}

// PutInt64Slice returns a scratch slice to its pool. Slices that were
// not pool-sized are dropped for the GC.
func PutInt64Slice(s []int64) {
	switch cap(s) {
	case smallSliceSize:
		smallInt64Pool.Put(s[:smallSliceSize])
	case mediumSliceSize:
		mediumInt64Pool.Put(s[:mediumSliceSize])
	case largeSliceSize:
		largeInt64Pool.Put(s[:largeSliceSize])
	}
}
