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
package bench

import (
	"math"
	"math/rand"

	"github.com/hotloop/hotloop/internal/common"
	"github.com/hotloop/hotloop/internal/kernel/hazard"
	"github.com/hotloop/hotloop/internal/kernel/loops"
	"github.com/hotloop/hotloop/internal/kernel/mem"
	"github.com/hotloop/hotloop/internal/kernel/predict"
	"github.com/hotloop/hotloop/internal/kernel/reduce"
	"github.com/hotloop/hotloop/internal/kernel/vcall"
)

// Workload seeds are fixed per group so every variant of a pair sees
// the same input and checksums stay comparable.
const (
	seedReduce  = 1
	seedHazard  = 2
	seedLoops   = 3
	seedMem     = 4
	seedPredict = 5
	seedVcall   = 6
)

// Suite returns the standard benchmark set, one entry per kernel
// variant, grouped into before/after pairs.
func Suite() []Benchmark {
	return []Benchmark{
		{"reduce/evensum", "branchy", reduceSetup(reduce.SumEvenBranchy)},
		{"reduce/evensum", "branchless", reduceSetup(reduce.SumEvenBranchless)},
		{"reduce/evensum", "unrolled", reduceSetup(reduce.SumEvenUnrolled)},
		{"reduce/evensum", "masked", reduceSetup(reduce.SumEvenMasked)},

		{"hazard/chain", "naive", chainSetup(hazard.Chain)},
		{"hazard/chain", "hoisted", chainSetup(hazard.ChainHoisted)},

		{"loops/fill", "naive", fillSetup(loops.FillSequence)},
		{"loops/fill", "unrolled", fillSetup(loops.FillSequenceUnrolled)},

		{"loops/scaleoffset", "fused", scaleSetup(loops.ScaleOffsetFused)},
		{"loops/scaleoffset", "fissioned", scaleSetup(loops.ScaleOffsetFissioned)},

		{"loops/matmul", "ijk", matmulSetup(loops.MatMulIJK)},
		{"loops/matmul", "ikj", matmulSetup(loops.MatMulIKJ)},

		{"mem/matrix", "rowmajor", matrixSetup(mem.IncrementMatrix)},
		{"mem/matrix", "colmajor", matrixSetup(mem.IncrementMatrixColumnMajor)},

		{"mem/sum", "naive", sumSetup(sumNaive)},
		{"mem/sum", "blocked", sumSetup(mem.SumBlocked)},

		{"predict/countequal", "branchy", countSetup(predict.CountEqualBranchy)},
		{"predict/countequal", "branchless", countSetup(predict.CountEqualBranchless)},

		{"vcall/compute", "interface", vcallSetup(false)},
		{"vcall/compute", "monomorphic", vcallSetup(true)},
	}
}

func fillRandom(a []int64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range a {
		a[i] = rng.Int63n(2000) - 1000
	}
}

func reduceSetup(fn func([]int64) int64) func(int) (func() int64, func()) {
	return func(size int) (func() int64, func()) {
		a := common.GetInt64Slice(size)
		fillRandom(a, seedReduce)

		op := func() int64 { return fn(a) }
		cleanup := func() { common.PutInt64Slice(a) }
		return op, cleanup
	}
}

func chainSetup(fn func(a, b, c []int64) (int64, error)) func(int) (func() int64, func()) {
	return func(size int) (func() int64, func()) {
		a := common.GetInt64Slice(size)
		b := common.GetInt64Slice(size)
		c := common.GetInt64Slice(size)
		fillRandom(a, seedHazard)
		fillRandom(b, seedHazard+100)
		fillRandom(c, seedHazard+200)

		op := func() int64 {
			tail, _ := fn(a, b, c)
			return tail
		}
		cleanup := func() {
			common.PutInt64Slice(a)
			common.PutInt64Slice(b)
			common.PutInt64Slice(c)
		}
		return op, cleanup
	}
}

func fillSetup(fn func([]int64)) func(int) (func() int64, func()) {
	return func(size int) (func() int64, func()) {
		dst := common.GetInt64Slice(size)

		op := func() int64 {
			fn(dst)
			if len(dst) == 0 {
				return 0
			}
			return dst[0] + dst[len(dst)-1]
		}
		cleanup := func() { common.PutInt64Slice(dst) }
		return op, cleanup
	}
}

func scaleSetup(fn func(dst, a []int64, scale, offset int64)) func(int) (func() int64, func()) {
	return func(size int) (func() int64, func()) {
		a := common.GetInt64Slice(size)
		dst := common.GetInt64Slice(size)
		fillRandom(a, seedLoops)

		op := func() int64 {
			fn(dst, a, 3, -7)
			var sum int64
			for _, v := range dst {
				sum += v
			}
			return sum
		}
		cleanup := func() {
			common.PutInt64Slice(a)
			common.PutInt64Slice(dst)
		}
		return op, cleanup
	}
}

func matmulSetup(fn func(dst, a, b []int64, n int)) func(int) (func() int64, func()) {
	return func(size int) (func() int64, func()) {
		// Interpret size as total elements; work on a square matrix of
		// roughly that area.
		n := int(math.Sqrt(float64(size)))
		if n < 1 {
			n = 1
		}

		a := common.GetInt64Slice(n * n)
		b := common.GetInt64Slice(n * n)
		dst := common.GetInt64Slice(n * n)
		fillRandom(a, seedLoops+10)
		fillRandom(b, seedLoops+20)

		op := func() int64 {
			fn(dst, a, b, n)
			var sum int64
			for _, v := range dst {
				sum += v
			}
			return sum
		}
		cleanup := func() {
			common.PutInt64Slice(a)
			common.PutInt64Slice(b)
			common.PutInt64Slice(dst)
		}
		return op, cleanup
	}
}

func matrixSetup(fn func([][]int64)) func(int) (func() int64, func()) {
	return func(size int) (func() int64, func()) {
		n := int(math.Sqrt(float64(size)))
		if n < 1 {
			n = 1
		}

		flat := common.GetInt64Slice(n * n)
		fillRandom(flat, seedMem)

		rows := make([][]int64, n)
		for i := range rows {
			rows[i] = flat[i*n : (i+1)*n]
		}

		op := func() int64 {
			fn(rows)
			return mem.SumBlocked(flat)
		}
		cleanup := func() { common.PutInt64Slice(flat) }
		return op, cleanup
	}
}

func sumNaive(a []int64) int64 {
	var sum int64
	for _, v := range a {
		sum += v
	}
	return sum
}

func sumSetup(fn func([]int64) int64) func(int) (func() int64, func()) {
	return func(size int) (func() int64, func()) {
		a := common.GetInt64Slice(size)
		fillRandom(a, seedMem+50)

		op := func() int64 { return fn(a) }
		cleanup := func() { common.PutInt64Slice(a) }
		return op, cleanup
	}
}

func countSetup(fn func([]int64, int64) int64) func(int) (func() int64, func()) {
	return func(size int) (func() int64, func()) {
		// 50% match rate so the branch predictor cannot memorize
		rng := rand.New(rand.NewSource(seedPredict))
		a := common.GetInt64Slice(size)
		for i := range a {
			a[i] = 42 + rng.Int63n(2)
		}

		op := func() int64 { return fn(a, 42) }
		cleanup := func() { common.PutInt64Slice(a) }
		return op, cleanup
	}
}

func vcallSetup(monomorphic bool) func(int) (func() int64, func()) {
	return func(size int) (func() int64, func()) {
		a := common.GetInt64Slice(size)
		dst := common.GetInt64Slice(size)
		fillRandom(a, seedVcall)

		tail := func() int64 {
			if len(dst) == 0 {
				return 0
			}
			return dst[len(dst)-1]
		}

		var op func() int64
		if monomorphic {
			op = func() int64 {
				vcall.ComputeAllDoubler(dst, a)
				return tail()
			}
		} else {
			var c vcall.Computer = vcall.Doubler{}
			op = func() int64 {
				vcall.ComputeAll(dst, a, c)
				return tail()
			}
		}

		cleanup := func() {
			common.PutInt64Slice(a)
			common.PutInt64Slice(dst)
		}
		return op, cleanup
	}
}
