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
// Package bench times the kernel pairs against each other and
// cross-checks that paired variants computed the same result.
package bench

import (
	"fmt"
	"sort"
	"time"
)

// Benchmark describes one timed variant of a kernel group.
type Benchmark struct {
	// Group names the kernel pair, e.g. "reduce/evensum".
	Group string
	// Variant names this member of the pair, e.g. "branchless".
	Variant string
	// Setup builds the workload for a given size and returns the op to
	// time plus a cleanup releasing any pooled scratch. The op returns
	// a checksum so paired variants can be cross-checked and the call
	// cannot be optimized away.
	Setup func(size int) (op func() int64, cleanup func())
}

// Result holds one timed variant.
type Result struct {
	Group    string
	Variant  string
	Size     int
	Iters    int
	Elapsed  time.Duration
	NsPerOp  float64
	Checksum int64
}

// Runner times benchmarks with a fixed workload size and iteration
// count.
type Runner struct {
	Size  int // elements per op
	Iters int // timed ops per variant
}

// DefaultRunner matches the CLI defaults.
func DefaultRunner() *Runner {
	return &Runner{Size: 1 << 16, Iters: 100}
}

// Run times a single benchmark variant.
func (r *Runner) Run(b Benchmark) Result {
	op, cleanup := b.Setup(r.Size)
	defer cleanup()

	// One warmup op outside the timed region
	checksum := op()

	start := time.Now()
	for i := 0; i < r.Iters; i++ {
		checksum = op()
	}
	elapsed := time.Since(start)

	return Result{
		Group:    b.Group,
		Variant:  b.Variant,
		Size:     r.Size,
		Iters:    r.Iters,
		Elapsed:  elapsed,
		NsPerOp:  float64(elapsed.Nanoseconds()) / float64(r.Iters),
		Checksum: checksum,
	}
}

// RunGroups runs every suite benchmark whose group is listed. An empty
// list runs the whole suite. Unknown group names are reported as an
// error before anything runs.
func (r *Runner) RunGroups(groups []string) ([]Result, error) {
	suite := Suite()

	if len(groups) > 0 {
		known := make(map[string]bool)
		for _, b := range suite {
			known[b.Group] = true
		}
		for _, g := range groups {
			if !known[g] {
				return nil, fmt.Errorf("unknown kernel group %q", g)
			}
		}

		wanted := make(map[string]bool, len(groups))
		for _, g := range groups {
			wanted[g] = true
		}

		filtered := suite[:0]
		for _, b := range suite {
			if wanted[b.Group] {
				filtered = append(filtered, b)
			}
		}
		suite = filtered
	}

	results := make([]Result, 0, len(suite))
	for _, b := range suite {
		results = append(results, r.Run(b))
	}
	return results, nil
}

// Verify returns the groups whose variants disagree on their checksum.
// Variants of a group run the same workload the same number of times,
// so any divergence is a broken equivalence, not noise.
func Verify(results []Result) []string {
	first := make(map[string]int64)
	bad := make(map[string]bool)

	for _, res := range results {
		if want, ok := first[res.Group]; ok {
			if res.Checksum != want {
				bad[res.Group] = true
			}
		} else {
			first[res.Group] = res.Checksum
		}
	}

	groups := make([]string, 0, len(bad))
	for g := range bad {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Groups returns the distinct group names of the suite in order.
func Groups() []string {
	var groups []string
	seen := make(map[string]bool)
	for _, b := range Suite() {
		if !seen[b.Group] {
			seen[b.Group] = true
			groups = append(groups, b.Group)
		}
	}
	return groups
}
