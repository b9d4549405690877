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
package reduce

// Kernel dispatch. sumEvenFuncs lists the available even-sum
// implementations in preference order; the dispatch code picks the
// lowest-numbered entry which is available on this machine. The pure
// Go kernels are available under all circumstances, so the selection
// never fails. Platform-specific assembly kernels would be prepended
// here by per-architecture files.

type sumEvenImpl struct {
	sumEven   func([]int64) int64
	name      string
	available bool
}

var sumEvenFuncs = []sumEvenImpl{
	{SumEvenUnrolled, "unrolled", true},
	{SumEvenBranchless, "branchless", true},
	{SumEvenBranchy, "branchy", true},
}

var sumEvenID = func() int {
	for i := range sumEvenFuncs {
		if sumEvenFuncs[i].available {
			return i
		}
	}

	panic("no implementation of sumEven available")
}()

// Kernel returns the name of the even-sum kernel Evaluate dispatches
// to on this machine.
func Kernel() string {
	return sumEvenFuncs[sumEvenID].name
}

// Kernels returns the names of all registered even-sum kernels in
// preference order.
func Kernels() []string {
	names := make([]string, 0, len(sumEvenFuncs))
	for i := range sumEvenFuncs {
		names = append(names, sumEvenFuncs[i].name)
	}
	return names
}
