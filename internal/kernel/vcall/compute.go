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
// Package vcall implements an interface-dispatch kernel and its
// monomorphic twin. When the concrete type reaching ComputeAll is
// statically known the compiler can devirtualize and inline the call;
// the pinned twin shows the ceiling for that transformation.
package vcall

// Computer transforms a single value.
type Computer interface {
	Compute(x int64) int64
}

// Doubler is the base behavior.
type Doubler struct{}

// Compute returns x * 2.
func (Doubler) Compute(x int64) int64 { return x * 2 }

// Tripler overrides the base behavior.
type Tripler struct{}

// Compute returns x * 3.
func (Tripler) Compute(x int64) int64 { return x * 3 }

// ComputeAll applies c to every element of a through the interface,
// one dynamic dispatch per element. dst must be at least as long as a.
func ComputeAll(dst, a []int64, c Computer) {
	for i, v := range a {
		dst[i] = c.Compute(v)
	}
}

// ComputeAllDoubler is ComputeAll pinned to Doubler. The call is a
// static target the compiler inlines, leaving a plain multiply loop.
func ComputeAllDoubler(dst, a []int64) {
	var d Doubler
	for i, v := range a {
		dst[i] = d.Compute(v)
	}
}
