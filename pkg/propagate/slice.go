// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
package propagate

import (
	"fmt"

	"github.com/consensys/bvprop/internal/tracelog"
	"github.com/consensys/bvprop/pkg/domain"
)

// Slice propagates the bit extraction z = x[upper:lower]. lower <= upper
// must hold and upper must be a valid bit position of x; z must have width
// upper-lower+1.
func Slice(x, z domain.Domain, upper, lower uint) (xOut, zOut domain.Domain) {
	if lower > upper {
		panic(fmt.Sprintf("slice: lower %d exceeds upper %d", lower, upper))
	} else if upper >= x.Width() {
		panic(fmt.Sprintf("slice: upper %d out of range for width %d", upper, x.Width()))
	} else if z.Width() != upper-lower+1 {
		panic(fmt.Sprintf("slice: z width %d does not match range [%d,%d]", z.Width(), lower, upper))
	}

	xSlice := domain.New(x.Lo().Slice(upper, lower), x.Hi().Slice(upper, lower))
	zOut = domain.Intersect(z, xSlice)

	xOut = domain.New(
		x.Lo().WithSlice(lower, zOut.Lo()),
		x.Hi().WithSlice(lower, zOut.Hi()),
	)

	if !xOut.IsValid() || !zOut.IsValid() {
		tracelog.Invalid("slice", "x and z force conflicting bits within the sliced range")
	}

	tracelog.Propagation("slice", []string{x.String(), z.String()}, []string{xOut.String(), zOut.String()})

	return xOut, zOut
}
