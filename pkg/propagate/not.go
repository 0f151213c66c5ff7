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
	"github.com/consensys/bvprop/internal/tracelog"
	"github.com/consensys/bvprop/pkg/domain"
)

// Not propagates the bitwise negation z = NOT x, tightening both operand
// domains against each other's bit-flip.
func Not(x, z domain.Domain) (xOut, zOut domain.Domain) {
	// tx is the bit-flip of x: what z must look like if x holds.
	tx := domain.New(x.Hi().Not(), x.Lo().Not())
	// tz is the bit-flip of z: what x must look like if z holds.
	tz := domain.New(z.Hi().Not(), z.Lo().Not())

	xOut = domain.Intersect(x, tz)
	zOut = domain.Intersect(z, tx)

	if !xOut.IsValid() || !zOut.IsValid() {
		tracelog.Invalid("not", "x and z forced to the same bit value at some position")
	}

	tracelog.Propagation("not", []string{x.String(), z.String()}, []string{xOut.String(), zOut.String()})

	return xOut, zOut
}
