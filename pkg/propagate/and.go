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

// And propagates the bitwise conjunction z = x AND y. A single application
// is sound but not necessarily complete: it detects a position where z is
// forced 1 but some operand cannot be, or where z is forced 0 but both
// operands are forced 1, but some joint infeasibilities may only surface
// after iterating to a fixed point (see FixedPoint).
func And(x, y, z domain.Domain) (xOut, yOut, zOut domain.Domain) {
	xLo, xHi := x.Lo(), x.Hi()
	yLo, yHi := y.Lo(), y.Hi()
	zLo, zHi := z.Lo(), z.Hi()

	newZLo := zLo.Or(xLo.And(yLo))
	newZHi := zHi.And(xHi).And(yHi)
	zOut = domain.New(newZLo, newZHi)

	newXLo := xLo.Or(zLo)
	newXHi := xHi.And(zHi.Or(yLo.Not()))
	xOut = domain.New(newXLo, newXHi)

	newYLo := yLo.Or(zLo)
	newYHi := yHi.And(zHi.Or(xLo.Not()))
	yOut = domain.New(newYLo, newYHi)

	if !xOut.IsValid() || !yOut.IsValid() || !zOut.IsValid() {
		tracelog.Invalid("and", "a forced bit in z is incompatible with the forced bits of x and y")
	}

	tracelog.Propagation("and",
		[]string{x.String(), y.String(), z.String()},
		[]string{xOut.String(), yOut.String(), zOut.String()})

	return xOut, yOut, zOut
}
