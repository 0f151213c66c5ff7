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

// Package propagate implements the bit-vector domain propagators: eq, not,
// and, sll_const, srl_const and slice. Every propagator takes the domains
// the caller already knows and returns the tightest domains consistent with
// both those and the operator's semantics. A result is never mutated from
// its inputs; unsatisfiability is returned as an invalid Domain, not raised.
package propagate

import (
	"github.com/consensys/bvprop/internal/tracelog"
	"github.com/consensys/bvprop/pkg/bv"
	"github.com/consensys/bvprop/pkg/domain"
)

// Eq propagates the single-bit equality z = (x == y). It returns the
// bitwise intersection of x and y (useful to a caller wanting to know the
// shared concretization), and the tightened single-bit result domain.
func Eq(x, y domain.Domain) (xyIntersect domain.Domain, z domain.Domain) {
	xyIntersect = domain.Intersect(x, y)

	switch {
	case !xyIntersect.IsValid():
		// x and y cannot agree on any bit-vector, so they cannot be equal.
		z = domain.NewFixed(bv.New(1, 0))
	case x.IsFixed() && y.IsFixed() && x.Lo().Equals(y.Lo()):
		z = domain.NewFixed(bv.New(1, 1))
	default:
		z = domain.NewInit(1)
	}

	tracelog.Propagation("eq", []string{x.String(), y.String()}, []string{xyIntersect.String(), z.String()})

	return xyIntersect, z
}
