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
	"github.com/consensys/bvprop/pkg/bv"
	"github.com/consensys/bvprop/pkg/domain"
)

// shiftAmount extracts the shift count from a constant bit-vector. The
// count is not clamped and may exceed width (callers collapse the shifted
// value to zero); n is a programmer-supplied constant so an absurdly large
// shift count (one that does not fit a uint64) is a precondition violation
// and panics.
func shiftAmount(n bv.BV) uint {
	return uint(n.Uint64())
}

// SllConst propagates a constant logical left shift z = x << n. n >= width
// forces z to zero.
func SllConst(x, z domain.Domain, n bv.BV) (xOut, zOut domain.Domain) {
	width := x.Width()
	amount := shiftAmount(n)

	if amount >= width {
		zOut = domain.Intersect(z, domain.NewFixed(bv.Zero(width)))
		tracelog.Propagation("sll_const", []string{x.String(), z.String()}, []string{x.String(), zOut.String()})

		return x, zOut
	}

	// The low `amount` bits of z are forced to 0; the rest is unconstrained
	// by this fact alone.
	forcedLow := domain.New(bv.Zero(width), bv.Ones(width).Lsh(amount))
	// x shifted into position: its low `width-amount` bits land at
	// [amount,width), its low `amount` bits of the result are zero-filled.
	shiftedX := domain.New(x.Lo().Lsh(amount), x.Hi().Lsh(amount))

	zOut = domain.Intersect(domain.Intersect(z, forcedLow), shiftedX)

	// x' top `amount` bits are unconstrained (they are shifted out); its low
	// `width-amount` bits intersect with z's high `width-amount` bits.
	topUnconstrained := topMask(width, amount)
	zDown := domain.New(z.Lo().Rsh(amount), z.Hi().Rsh(amount).Or(topUnconstrained))

	xOut = domain.Intersect(x, zDown)

	if !xOut.IsValid() || !zOut.IsValid() {
		tracelog.Invalid("sll_const", "z forces a low bit to 1 that the shift requires to be 0")
	}

	tracelog.Propagation("sll_const", []string{x.String(), z.String()}, []string{xOut.String(), zOut.String()})

	return xOut, zOut
}

// SrlConst propagates a constant logical right shift z = x >> n. n >= width
// forces z to zero.
func SrlConst(x, z domain.Domain, n bv.BV) (xOut, zOut domain.Domain) {
	width := x.Width()
	amount := shiftAmount(n)

	if amount >= width {
		zOut = domain.Intersect(z, domain.NewFixed(bv.Zero(width)))
		tracelog.Propagation("srl_const", []string{x.String(), z.String()}, []string{x.String(), zOut.String()})

		return x, zOut
	}

	// The high `amount` bits of z are forced to 0.
	forcedHigh := domain.New(bv.Zero(width), bv.Ones(width).Rsh(amount))
	// x shifted into position: its high `width-amount` bits land at
	// [0,width-amount), with the top `amount` bits zero-filled.
	shiftedX := domain.New(x.Lo().Rsh(amount), x.Hi().Rsh(amount))

	zOut = domain.Intersect(domain.Intersect(z, forcedHigh), shiftedX)

	// x' low `amount` bits are unconstrained; its high `width-amount` bits
	// intersect with z's low `width-amount` bits shifted up.
	bottomUnconstrained := bottomMask(width, amount)
	zUp := domain.New(z.Lo().Lsh(amount), z.Hi().Lsh(amount).Or(bottomUnconstrained))

	xOut = domain.Intersect(x, zUp)

	if !xOut.IsValid() || !zOut.IsValid() {
		tracelog.Invalid("srl_const", "z forces a high bit to 1 that the shift requires to be 0")
	}

	tracelog.Propagation("srl_const", []string{x.String(), z.String()}, []string{xOut.String(), zOut.String()})

	return xOut, zOut
}

// topMask returns a width-bit bit-vector with its top n bits set to 1 and
// the rest clear.
func topMask(width, n uint) bv.BV {
	if n == 0 {
		return bv.Zero(width)
	}

	return bv.Ones(width).Lsh(width - n)
}

// bottomMask returns a width-bit bit-vector with its low n bits set to 1 and
// the rest clear.
func bottomMask(width, n uint) bv.BV {
	if n == 0 {
		return bv.Zero(width)
	}

	return bv.Ones(width).Rsh(width - n)
}
