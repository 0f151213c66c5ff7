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
	"github.com/consensys/bvprop/pkg/util/math"
)

// maxRounds bounds the fixed-point loop defensively. Monotonicity guarantees
// convergence in O(total-bits) rounds (see spec's design notes), so hitting
// this bound indicates a caller bug (e.g. op reporting "changed" forever)
// rather than a legitimate non-terminating propagation.
const maxRounds = 1 << 20

// FixedPoint repeatedly invokes op, which should apply one or more
// propagators to a caller-owned set of domains and report whether any
// domain changed, until a round makes no further change. It returns the
// number of rounds performed. This is a convenience for the common pattern
// described in the engine's design notes — iterating propagators (in
// particular And, whose single application is sound but not always
// complete) over a constraint graph until it stabilizes.
func FixedPoint(op func() bool) uint {
	timer := tracelog.NewTimer()

	var rounds uint

	for {
		rounds++

		if !op() {
			timer.Log("propagate.FixedPoint")
			return rounds
		}

		if rounds >= maxRounds {
			tracelog.RoundLimitExceeded(maxRounds)
			return rounds
		}
	}
}

// TotalWidth sums the bit-widths of a set of domains, e.g. for a caller
// wanting to size a round bound for its own constraint graph relative to
// FixedPoint's generic maxRounds.
func TotalWidth(domains ...domain.Domain) uint {
	widths := make([]uint, len(domains))

	for i, d := range domains {
		widths[i] = d.Width()
	}

	return math.Sum(widths...)
}
