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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/bvprop/pkg/domain"
)

// TestFixedPoint_And drives And to a fixed point over a small constraint
// graph: x, y fully unknown, z fixed to 1. A single application already
// forces x and y to 1 (per the And invariants); a second round should
// report no further change.
func TestFixedPoint_And(t *testing.T) {
	x := domain.NewInit(1)
	y := domain.NewInit(1)
	z := domain.NewInit(1)

	one, _ := domain.Parse("1")
	z = domain.Intersect(z, one)

	rounds := FixedPoint(func() bool {
		xOut, yOut, zOut := And(x, y, z)
		changed := !xOut.Equals(x) || !yOut.Equals(y) || !zOut.Equals(z)
		x, y, z = xOut, yOut, zOut

		return changed
	})

	assert.GreaterOrEqual(t, rounds, uint(1))
	assert.True(t, x.IsFixed())
	assert.True(t, y.IsFixed())
	assert.Equal(t, uint(1), x.Lo().Bit(0))
	assert.Equal(t, uint(1), y.Lo().Bit(0))
}

func TestTotalWidth(t *testing.T) {
	a := domain.NewInit(3)
	b := domain.NewInit(5)

	assert.Equal(t, uint(8), TotalWidth(a, b))
	assert.Equal(t, uint(0), TotalWidth())
}
