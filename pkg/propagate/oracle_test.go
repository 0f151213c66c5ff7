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
	"github.com/consensys/bvprop/pkg/bv"
	"github.com/consensys/bvprop/pkg/domain"
)

// testWidth mirrors bitwuzla's TEST_BW: the oracle enumerates all
// 3^testWidth three-valued constants, the same population test_bvprop.cpp
// builds into its d_consts table.
const testWidth = 3

// ternaryConstants enumerates every three-valued constant string of the
// given width, most-significant digit first.
func ternaryConstants(width uint) []string {
	digits := []byte{'0', '1', 'x'}

	total := 1
	for i := uint(0); i < width; i++ {
		total *= 3
	}

	result := make([]string, 0, total)
	buf := make([]byte, width)

	var rec func(pos uint)

	rec = func(pos uint) {
		if pos == width {
			result = append(result, string(buf))
			return
		}

		for _, d := range digits {
			buf[pos] = d
			rec(pos + 1)
		}
	}

	rec(0)

	return result
}

// witnesses enumerates every concrete 0/1 string consistent with a
// three-valued constant string, i.e. the concretization of Parse(ternary).
func witnesses(ternary string) []string {
	var result []string

	cur := []byte(ternary)

	var build func(pos int)

	build = func(pos int) {
		if pos == len(ternary) {
			result = append(result, string(cur))
			return
		}

		if ternary[pos] == 'x' {
			cur[pos] = '0'
			build(pos + 1)
			cur[pos] = '1'
			build(pos + 1)
			cur[pos] = 'x'
		} else {
			build(pos + 1)
		}
	}

	build(0)

	return result
}

func mustParseDomain(s string) domain.Domain {
	d, err := domain.Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

func mustParseBV(s string) bv.BV {
	v, err := bv.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return v
}
