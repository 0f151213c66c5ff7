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
package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/bvprop/pkg/bv"
)

func TestNew_Valid(t *testing.T) {
	lo, _ := bv.NewFromString("0101011")
	hi, _ := bv.NewFromString("1101011")

	d := New(lo, hi)

	assert.True(t, d.IsValid())
	assert.False(t, d.IsFixed())
}

func TestNew_Invalid(t *testing.T) {
	lo, _ := bv.NewFromString("1101011")
	hi, _ := bv.NewFromString("0101011")

	d := New(lo, hi)

	assert.False(t, d.IsValid())
}

func TestNew_Fixed(t *testing.T) {
	lo, _ := bv.NewFromString("0001111")
	hi, _ := bv.NewFromString("0001111")

	d := New(lo, hi)

	assert.True(t, d.IsFixed())
}

func TestNewInit_IsInit(t *testing.T) {
	d := NewInit(5)

	assert.True(t, d.IsInit())
	assert.True(t, d.IsValid())
	assert.False(t, d.IsFixed())
}

func TestParseAndString_RoundTrip(t *testing.T) {
	for _, s := range []string{"0101x1x", "xxx", "101", "x1x0"} {
		d, err := Parse(s)
		assert.NoError(t, err)
		assert.Equal(t, s, d.String())
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("10y1")
	assert.Error(t, err)
}

func TestBitState(t *testing.T) {
	d, _ := Parse("01x")

	assert.Equal(t, Zero, d.BitState(2))
	assert.Equal(t, One, d.BitState(1))
	assert.Equal(t, Unknown, d.BitState(0))
}

func TestIntersect(t *testing.T) {
	a, _ := Parse("x1x0")
	b, _ := Parse("0x1x")

	r := Intersect(a, b)

	assert.Equal(t, "0110", r.String())
}

func TestIntersect_Invalid(t *testing.T) {
	a, _ := Parse("1")
	b, _ := Parse("0")

	r := Intersect(a, b)
	assert.False(t, r.IsValid())
}

func TestCardinality(t *testing.T) {
	allFixed, _ := Parse("101")
	assert.Equal(t, uint64(1), allFixed.Cardinality())

	oneUnknown, _ := Parse("10x")
	assert.Equal(t, uint64(2), oneUnknown.Cardinality())

	allUnknown := NewInit(4)
	assert.Equal(t, uint64(16), allUnknown.Cardinality())
}

func TestContains(t *testing.T) {
	d, _ := Parse("1x0")
	v, _ := bv.NewFromString("110")
	w, _ := bv.NewFromString("100")
	n, _ := bv.NewFromString("010")

	assert.True(t, d.Contains(v))
	assert.True(t, d.Contains(w))
	assert.False(t, d.Contains(n))
}
