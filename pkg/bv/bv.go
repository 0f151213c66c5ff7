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
//
// SPDX-License-Identifier: Apache-2.0

// Package bv provides an immutable, arbitrary-width unsigned bit-vector
// value. Bits are indexed from zero at the least-significant position.
// Widths are fixed at construction; combining two bit-vectors (bitwise ops,
// comparison) requires equal widths.
package bv

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// BV is an immutable fixed-width unsigned bit-vector. The zero value is not
// valid; construct one with New, NewFromBigInt, NewFromString, Zero or Ones.
type BV struct {
	width uint
	bits  *bitset.BitSet
}

// New constructs a width-bit bit-vector from the low bits of value. Bits of
// value at or above width are discarded.
func New(width uint, value uint64) BV {
	if width == 0 {
		panic("bv: width must be at least 1")
	}

	bits := bitset.New(width)

	for i := uint(0); i < width && i < 64; i++ {
		if value&(uint64(1)<<i) != 0 {
			bits.Set(i)
		}
	}

	return BV{width, bits}
}

// NewFromBigInt constructs a width-bit bit-vector from the low width bits of
// value. value must be non-negative.
func NewFromBigInt(width uint, value *big.Int) BV {
	if width == 0 {
		panic("bv: width must be at least 1")
	} else if value.Sign() < 0 {
		panic("bv: value must be non-negative")
	}

	bits := bitset.New(width)

	for i := uint(0); i < width; i++ {
		if value.Bit(int(i)) == 1 {
			bits.Set(i)
		}
	}

	return BV{width, bits}
}

// NewFromString parses a most-significant-bit-first string of '0'/'1'
// characters into a bit-vector whose width is the length of the string.
func NewFromString(s string) (BV, error) {
	width := uint(len(s))
	if width == 0 {
		return BV{}, fmt.Errorf("bv: empty string")
	}

	bits := bitset.New(width)

	for i, c := range s {
		pos := width - 1 - uint(i)

		switch c {
		case '0':
		case '1':
			bits.Set(pos)
		default:
			return BV{}, fmt.Errorf("bv: invalid character %q at index %d", c, i)
		}
	}

	return BV{width, bits}, nil
}

// Zero returns the width-bit bit-vector with every bit clear.
func Zero(width uint) BV {
	return New(width, 0)
}

// Ones returns the width-bit bit-vector with every bit set.
func Ones(width uint) BV {
	if width == 0 {
		panic("bv: width must be at least 1")
	}

	bits := bitset.New(width)

	for i := uint(0); i < width; i++ {
		bits.Set(i)
	}

	return BV{width, bits}
}

// Width returns the number of bits in this bit-vector.
func (p BV) Width() uint {
	return p.width
}

// Bit returns the bit (0 or 1) at the given position, counting from the
// least-significant bit.
func (p BV) Bit(i uint) uint {
	p.checkIndex(i)

	if p.bits.Test(i) {
		return 1
	}

	return 0
}

// BigInt returns this bit-vector's value as an unsigned big integer.
func (p BV) BigInt() *big.Int {
	val := new(big.Int)

	for i := p.width; i > 0; i-- {
		val.Lsh(val, 1)

		if p.bits.Test(i - 1) {
			val.Or(val, big.NewInt(1))
		}
	}

	return val
}

// Uint64 returns this bit-vector's value as a uint64. It panics if the value
// does not fit.
func (p BV) Uint64() uint64 {
	val := p.BigInt()
	if !val.IsUint64() {
		panic(fmt.Sprintf("bv: value %s does not fit in a uint64", val.String()))
	}

	return val.Uint64()
}

// IsZero returns true iff every bit of this bit-vector is clear.
func (p BV) IsZero() bool {
	return p.bits.None()
}

// Equals returns true iff both bit-vectors have the same width and value.
func (p BV) Equals(o BV) bool {
	return p.width == o.width && p.bits.Equal(o.bits)
}

// Cmp compares this bit-vector against another of the same width, returning
// -1, 0 or +1. It panics on a width mismatch.
func (p BV) Cmp(o BV) int {
	p.checkWidth(o)

	for i := p.width; i > 0; i-- {
		a, b := p.bits.Test(i-1), o.bits.Test(i-1)

		switch {
		case a == b:
			continue
		case a:
			return 1
		default:
			return -1
		}
	}

	return 0
}

// And returns the bitwise AND of this bit-vector with another of the same
// width. It panics on a width mismatch.
func (p BV) And(o BV) BV {
	p.checkWidth(o)
	return BV{p.width, p.bits.Intersection(o.bits)}
}

// Or returns the bitwise OR of this bit-vector with another of the same
// width. It panics on a width mismatch.
func (p BV) Or(o BV) BV {
	p.checkWidth(o)
	return BV{p.width, p.bits.Union(o.bits)}
}

// Xor returns the bitwise XOR of this bit-vector with another of the same
// width. It panics on a width mismatch.
func (p BV) Xor(o BV) BV {
	p.checkWidth(o)
	return BV{p.width, p.bits.SymmetricDifference(o.bits)}
}

// Not returns the bitwise complement of this bit-vector.
func (p BV) Not() BV {
	return BV{p.width, p.bits.Complement()}
}

// Lsh returns this bit-vector shifted left (logically) by n bits, the low n
// bits filled with zero. n >= Width() collapses the result to zero.
func (p BV) Lsh(n uint) BV {
	if n >= p.width {
		return Zero(p.width)
	}

	bits := bitset.New(p.width)

	for i := n; i < p.width; i++ {
		if p.bits.Test(i - n) {
			bits.Set(i)
		}
	}

	return BV{p.width, bits}
}

// Rsh returns this bit-vector shifted right (logically) by n bits, the high
// n bits filled with zero. n >= Width() collapses the result to zero.
func (p BV) Rsh(n uint) BV {
	if n >= p.width {
		return Zero(p.width)
	}

	bits := bitset.New(p.width)

	for i := uint(0); i < p.width-n; i++ {
		if p.bits.Test(i + n) {
			bits.Set(i)
		}
	}

	return BV{p.width, bits}
}

// Slice extracts the inclusive bit range [lower,upper], returning a
// bit-vector of width upper-lower+1. It panics if lower > upper or upper is
// out of range.
func (p BV) Slice(upper, lower uint) BV {
	if lower > upper {
		panic(fmt.Sprintf("bv: slice lower %d exceeds upper %d", lower, upper))
	} else if upper >= p.width {
		panic(fmt.Sprintf("bv: slice upper %d out of range for width %d", upper, p.width))
	}

	w := upper - lower + 1
	bits := bitset.New(w)

	for i := uint(0); i < w; i++ {
		if p.bits.Test(lower + i) {
			bits.Set(i)
		}
	}

	return BV{w, bits}
}

// WithSlice returns a copy of this bit-vector with the bits
// [lower,lower+sub.Width()) replaced by sub. It panics if the replacement
// range does not fit within this bit-vector.
func (p BV) WithSlice(lower uint, sub BV) BV {
	if lower+sub.width > p.width {
		panic(fmt.Sprintf("bv: replacement range [%d,%d) out of range for width %d", lower, lower+sub.width, p.width))
	}

	bits := bitset.New(p.width)

	for i := uint(0); i < p.width; i++ {
		if p.bits.Test(i) {
			bits.Set(i)
		}
	}

	for i := uint(0); i < sub.width; i++ {
		bits.SetTo(lower+i, sub.bits.Test(i))
	}

	return BV{p.width, bits}
}

// String renders this bit-vector as a most-significant-bit-first binary
// string.
func (p BV) String() string {
	var sb strings.Builder

	for i := p.width; i > 0; i-- {
		if p.bits.Test(i - 1) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

func (p BV) checkWidth(o BV) {
	if p.width != o.width {
		panic(fmt.Sprintf("bv: width mismatch (%d vs %d)", p.width, o.width))
	}
}

func (p BV) checkIndex(i uint) {
	if i >= p.width {
		panic(fmt.Sprintf("bv: bit index %d out of range for width %d", i, p.width))
	}
}
