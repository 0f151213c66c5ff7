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

// Package domain implements three-valued bit-vector domains: a (lo, hi)
// pair of equal-width bv.BV values representing the set of concrete
// bit-vectors bitwise-bracketed between them. A domain may be invalid (no
// concrete bit-vector satisfies it); that is an ordinary value, not an
// error — callers check IsValid.
package domain

import (
	"fmt"
	"strings"

	"github.com/consensys/bvprop/pkg/bv"
	"github.com/consensys/bvprop/pkg/util/math"
)

// BitState classifies the three-valued state of a single bit position.
type BitState uint8

const (
	// Zero indicates the bit is forced to 0 (lo=0, hi=0).
	Zero BitState = iota
	// One indicates the bit is forced to 1 (lo=1, hi=1).
	One
	// Unknown indicates the bit is unconstrained (lo=0, hi=1).
	Unknown
	// InvalidBit indicates a contradictory bit (lo=1, hi=0).
	InvalidBit
)

// Domain is a three-valued bit-vector domain: the set of concrete
// bit-vectors v with lo <= v <= hi, compared bitwise.
type Domain struct {
	lo, hi bv.BV
}

// New constructs a domain from a (lo, hi) pair. The pair need not be valid —
// use IsValid to check.
func New(lo, hi bv.BV) Domain {
	if lo.Width() != hi.Width() {
		panic(fmt.Sprintf("domain: width mismatch (%d vs %d)", lo.Width(), hi.Width()))
	}

	return Domain{lo, hi}
}

// NewInit constructs the all-unknown domain of the given width: every bit
// position is unconstrained.
func NewInit(width uint) Domain {
	return Domain{bv.Zero(width), bv.Ones(width)}
}

// NewFixed constructs the domain fixing every bit to the given bit-vector's
// value.
func NewFixed(v bv.BV) Domain {
	return Domain{v, v}
}

// Lo returns the lower bound of this domain.
func (d Domain) Lo() bv.BV {
	return d.lo
}

// Hi returns the upper bound of this domain.
func (d Domain) Hi() bv.BV {
	return d.hi
}

// Width returns the bit-width of this domain.
func (d Domain) Width() uint {
	return d.lo.Width()
}

// IsValid reports whether this domain admits at least one concrete
// bit-vector, i.e. whether lo AND (NOT hi) == 0 at every bit position.
func (d Domain) IsValid() bool {
	return d.lo.And(d.hi.Not()).IsZero()
}

// IsFixed reports whether this domain is a singleton, i.e. lo == hi.
func (d Domain) IsFixed() bool {
	return d.lo.Equals(d.hi)
}

// IsInit reports whether every bit of this domain is unknown.
func (d Domain) IsInit() bool {
	width := d.Width()
	return d.lo.Equals(bv.Zero(width)) && d.hi.Equals(bv.Ones(width))
}

// BitState returns the three-valued state of the bit at position i.
func (d Domain) BitState(i uint) BitState {
	lo, hi := d.lo.Bit(i), d.hi.Bit(i)

	switch {
	case lo == 0 && hi == 0:
		return Zero
	case lo == 1 && hi == 1:
		return One
	case lo == 0 && hi == 1:
		return Unknown
	default:
		return InvalidBit
	}
}

// UnknownCount returns the number of unconstrained bit positions in this
// domain.
func (d Domain) UnknownCount() uint {
	var count uint

	for i := uint(0); i < d.Width(); i++ {
		if d.BitState(i) == Unknown {
			count++
		}
	}

	return count
}

// Cardinality returns the number of concrete bit-vectors in γ(D), i.e.
// 2^UnknownCount(). This is a diagnostic convenience (e.g. for logging how
// much a propagation round narrowed a domain down), not part of the
// propagation hot path; it panics if the domain has enough unknown bits to
// overflow a uint64.
func (d Domain) Cardinality() uint64 {
	unknown := d.UnknownCount()
	if unknown >= 64 {
		panic(fmt.Sprintf("domain: cardinality 2^%d overflows a uint64", unknown))
	}

	return math.PowUint64(2, uint64(unknown))
}

// Contains reports whether the concrete bit-vector v belongs to this
// domain's concretization, i.e. (v OR lo) == v and (v AND hi) == v.
func (d Domain) Contains(v bv.BV) bool {
	return v.Or(d.lo).Equals(v) && v.And(d.hi).Equals(v)
}

// Equals reports whether two domains have identical lo and hi bounds.
func (d Domain) Equals(o Domain) bool {
	return d.lo.Equals(o.lo) && d.hi.Equals(o.hi)
}

// Intersect computes the bitwise meet of two equal-width domains: lo = a.lo
// OR b.lo, hi = a.hi AND b.hi. The result may be invalid.
func Intersect(a, b Domain) Domain {
	if a.Width() != b.Width() {
		panic(fmt.Sprintf("domain: width mismatch (%d vs %d)", a.Width(), b.Width()))
	}

	return Domain{a.lo.Or(b.lo), a.hi.And(b.hi)}
}

// String renders this domain as a most-significant-bit-first ternary
// string over {0,1,x}.
func (d Domain) String() string {
	var sb strings.Builder

	width := d.Width()

	for i := width; i > 0; i-- {
		switch d.BitState(i - 1) {
		case Zero:
			sb.WriteByte('0')
		case One:
			sb.WriteByte('1')
		case Unknown:
			sb.WriteByte('x')
		default:
			sb.WriteByte('!')
		}
	}

	return sb.String()
}

// Parse parses a most-significant-bit-first ternary string over {0,1,x}
// into a Domain whose width is the length of the string.
func Parse(s string) (Domain, error) {
	width := uint(len(s))
	if width == 0 {
		return Domain{}, fmt.Errorf("domain: empty string")
	}

	lo, hi := make([]byte, width), make([]byte, width)

	for i, c := range s {
		switch c {
		case '0':
			lo[i], hi[i] = '0', '0'
		case '1':
			lo[i], hi[i] = '1', '1'
		case 'x', 'X':
			lo[i], hi[i] = '0', '1'
		default:
			return Domain{}, fmt.Errorf("domain: invalid character %q at index %d", c, i)
		}
	}

	loBV, err := bv.NewFromString(string(lo))
	if err != nil {
		return Domain{}, err
	}

	hiBV, err := bv.NewFromString(string(hi))
	if err != nil {
		return Domain{}, err
	}

	return Domain{loBV, hiBV}, nil
}
