// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package testbench

import (
	"strings"

	"github.com/db47h/nandsim"
)

// A Vector is an ordered assignment of values to pins.
//
type Vector []bool

// String returns v as a string of 0 and 1, in pin order.
//
func (v Vector) String() string {
	var b strings.Builder
	b.Grow(len(v))
	for _, x := range v {
		if x {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Equal returns true if v and w have the same length and values.
//
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

// ParseVector parses a string of 0 and 1 as returned by Vector.String. Any
// other character is read as 0.
//
func ParseVector(s string) Vector {
	v := make(Vector, len(s))
	for i := range s {
		v[i] = s[i] == '1'
	}
	return v
}

// Exhaustive returns all 2^n input vectors of n pins in ascending binary
// order, the first pin being the most significant bit. For two pins, this is
// (0,0), (0,1), (1,0), (1,1).
//
func Exhaustive(n int) []Vector {
	vs := make([]Vector, 1<<uint(n))
	for i := range vs {
		v := make(Vector, n)
		for bit := 0; bit < n; bit++ {
			v[n-bit-1] = i&(1<<uint(bit)) != 0
		}
		vs[i] = v
	}
	return vs
}

// An Oracle returns the expected outputs of a part for the given inputs.
//
type Oracle func(in Vector) Vector

// NandOracle is the Oracle of a two input NAND gate.
//
func NandOracle(in Vector) Vector {
	return Vector{nandsim.Nand(in[0], in[1])}
}
