// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable parts for nandsim.
//
// All logic gates in this package are chips built exclusively from NAND units
// (nandsim.NandGate). Gate provides behavioural versions of the same gates,
// with a single step of propagation delay, to use as references.
//
package hwlib

import (
	"github.com/db47h/nandsim"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pOut = "out"
)

// gate is a behavioural two input gate.
type gate func(a, b bool) bool

func (g gate) mount(s *nandsim.Socket) []nandsim.Component {
	a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
	return []nandsim.Component{
		func(c *nandsim.Circuit) { c.Set(out, g(c.Get(a), c.Get(b))) },
	}
}

// Gate returns a behavioural two input gate computing fn.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = fn(a, b)
//
func Gate(name string, fn func(a, b bool) bool) nandsim.NewPartFn {
	return (&nandsim.PartSpec{
		Name:    name,
		Inputs:  nandsim.In("a, b"),
		Outputs: nandsim.Out("out"),
		Mount:   gate(fn).mount,
	}).NewPart
}

func mustChip(name string, in, out string, parts nandsim.Parts) nandsim.NewPartFn {
	c, err := nandsim.Chip(name, nandsim.In(in), nandsim.Out(out), parts)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	nand = nandsim.NandGate

	not = mustChip("NOT", pIn, pOut, nandsim.Parts{
		nand("a=in, b=in, out=out"),
	})
	and = mustChip("AND", "a, b", pOut, nandsim.Parts{
		nand("a=a, b=b, out=nandAB"),
		nand("a=nandAB, b=nandAB, out=out"),
	})
	or = mustChip("OR", "a, b", pOut, nandsim.Parts{
		nand("a=a, b=a, out=notA"),
		nand("a=b, b=b, out=notB"),
		nand("a=notA, b=notB, out=out"),
	})
	nor = mustChip("NOR", "a, b", pOut, nandsim.Parts{
		or("a=a, b=b, out=orAB"),
		nand("a=orAB, b=orAB, out=out"),
	})
	xor = mustChip("XOR", "a, b", pOut, nandsim.Parts{
		nand("a=a, b=b, out=nandAB"),
		nand("a=a, b=nandAB, out=w0"),
		nand("a=b, b=nandAB, out=w1"),
		nand("a=w0, b=w1, out=out"),
	})
	xnor = mustChip("XNOR", "a, b", pOut, nandsim.Parts{
		xor("a=a, b=b, out=xorAB"),
		nand("a=xorAB, b=xorAB, out=out"),
	})
)

// Not returns a NOT gate made of one NAND unit.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//	Delay: 1 step
//
func Not(w string) nandsim.Part { return not(w) }

// And returns a AND gate made of two NAND units.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//	Delay: 2 steps
//
func And(w string) nandsim.Part { return and(w) }

// Or returns a OR gate made of three NAND units.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//	Delay: 2 steps
//
func Or(w string) nandsim.Part { return or(w) }

// Nor returns a NOR gate made of four NAND units.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//	Delay: 3 steps
//
func Nor(w string) nandsim.Part { return nor(w) }

// Xor returns a XOR gate made of four NAND units.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
//	Delay: 3 steps
//
func Xor(w string) nandsim.Part { return xor(w) }

// Xnor returns a XNOR gate made of five NAND units.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//	Delay: 4 steps
//
func Xnor(w string) nandsim.Part { return xnor(w) }
