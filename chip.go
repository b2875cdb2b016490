// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"github.com/pkg/errors"
)

// wire is a named signal within a chip.
type wire struct {
	name    string
	input   bool // chip input
	output  bool // chip output
	driver  string
	readers int
}

type chip struct {
	inputs  []string
	outputs []string
	parts   []Part
	wires   []*wire // internal wires, in order of appearance
}

// Chip composes existing parts into a new part packaged into a chip.
// The pin names specified as inputs and outputs will be the inputs
// and outputs of the chip.
//
// An Xor gate could be created like this:
//
//	xor, err := Chip(
//		"XOR",
//		In("a, b"),
//		Out("out"),
//		Parts{
//			NandGate("a=a, b=b, out=nandAB"),
//			NandGate("a=a, b=nandAB, out=w0"),
//			NandGate("a=b, b=nandAB, out=w1"),
//			NandGate("a=w0, b=w1, out=out"),
//		})
//
// The returned value is a NewPartFn that can be used to compose the new part
// with others into other chips:
//
//	xnor, err := Chip(
//		"XNOR",
//		In("a, b"),
//		Out("out"),
//		Parts{
//			xor("a=a, b=b, out=xorAB"),
//			NandGate("a=xorAB, b=xorAB, out=out"),
//		})
//
// Part inputs that are not connected are wired to False. Chip inputs may be
// left unused and chip outputs that are not driven by any part stay false. Chip returns an error if a pin name is unknown, if a wire is
// driven by more than one output, if a part output is connected to a constant,
// the clock or a chip input, if an internal wire is read but never driven, or if an
// internal wire is driven but never read.
//
func Chip(name string, inputs []string, outputs []string, parts Parts) (NewPartFn, error) {
	c := &chip{inputs: inputs, outputs: outputs, parts: parts}
	ws := make(map[string]*wire)
	var all []*wire

	get := func(n string) *wire {
		w := ws[n]
		if w == nil {
			w = &wire{name: n}
			ws[n] = w
			all = append(all, w)
		}
		return w
	}

	for _, n := range inputs {
		if isConstant(n) {
			return nil, errors.New("chip input pin " + n + " uses a reserved name")
		}
		if ws[n] != nil {
			return nil, errors.New("duplicate chip pin " + n)
		}
		w := get(n)
		w.input = true
		w.driver = n
	}
	for _, n := range outputs {
		if isConstant(n) {
			return nil, errors.New("chip output pin " + n + " uses a reserved name")
		}
		if ws[n] != nil {
			return nil, errors.New("duplicate chip pin " + n)
		}
		get(n).output = true
	}

	for _, p := range parts {
		sp := p.PartSpec
		seen := make(map[string]bool, len(p.Conns))
		for _, cn := range p.Conns {
			pn := sp.Name + "." + cn.PP
			if seen[cn.PP] {
				return nil, errors.New("pin " + pn + " connected more than once")
			}
			seen[cn.PP] = true
			switch {
			case sp.isInput(cn.PP):
				if len(cn.CP) > 1 {
					return nil, errors.New("input pin " + pn + " connected to more than one wire")
				}
				if isConstant(cn.CP[0]) {
					continue
				}
				get(cn.CP[0]).readers++
			case sp.isOutput(cn.PP):
				for _, n := range cn.CP {
					switch {
					case n == Clk:
						return nil, errors.New(pn + ":" + n + ": output pin connected to clock signal")
					case isConstant(n):
						return nil, errors.New(pn + ":" + n + ": output pin connected to constant " + n + " input")
					}
					w := get(n)
					switch {
					case w.input:
						return nil, errors.New(pn + ":" + n + ": chip input pin used as output")
					case w.driver != "":
						return nil, errors.New(pn + ":" + n + ": output pin already used as output by " + w.driver)
					}
					w.driver = pn
				}
			default:
				return nil, errors.New("invalid pin name " + cn.PP + " for part " + sp.Name)
			}
		}
	}

	for _, w := range all {
		switch {
		case w.driver == "" && !w.output:
			return nil, errors.New("pin " + w.name + " not connected to any output")
		case !w.input && !w.output && w.readers == 0:
			return nil, errors.New("pin " + w.name + " not connected to any input")
		}
		if !w.input && !w.output {
			c.wires = append(c.wires, w)
		}
	}

	ps := &PartSpec{
		Name:    name,
		Inputs:  inputs,
		Outputs: outputs,
		chip:    c,
	}
	return ps.NewPart, nil
}

// flatten binds the chip's parts to nets. bind maps the chip's pin names to
// nets of the host chip.
//
func (c *chip) flatten(b *builder, bind map[string]int) {
	local := map[string]int{False: netFalse, True: netTrue, Clk: netClk}
	for _, n := range c.inputs {
		if id, ok := bind[n]; ok {
			local[n] = id
		} else {
			local[n] = netFalse
		}
	}
	for _, n := range c.outputs {
		if id, ok := bind[n]; ok {
			local[n] = id
		} else {
			local[n] = b.newNet()
		}
	}
	for _, w := range c.wires {
		local[w.name] = b.newNet()
	}

	for _, p := range c.parts {
		pins := make(map[string]int, len(p.Inputs)+len(p.Outputs))
		for _, cn := range p.Conns {
			id := local[cn.CP[0]]
			for _, n := range cn.CP[1:] {
				b.union(id, local[n])
			}
			pins[cn.PP] = id
		}
		for _, n := range p.Inputs {
			if _, ok := pins[n]; !ok {
				pins[n] = netFalse
			}
		}
		for _, n := range p.Outputs {
			if _, ok := pins[n]; !ok {
				pins[n] = b.newNet()
			}
		}
		if p.chip != nil {
			p.chip.flatten(b, pins)
		} else {
			b.leaves = append(b.leaves, leaf{p.PartSpec, pins})
		}
	}
}

const (
	netFalse = cstFalse
	netTrue  = cstTrue
	netClk   = cstClk
)

type leaf struct {
	spec *PartSpec
	pins map[string]int // pin name to net
}

// builder collects the leaf parts of a circuit and merges nets connected
// together by output fan-out.
//
type builder struct {
	nets   []int // union-find parent of each net
	leaves []leaf
}

func newBuilder() *builder {
	return &builder{nets: []int{netFalse, netTrue, netClk}}
}

func (b *builder) newNet() int {
	n := len(b.nets)
	b.nets = append(b.nets, n)
	return n
}

func (b *builder) find(n int) int {
	for b.nets[n] != n {
		b.nets[n] = b.nets[b.nets[n]]
		n = b.nets[n]
	}
	return n
}

// union merges two nets. The lowest net number becomes the root so that
// constant nets keep their number.
//
func (b *builder) union(x, y int) {
	x, y = b.find(x), b.find(y)
	if x == y {
		return
	}
	if y < x {
		x, y = y, x
	}
	b.nets[y] = x
}

// mount allocates one circuit pin per net and mounts all leaf parts.
//
func (b *builder) mount(c *Circuit) []Component {
	pins := make(map[int]int, len(b.nets))
	for n := 0; n < cstCount; n++ {
		pins[n] = c.allocPin()
	}
	var cs []Component
	for _, l := range b.leaves {
		s := newSocket()
		for name, net := range l.pins {
			root := b.find(net)
			pin, ok := pins[root]
			if !ok {
				pin = c.allocPin()
				pins[root] = pin
			}
			s.m[name] = pin
		}
		cs = append(cs, l.spec.Mount(s)...)
	}
	return cs
}
