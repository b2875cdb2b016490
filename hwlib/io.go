// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/nandsim"
)

// Uint returns the state of the given pins as an unsigned integer. Pin 0 is
// the least significant bit.
//
func Uint(c *nandsim.Circuit, pins []int) uint64 {
	var v uint64
	for bit, p := range pins {
		if c.Get(p) {
			v |= 1 << uint(bit)
		}
	}
	return v
}

// SetUint sets the state of the given pins to the bits of v. Pin 0 is the
// least significant bit.
//
func SetUint(c *nandsim.Circuit, pins []int, v uint64) {
	for bit, p := range pins {
		c.Set(p, v&(1<<uint(bit)) != 0)
	}
}

// Input creates a function based input. f is called once per simulation step,
// from a worker goroutine, and must not block.
//
//	Outputs: out
//	Function: out = f()
//
func Input(f func() bool) nandsim.NewPartFn {
	return (&nandsim.PartSpec{
		Name:    "INPUT",
		Outputs: nandsim.Out(pOut),
		Mount: func(s *nandsim.Socket) []nandsim.Component {
			out := s.Pin(pOut)
			return []nandsim.Component{
				func(c *nandsim.Circuit) { c.Set(out, f()) },
			}
		},
	}).NewPart
}

// Output creates an output or probe. The fn function is called with the
// state of the in pin on every simulation step.
//
//	Inputs: in
//	Function: f(in)
//
func Output(f func(bool)) nandsim.NewPartFn {
	return (&nandsim.PartSpec{
		Name:   "OUTPUT",
		Inputs: nandsim.In(pIn),
		Mount: func(s *nandsim.Socket) []nandsim.Component {
			in := s.Pin(pIn)
			return []nandsim.Component{
				func(c *nandsim.Circuit) { f(c.Get(in)) },
			}
		},
	}).NewPart
}

// InputN creates an input bus of the given bits size.
//
//	Outputs: out[bits]
//	Function: out = f()
//
func InputN(bits int, f func() uint64) nandsim.NewPartFn {
	return (&nandsim.PartSpec{
		Name:    "INPUT" + strconv.Itoa(bits),
		Outputs: nandsim.Out("out[" + strconv.Itoa(bits) + "]"),
		Mount: func(s *nandsim.Socket) []nandsim.Component {
			pins := s.Bus(pOut, bits)
			return []nandsim.Component{
				func(c *nandsim.Circuit) { SetUint(c, pins, f()) },
			}
		}}).NewPart
}

// OutputN creates an output bus of the given bits size.
//
//	Inputs: in[bits]
//	Function: f(in)
//
func OutputN(bits int, f func(uint64)) nandsim.NewPartFn {
	return (&nandsim.PartSpec{
		Name:   "OUTPUT" + strconv.Itoa(bits),
		Inputs: nandsim.In("in[" + strconv.Itoa(bits) + "]"),
		Mount: func(s *nandsim.Socket) []nandsim.Component {
			pins := s.Bus(pIn, bits)
			return []nandsim.Component{
				func(c *nandsim.Circuit) { f(Uint(c, pins)) },
			}
		}}).NewPart
}
