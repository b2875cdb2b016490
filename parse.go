// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"strconv"

	"github.com/db47h/nandsim/internal/hdl"
	"github.com/pkg/errors"
)

// MaxBusSize is the largest bus width accepted in pin specifications and
// connection ranges.
const MaxBusSize = 1 << 16

// BusPinName returns the pin name for the i-th bit of the given bus.
//
func BusPinName(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// ParseIOSpec parses an input or output pin specification string and returns
// individual pin names in a slice, expanding bus declarations to individual pin
// names. For example:
//
//	ParseIOSpec("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
//
func ParseIOSpec(names string) ([]string, error) {
	var out []string
	p := hdl.Parser{Input: names}
	for {
		it, err := p.Next(false)
		if err != nil {
			return nil, err
		}
		switch v := it.(type) {
		case nil:
			return out, nil
		case hdl.Pin:
			out = append(out, v.Name)
		case hdl.PinIndex:
			// in a pin spec, name[n] declares a bus of n pins.
			if v.Index <= 0 || v.Index > MaxBusSize {
				return nil, errors.Errorf("in %q at pos %d: invalid bus size %d", names, v.Pos+1, v.Index)
			}
			for i := 0; i < v.Index; i++ {
				out = append(out, BusPinName(v.Name, i))
			}
		case hdl.PinRange:
			r, err := rangeNames(names, v)
			if err != nil {
				return nil, err
			}
			out = append(out, r...)
		}
	}
}

// IO is like ParseIOSpec but panics on error. It is used to build the Inputs
// and Outputs of a PartSpec.
//
func IO(spec string) []string {
	pins, err := ParseIOSpec(spec)
	if err != nil {
		panic(err)
	}
	return pins
}

// In is an alias for IO, for readability of input lists.
//
func In(spec string) []string { return IO(spec) }

// Out is an alias for IO, for readability of output lists.
//
func Out(spec string) []string { return IO(spec) }

// A Connection connects a part pin (PP) to one or more pins of its container
// chip (CP). Only outputs can be connected to more than one chip pin.
//
type Connection struct {
	PP string
	CP []string
}

// rangeNames expands a bus range, in either direction.
func rangeNames(in string, v hdl.PinRange) ([]string, error) {
	n := v.End - v.Start
	step := 1
	if n < 0 {
		n, step = -n, -1
	}
	if n >= MaxBusSize {
		return nil, errors.Errorf("in %q at pos %d: bus range %d..%d too wide", in, v.Pos+1, v.Start, v.End)
	}
	r := make([]string, 0, n+1)
	for i := v.Start; ; i += step {
		r = append(r, BusPinName(v.Name, i))
		if i == v.End {
			return r, nil
		}
	}
}

func pinNames(in string, it interface{}) ([]string, error) {
	switch v := it.(type) {
	case hdl.Pin:
		return []string{v.Name}, nil
	case hdl.PinIndex:
		return []string{BusPinName(v.Name, v.Index)}, nil
	case hdl.PinRange:
		return rangeNames(in, v)
	}
	panic("unexpected pin type")
}

// ParseConnections parses a connection configuration like "partPin1=chipPin1,
// partPin2=chipPin2". Buses can be connected by index or by range:
//
//	in[0..3]=a[4..7], sel=s[0], out=x, out=y
//
// Assigning a single chip pin to a range of part pins connects all of them to
// that chip pin. Assigning a range of chip pins to a single part pin is only
// valid for part outputs (fan-out); this is checked when the part is used in a
// chip.
//
func ParseConnections(c string) ([]Connection, error) {
	var conns []Connection
	idx := make(map[string]int)
	p := hdl.Parser{Input: c}
	for {
		it, err := p.Next(true)
		if err != nil {
			return nil, err
		}
		if it == nil {
			return conns, nil
		}
		a, ok := it.(hdl.PinAssignment)
		if !ok {
			pp, err := pinNames(c, it)
			if err != nil {
				return nil, err
			}
			return nil, errors.Errorf("in %q: missing pin assignment for %v", c, pp[0])
		}
		pp, err := pinNames(c, a.LHS)
		if err != nil {
			return nil, err
		}
		cp, err := pinNames(c, a.RHS)
		if err != nil {
			return nil, err
		}
		switch {
		case len(pp) == len(cp):
			for i := range pp {
				conns = addConn(conns, idx, pp[i], cp[i])
			}
		case len(pp) == 1:
			for _, n := range cp {
				conns = addConn(conns, idx, pp[0], n)
			}
		case len(cp) == 1:
			for _, n := range pp {
				conns = addConn(conns, idx, n, cp[0])
			}
		default:
			return nil, errors.Errorf("in %q: pin count mismatch in assignment %s=%s", c, pp[0], cp[0])
		}
	}
}

func addConn(conns []Connection, idx map[string]int, pp, cp string) []Connection {
	if i, ok := idx[pp]; ok {
		conns[i].CP = append(conns[i].CP, cp)
		return conns
	}
	idx[pp] = len(conns)
	return append(conns, Connection{PP: pp, CP: []string{cp}})
}
