// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package analog

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Point is the settled response of a cell to one combination of logic-level
// DC inputs.
//
type Point struct {
	In    []bool
	Out   float64
	Logic bool
}

// Sweep drives cell with every combination of 0V / Vdd DC inputs, in
// ascending binary order with the first input as the most significant bit,
// and returns the final output voltage of each transient. The transients run
// concurrently.
//
func Sweep(ctx context.Context, cell Cell, o Options) ([]Point, error) {
	n := cell.Inputs()
	pts := make([]Point, 1<<uint(n))
	g, ctx := errgroup.WithContext(ctx)
	for v := range pts {
		in := make([]bool, n)
		src := make([]Source, n)
		for i := range in {
			in[i] = v&(1<<uint(n-1-i)) != 0
			src[i] = DC(0)
			if in[i] {
				src[i] = DC(o.Vdd)
			}
		}
		pts[v].In = in
		p := &pts[v]
		g.Go(func() error {
			w, err := Transient(ctx, cell, src, o)
			if err != nil {
				return err
			}
			p.Out = w.Final()
			p.Logic = Logic(p.Out, o.Vdd)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pts, nil
}

// InverterPulse returns the input source used to exercise an inverter in the
// time domain: a 0V to vdd pulse of the given width and period with 1ns rise
// and fall times.
//
func InverterPulse(vdd, width, period float64) Source {
	return Pulse{Pulsed: vdd, Rise: 1e-9, Fall: 1e-9, Width: width, Period: period}
}

// NandPulses returns the input sources used to exercise a 2-input cell in the
// time domain: input a is a pulse of the given width and period, input b the
// same at twice the period, so the four input combinations repeat every
// 2*period. Rise and fall times are 1ns.
//
func NandPulses(vdd, width, period float64) []Source {
	return []Source{
		Pulse{Pulsed: vdd, Rise: 1e-9, Fall: 1e-9, Width: width, Period: period},
		Pulse{Pulsed: vdd, Rise: 1e-9, Fall: 1e-9, Width: 2 * width, Period: 2 * period},
	}
}
