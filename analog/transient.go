// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package analog

import (
	"context"
	"math"

	"github.com/pkg/errors"
)

// Default transient parameters.
const (
	DefaultVdd  = 5.0
	DefaultLoad = 1e-12
	DefaultStep = 0.1e-9
	DefaultEnd  = 50e-9
)

// Options configures a transient analysis. Times are in seconds, the load in
// farads.
//
type Options struct {
	Vdd  float64
	Load float64
	Step float64
	End  float64
}

// DefaultOptions returns the default transient options.
//
func DefaultOptions() Options {
	return Options{Vdd: DefaultVdd, Load: DefaultLoad, Step: DefaultStep, End: DefaultEnd}
}

func (o *Options) validate() error {
	switch {
	case o.Vdd <= 0:
		return errors.Errorf("invalid supply voltage %g", o.Vdd)
	case o.Load <= 0:
		return errors.Errorf("invalid load capacitance %g", o.Load)
	case o.Step <= 0:
		return errors.Errorf("invalid time step %g", o.Step)
	case o.End < o.Step:
		return errors.Errorf("end time %g shorter than time step %g", o.End, o.Step)
	}
	return nil
}

// Waveform holds the result of a transient analysis. In[i][k] is the voltage
// of input i at Time[k].
//
type Waveform struct {
	Cell string
	Vdd  float64
	Time []float64
	In   [][]float64
	Out  []float64
}

// Len returns the number of time points.
//
func (w *Waveform) Len() int { return len(w.Time) }

// Logic returns the logic level of v for supply vdd.
//
func Logic(v, vdd float64) bool { return v > vdd/2 }

// Final returns the output voltage at the last time point.
//
func (w *Waveform) Final() float64 { return w.Out[len(w.Out)-1] }

// steady returns the output voltage the networks settle to.
func steady(up, down, vdd, v float64) float64 {
	if up+down == 0 {
		return v
	}
	return vdd * up / (up + down)
}

// Transient runs a fixed-step transient analysis of cell driving a capacitive
// load, with one source per cell input. The output node starts at its DC
// operating point. Over each step the input voltages are held at their value
// at the start of the step and the node equation
//
//	C dv/dt = gup (Vdd - v) - gdown v
//
// is integrated exactly.
//
func Transient(ctx context.Context, cell Cell, in []Source, o Options) (*Waveform, error) {
	if len(in) != cell.Inputs() {
		return nil, errors.Errorf("%s has %d inputs, got %d sources", cell.Name(), cell.Inputs(), len(in))
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	n := int(math.Round(o.End/o.Step)) + 1
	w := &Waveform{
		Cell: cell.Name(),
		Vdd:  o.Vdd,
		Time: make([]float64, n),
		In:   make([][]float64, len(in)),
		Out:  make([]float64, n),
	}
	for i := range w.In {
		w.In[i] = make([]float64, n)
	}
	vin := make([]float64, len(in))
	var v float64
	for k := 0; k < n; k++ {
		if k&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		t := float64(k) * o.Step
		for i, s := range in {
			vin[i] = s.V(t)
			w.In[i][k] = vin[i]
		}
		up, down := cell.Conductance(vin, o.Vdd)
		if k == 0 {
			v = steady(up, down, o.Vdd, 0)
		}
		w.Time[k] = t
		w.Out[k] = v
		if g := up + down; g > 0 {
			vinf := steady(up, down, o.Vdd, v)
			v = vinf + (v-vinf)*math.Exp(-g*o.Step/o.Load)
		}
	}
	return w, nil
}
