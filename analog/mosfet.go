// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package analog

// Polarity is the channel type of a MOSFET.
//
type Polarity int

// MOSFET polarities.
const (
	NMOS Polarity = iota
	PMOS
)

func (p Polarity) String() string {
	if p == PMOS {
		return "PMOS"
	}
	return "NMOS"
}

// MOSFET is a switch-level model of a MOS transistor: a conductance between
// drain and source that is zero below the threshold voltage and grows linearly
// with the gate overdrive above it (triode region, small drain-source voltage).
//
type MOSFET struct {
	Type   Polarity
	Vth    float64 // threshold voltage magnitude (V)
	KP     float64 // transconductance parameter (A/V²)
	Width  float64 // channel width (m)
	Length float64 // channel length (m)
}

// Default transistor models. The geometry is 10µm / 180nm; KP is the SPICE
// level 1 default.
var (
	DefaultNMOS = MOSFET{Type: NMOS, Vth: 0.7, KP: 2e-5, Width: 10e-6, Length: 180e-9}
	DefaultPMOS = MOSFET{Type: PMOS, Vth: 0.7, KP: 2e-5, Width: 10e-6, Length: 180e-9}
)

// G returns the channel conductance (S) for the given gate and source
// voltages.
//
func (m MOSFET) G(vg, vs float64) float64 {
	vov := vg - vs - m.Vth
	if m.Type == PMOS {
		vov = vs - vg - m.Vth
	}
	if vov <= 0 {
		return 0
	}
	return m.KP * m.Width / m.Length * vov
}
