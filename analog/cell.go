// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package analog

// A Cell is a static CMOS logic cell with a single output node. Conductance
// returns the conductance of its pull-up network (to Vdd) and pull-down
// network (to ground) for the given input voltages.
//
type Cell interface {
	Name() string
	Inputs() int
	Conductance(vin []float64, vdd float64) (up, down float64)
}

// series returns the conductance of two conductances in series.
func series(g1, g2 float64) float64 {
	if g1 == 0 || g2 == 0 {
		return 0
	}
	return g1 * g2 / (g1 + g2)
}

// Inverter is a CMOS inverter: one PMOS to Vdd, one NMOS to ground.
//
type Inverter struct {
	P, N MOSFET
}

// NewInverter returns an inverter with the default transistor models.
//
func NewInverter() *Inverter { return &Inverter{DefaultPMOS, DefaultNMOS} }

// Name implements Cell.
func (*Inverter) Name() string { return "INV" }

// Inputs implements Cell.
func (*Inverter) Inputs() int { return 1 }

// Conductance implements Cell.
func (c *Inverter) Conductance(vin []float64, vdd float64) (up, down float64) {
	return c.P.G(vin[0], vdd), c.N.G(vin[0], 0)
}

// Nand2 is a CMOS 2-input NAND: two PMOS in parallel to Vdd, two NMOS in
// series to ground.
//
type Nand2 struct {
	P, N MOSFET
}

// NewNand2 returns a NAND2 cell with the default transistor models.
//
func NewNand2() *Nand2 { return &Nand2{DefaultPMOS, DefaultNMOS} }

// Name implements Cell.
func (*Nand2) Name() string { return "NAND2" }

// Inputs implements Cell.
func (*Nand2) Inputs() int { return 2 }

// Conductance implements Cell. Gate-source voltages of the series NMOS are
// taken relative to ground.
func (c *Nand2) Conductance(vin []float64, vdd float64) (up, down float64) {
	up = c.P.G(vin[0], vdd) + c.P.G(vin[1], vdd)
	down = series(c.N.G(vin[0], 0), c.N.G(vin[1], 0))
	return up, down
}
