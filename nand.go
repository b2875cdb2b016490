// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

// Nand returns !(a && b).
//
//	a b | out
//	0 0 |  1
//	0 1 |  1
//	1 0 |  1
//	1 1 |  0
//
func Nand(a, b bool) bool {
	return !(a && b)
}

// A Row is a row of a two input truth table.
//
type Row struct {
	A, B, Y bool
}

// TruthTable returns the full truth table of Nand, in input enumeration
// order: (0,0), (0,1), (1,0), (1,1).
//
func TruthTable() []Row {
	rows := make([]Row, 0, 4)
	for _, a := range [...]bool{false, true} {
		for _, b := range [...]bool{false, true} {
			rows = append(rows, Row{a, b, Nand(a, b)})
		}
	}
	return rows
}

type nandUnit struct {
	A   int `hw:"in"`
	B   int `hw:"in"`
	Out int `hw:"out"`
}

func (g *nandUnit) Update(c *Circuit) {
	c.Set(g.Out, Nand(c.Get(g.A), c.Get(g.B)))
}

var nandSpec = func() *PartSpec {
	sp := MakePart((*nandUnit)(nil))
	sp.Name = "NAND"
	return sp
}()

// NandGate returns a NAND gate part. The output is updated one simulation step
// after the inputs.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
func NandGate(c string) Part { return nandSpec.NewPart(c) }
