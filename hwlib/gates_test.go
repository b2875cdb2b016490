package hwlib_test

import (
	"strconv"
	"testing"
	"testing/quick"

	hw "github.com/db47h/nandsim"
	hl "github.com/db47h/nandsim/hwlib"
	"github.com/db47h/nandsim/hwtest"
)

const testTPC = 8

func TestGates_nand_only(t *testing.T) {
	td := []struct {
		name string
		gate hw.NewPartFn
		ref  func(a, b bool) bool
	}{
		{"AND", hl.And, func(a, b bool) bool { return a && b }},
		{"OR", hl.Or, func(a, b bool) bool { return a || b }},
		{"NOR", hl.Nor, func(a, b bool) bool { return !(a || b) }},
		{"XOR", hl.Xor, func(a, b bool) bool { return a != b }},
		{"XNOR", hl.Xnor, func(a, b bool) bool { return a == b }},
		{"NAND", hw.NandGate, hw.Nand},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			hwtest.ComparePart(t, testTPC, d.gate, hl.Gate(d.name, d.ref))
		})
	}
}

func TestNot(t *testing.T) {
	var in, out bool
	c, err := hw.NewCircuit(0, testTPC, hw.Parts{
		hl.Input(func() bool { return in })("out=in"),
		hl.Not("in=in, out=out"),
		hl.Output(func(v bool) { out = v })("in=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for _, v := range []bool{false, true, false} {
		in = v
		c.TickTock()
		if out != !v {
			t.Errorf("Not(%v) = %v", v, out)
		}
	}
}

func TestInputOutputN(t *testing.T) {
	var in, out uint64
	c, err := hw.NewCircuit(0, testTPC, hw.Parts{
		hl.InputN(16, func() uint64 { return in })("out[0..15]=t[0..15]"),
		hl.OutputN(16, func(n uint64) { out = n })("in[0..15]=t[0..15]"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	f := func(v uint16) bool {
		in = uint64(v)
		c.TickTock()
		return out == in
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

// NAND16 built from 16 NAND units, checked against the bitwise definition.
func TestNand16(t *testing.T) {
	parts := make(hw.Parts, 16)
	for i := range parts {
		n := strconv.Itoa(i)
		parts[i] = hw.NandGate("a=a[" + n + "], b=b[" + n + "], out=out[" + n + "]")
	}
	nand16, err := hw.Chip("NAND16", hw.In("a[16], b[16]"), hw.Out("out[16]"), parts)
	if err != nil {
		t.Fatal(err)
	}
	var a, b, out uint64
	c, err := hw.NewCircuit(0, testTPC, hw.Parts{
		hl.InputN(16, func() uint64 { return a })("out[0..15]=a[0..15]"),
		hl.InputN(16, func() uint64 { return b })("out[0..15]=b[0..15]"),
		nand16("a[0..15]=a[0..15], b[0..15]=b[0..15], out[0..15]=out[0..15]"),
		hl.OutputN(16, func(v uint64) { out = v })("in[0..15]=out[0..15]"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	f := func(x, y uint16) bool {
		a, b = uint64(x), uint64(y)
		c.TickTock()
		return uint16(out) == ^(x & y)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

