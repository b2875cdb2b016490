package nandsim_test

import (
	"strings"
	"testing"
	"testing/quick"

	hw "github.com/db47h/nandsim"
	hl "github.com/db47h/nandsim/hwlib"
)

const testTPC = 16

func TestNand(t *testing.T) {
	td := []struct {
		a, b, y bool
	}{
		{false, false, true},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}
	for _, d := range td {
		if got := hw.Nand(d.a, d.b); got != d.y {
			t.Errorf("Nand(%v, %v) = %v, expected %v", d.a, d.b, got, d.y)
		}
	}
}

func TestNand_quick(t *testing.T) {
	f := func(a, b bool) bool {
		return hw.Nand(a, b) == !(a && b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
	idempotent := func(a, b bool, n uint8) bool {
		y := hw.Nand(a, b)
		for i := 0; i < int(n); i++ {
			if hw.Nand(a, b) != y {
				return false
			}
		}
		return true
	}
	if err := quick.Check(idempotent, nil); err != nil {
		t.Fatal(err)
	}
}

func TestTruthTable(t *testing.T) {
	tt := hw.TruthTable()
	exp := []hw.Row{
		{A: false, B: false, Y: true},
		{A: false, B: true, Y: true},
		{A: true, B: false, Y: true},
		{A: true, B: true, Y: false},
	}
	if len(tt) != len(exp) {
		t.Fatalf("got %d rows, expected %d", len(tt), len(exp))
	}
	for i := range exp {
		if tt[i] != exp[i] {
			t.Errorf("row %d: got %+v, expected %+v", i, tt[i], exp[i])
		}
	}
}

// testGate runs gate through all its input combinations. result[o][i] is the
// expected value of output o for combination i, where the first input is the
// most significant bit.
func testGate(t *testing.T, gate hw.NewPartFn, result [][]bool) {
	t.Helper()
	part := gate("").PartSpec // build dummy gate just to get to the partspec
	inputs := make([]bool, len(part.Inputs))
	outputs := make([]bool, len(part.Outputs))
	var w strings.Builder
	parts := make(hw.Parts, 0, len(part.Inputs)+len(part.Outputs)+1)
	for i, n := range part.Inputs {
		w.WriteString("," + n + "=" + n)
		in := &inputs[i]
		parts = append(parts, hl.Input(func() bool { return *in })("out="+n))
	}
	for i, n := range part.Outputs {
		w.WriteString("," + n + "=" + n)
		out := &outputs[i]
		parts = append(parts, hl.Output(func(v bool) { *out = v })("in="+n))
	}
	parts = append(parts, gate(strings.TrimPrefix(w.String(), ",")))
	c, err := hw.NewCircuit(0, testTPC, parts)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	tot := 1 << uint(len(part.Inputs))
	for i := 0; i < tot; i++ {
		for bit := range inputs {
			inputs[len(inputs)-bit-1] = (i & (1 << uint(bit))) != 0
		}
		c.TickTock()
		for o, out := range outputs {
			if exp := result[o][i]; exp != out {
				t.Errorf("%s %v = %v, got %v", part.Name, inputs, exp, out)
			}
		}
	}
}

func TestNandGate(t *testing.T) {
	testGate(t, hw.NandGate, [][]bool{{true, true, true, false}})
}

func TestNandGate_delay(t *testing.T) {
	var a, b, y bool
	c, err := hw.NewCircuit(1, testTPC, hw.Parts{
		hl.Input(func() bool { return a })("out=a"),
		hl.Input(func() bool { return b })("out=b"),
		hw.NandGate("a=a, b=b, out=y"),
		hl.Output(func(v bool) { y = v })("in=y"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	c.TickTock()
	if !y {
		t.Fatal("expected y=true for a=0, b=0")
	}
	a, b = true, true
	// step 1: inputs update a and b
	// step 2: the NAND updates y
	// step 3: the output probe sees y
	c.Step()
	c.Step()
	if !y {
		t.Fatal("y changed before the gate delay elapsed")
	}
	c.Step()
	if y {
		t.Fatal("expected y=false after 3 steps")
	}
}

func TestNandGate_idempotent(t *testing.T) {
	var a, b, y bool
	c, err := hw.NewCircuit(0, testTPC, hw.Parts{
		hl.Input(func() bool { return a })("out=a"),
		hl.Input(func() bool { return b })("out=b"),
		hw.NandGate("a=a, b=b, out=y"),
		hl.Output(func(v bool) { y = v })("in=y"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	f := func(x, z bool, n uint8) bool {
		a, b = x, z
		c.TickTock()
		first := y
		for i := 0; i < int(n%8); i++ {
			c.TickTock()
			if y != first {
				return false
			}
		}
		return first == !(x && z)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
