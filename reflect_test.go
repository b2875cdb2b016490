package nandsim_test

import (
	"testing"

	hw "github.com/db47h/nandsim"
	"github.com/db47h/nandsim/hwtest"
)

type nand4 struct {
	A   [4]int `hw:"in"`
	B   [4]int `hw:"in"`
	Out [4]int `hw:"out,y"`
}

func (g *nand4) Update(c *hw.Circuit) {
	for i := range g.Out {
		c.Set(g.Out[i], hw.Nand(c.Get(g.A[i]), c.Get(g.B[i])))
	}
}

func Test_MakePart(t *testing.T) {
	sp := hw.MakePart((*nand4)(nil))
	if sp.Name != "nand4" {
		t.Errorf("got name %q", sp.Name)
	}
	if len(sp.Inputs) != 8 || sp.Inputs[4] != "b[0]" {
		t.Errorf("bad inputs %v", sp.Inputs)
	}
	if len(sp.Outputs) != 4 || sp.Outputs[0] != "y[0]" {
		t.Errorf("bad outputs %v", sp.Outputs)
	}

	chip, err := hw.Chip("NAND4", hw.In("a[4], b[4]"), hw.Out("y[4]"), hw.Parts{
		hw.NandGate("a=a[0], b=b[0], out=y[0]"),
		hw.NandGate("a=a[1], b=b[1], out=y[1]"),
		hw.NandGate("a=a[2], b=b[2], out=y[2]"),
		hw.NandGate("a=a[3], b=b[3], out=y[3]"),
	})
	if err != nil {
		t.Fatal(err)
	}
	hwtest.ComparePart(t, testTPC, chip, sp.NewPart)
}

type badPart struct {
	In string `hw:"in"`
}

func (*badPart) Update(*hw.Circuit) {}

func Test_MakePart_panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MakePart to panic on a string pin field")
		}
	}()
	hw.MakePart((*badPart)(nil))
}
