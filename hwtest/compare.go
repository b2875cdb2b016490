// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/hwlib"
)

// maxExhaustive is the largest input count for which ComparePart tries every
// input combination. Larger parts are tested with random inputs.
const maxExhaustive = 12

func connString(pins ...[]string) string {
	var b strings.Builder
	for _, ps := range pins {
		for _, n := range ps {
			if b.Len() > 0 {
				b.WriteRune(',')
			}
			b.WriteString(n)
			b.WriteRune('=')
			b.WriteString(n)
		}
	}
	return b.String()
}

// ComparePart takes two parts and compares their outputs given the same inputs.
// Both parts must have the same Input/Output interface. Each input combination
// is held for one clock cycle of tpc steps, so tpc must be larger than the
// propagation delay of both parts.
//
func ComparePart(t *testing.T, tpc uint, part1 nandsim.NewPartFn, part2 nandsim.NewPartFn) {
	t.Helper()

	ps1, ps2 := part1(""), part2("")

	// compare specs
	if len(ps1.Inputs) != len(ps2.Inputs) {
		t.Fatal("len(ps1.Inputs) != len(ps2.Inputs)")
	}
	if len(ps1.Outputs) != len(ps2.Outputs) {
		t.Fatal("len(ps1.Outputs) != len(ps2.Outputs)")
	}
	for i := range ps1.Inputs {
		if ps1.Inputs[i] != ps2.Inputs[i] {
			t.Fatalf("ps1.Inputs[i] = %q != ps2.Inputs[i] = %q", ps1.Inputs[i], ps2.Inputs[i])
		}
	}
	for i := range ps1.Outputs {
		if ps1.Outputs[i] != ps2.Outputs[i] {
			t.Fatalf("ps1.Outputs[i] = %q != ps2.Outputs[i] = %q", ps1.Outputs[i], ps2.Outputs[i])
		}
	}

	inputs := make([]bool, len(ps1.Inputs))
	outputs := make([][2]bool, len(ps1.Outputs))

	var parts nandsim.Parts
	for i, n := range ps1.Inputs {
		k := i
		parts = append(parts, hwlib.Input(func() bool { return inputs[k] })("out="+n))
	}
	// each part drives its own set of wires, prefixed with p1_ and p2_
	for p, part := range []nandsim.NewPartFn{part1, part2} {
		prefix := fmt.Sprintf("p%d_", p+1)
		var b strings.Builder
		b.WriteString(connString(ps1.Inputs))
		for i, o := range ps1.Outputs {
			w := prefix + strings.NewReplacer("[", "_", "]", "").Replace(o)
			b.WriteString(", " + o + "=" + w)
			n, pi := i, p
			parts = append(parts, hwlib.Output(func(v bool) { outputs[n][pi] = v })("in="+w))
		}
		parts = append(parts, part(strings.TrimPrefix(b.String(), ", ")))
	}

	c, err := nandsim.NewCircuit(0, tpc, parts)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	errString := func(oname string, p1, p2 bool) string {
		var b strings.Builder
		for i, n := range ps1.Inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", n, inputs[i])
		}
		return fmt.Sprintf("\n%s => %s.%s=%v\nGot %s.%s=%v", b.String(), ps1.Name, oname, p1, ps2.Name, oname, p2)
	}

	check := func() {
		t.Helper()
		c.TickTock()
		for o, out := range outputs {
			if out[0] != out[1] {
				t.Fatal(errString(ps1.Outputs[o], out[0], out[1]))
			}
		}
	}

	start := time.Now()
	if len(inputs) <= maxExhaustive {
		for i := 0; i < 1<<uint(len(inputs)); i++ {
			for bit := range inputs {
				inputs[len(inputs)-bit-1] = i&(1<<uint(bit)) != 0
			}
			check()
		}
	} else {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for i := 0; i < 1<<maxExhaustive; i++ {
			for in := range inputs {
				inputs[in] = rnd.Int63()&1 != 0
			}
			check()
		}
	}

	elapsed := time.Since(start)
	ticks := c.Steps() / tpc
	t.Logf("%d components. %d steps in %v. %d clock ticks => %.2f Hz", c.Size(), c.Steps(), elapsed, ticks, float64(ticks)/elapsed.Seconds())
}
