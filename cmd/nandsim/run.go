// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/hwlib"
	"github.com/db47h/nandsim/record"
	"github.com/db47h/nandsim/testbench"
	"github.com/db47h/nandsim/vcd"
)

// dut is a part that can be run on the bench, with its reference function.
type dut struct {
	part   nandsim.NewPartFn
	oracle testbench.Oracle
}

func gate2(fn func(a, b bool) bool) testbench.Oracle {
	return func(in testbench.Vector) testbench.Vector {
		return testbench.Vector{fn(in[0], in[1])}
	}
}

var duts = map[string]dut{
	"nand": {nandsim.NandGate, testbench.NandOracle},
	"not": {hwlib.Not, func(in testbench.Vector) testbench.Vector {
		return testbench.Vector{!in[0]}
	}},
	"and":  {hwlib.And, gate2(func(a, b bool) bool { return a && b })},
	"or":   {hwlib.Or, gate2(func(a, b bool) bool { return a || b })},
	"nor":  {hwlib.Nor, gate2(func(a, b bool) bool { return !(a || b) })},
	"xor":  {hwlib.Xor, gate2(func(a, b bool) bool { return a != b })},
	"xnor": {hwlib.Xnor, gate2(func(a, b bool) bool { return a == b })},
}

func dutNames() string {
	names := make([]string, 0, len(duts))
	for n := range duts {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newRunCmd(a *app) *cobra.Command {
	var (
		name    string
		hold    uint
		spc     uint
		workers int
		period  time.Duration
		vcdFile string
		dbFile  string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the exhaustive stimulus bench",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			f := cmd.Flags()
			if f.Changed("hold") {
				cfg.Hold = hold
			}
			if f.Changed("steps") {
				cfg.StepsPerCycle = spc
			}
			if f.Changed("workers") {
				cfg.Workers = workers
			}
			if f.Changed("vcd") {
				cfg.VCD = vcdFile
			}
			if f.Changed("db") {
				cfg.DB = dbFile
			}
			if f.Changed("period") {
				cfg.Period = period
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			d, ok := duts[name]
			if !ok {
				return errors.Errorf("unknown part %q, expected one of %s", name, dutNames())
			}

			reps := []testbench.Reporter{testbench.NewConsole(cmd.OutOrStdout())}
			if cfg.VCD != "" {
				w, err := vcd.Create(cfg.VCD)
				if err != nil {
					return err
				}
				defer w.Close()
				reps = append(reps, w)
			}
			if cfg.DB != "" {
				rec, err := record.Open(cfg.DB)
				if err != nil {
					return err
				}
				defer rec.Close()
				reps = append(reps, rec)
			}

			b := testbench.New(d.part,
				testbench.WithOracle(d.oracle),
				testbench.WithReporter(reps...),
				testbench.WithLogger(a.log),
				testbench.WithHold(cfg.Hold),
				testbench.WithPeriod(cfg.Period),
				testbench.WithStepsPerCycle(cfg.StepsPerCycle),
				testbench.WithWorkers(cfg.Workers))
			res, err := b.Run()
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				a.log.Error("output mismatch", zap.String("run", res.Header.RunID), zap.Error(err))
				return &exitError{err}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "part", "nand", "part under test ("+dutNames()+")")
	f.UintVar(&hold, "hold", testbench.DefaultHold, "clock cycles each input vector is held")
	f.DurationVar(&period, "period", testbench.DefaultPeriod, "clock period")
	f.UintVar(&spc, "steps", testbench.DefaultStepsPerCycle, "simulation steps per clock cycle")
	f.IntVar(&workers, "workers", 0, "simulation workers (0 for one per CPU)")
	f.StringVar(&vcdFile, "vcd", "", "write a VCD waveform to `FILE`")
	f.StringVar(&dbFile, "db", "", "record the run in the SQLite database `FILE`")
	return cmd
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the NAND truth table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "a b | y")
			for _, r := range nandsim.TruthTable() {
				if _, err := fmt.Fprintf(out, "%d %d | %d\n", bit(r.A), bit(r.B), bit(r.Y)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
