// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/db47h/nandsim/analog"
	"github.com/db47h/nandsim/internal/config"
)

// analogCell is a cell the analog command can run, with its input names and
// the pulse sources covering all of its input combinations.
type analogCell struct {
	cell   func() analog.Cell
	inputs []string
	pulses func(vdd, width, period float64) []analog.Source
}

var analogCells = map[string]analogCell{
	"inv": {
		func() analog.Cell { return analog.NewInverter() },
		[]string{"in"},
		func(vdd, width, period float64) []analog.Source {
			return []analog.Source{analog.InverterPulse(vdd, width, period)}
		},
	},
	"nand2": {
		func() analog.Cell { return analog.NewNand2() },
		[]string{"a", "b"},
		analog.NandPulses,
	},
}

func newAnalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analog",
		Short: "Run the CMOS transient model of an inverter or a NAND2",
		Long: `Sweeps the logic-level DC input combinations through a switch-level CMOS
cell (--cell inv or nand2) and prints the settled output voltages. With --csv,
also runs a transient with pulse inputs covering all input combinations and
writes the waveform as CSV.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ac := &a.cfg.Analog
			f := cmd.Flags()
			var err error
			if f.Changed("cell") {
				if ac.Cell, err = f.GetString("cell"); err != nil {
					return err
				}
			}
			if f.Changed("csv") {
				if ac.CSV, err = f.GetString("csv"); err != nil {
					return err
				}
			}
			if f.Changed("end") {
				if ac.EndNS, err = f.GetFloat64("end"); err != nil {
					return err
				}
			}
			if f.Changed("step") {
				if ac.StepNS, err = f.GetFloat64("step"); err != nil {
					return err
				}
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			c, ok := analogCells[ac.Cell]
			if !ok {
				return errors.Errorf("unknown cell %q, expected inv or nand2", ac.Cell)
			}
			o := analog.Options{
				Vdd:  ac.Vdd,
				Load: ac.LoadPF * 1e-12,
				Step: ac.StepNS * 1e-9,
				End:  ac.EndNS * 1e-9,
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cell := c.cell()

			pts, err := analog.Sweep(ctx, cell, o)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s: Vdd %gV, load %gpF\n", cell.Name(), ac.Vdd, ac.LoadPF)
			for _, p := range pts {
				for i, n := range c.inputs {
					fmt.Fprintf(out, "%s=%d ", n, bit(p.In[i]))
				}
				fmt.Fprintf(out, "out=%.3fV y=%d\n", p.Out, bit(p.Logic))
			}

			if ac.CSV == "" {
				return nil
			}
			w, err := analog.Transient(ctx, cell, c.pulses(o.Vdd, ac.WidthNS*1e-9, ac.PeriodNS*1e-9), o)
			if err != nil {
				return err
			}
			fh, err := os.Create(ac.CSV)
			if err != nil {
				return errors.Wrap(err, "create csv file")
			}
			if err = analog.WriteCSV(fh, w, c.inputs); err == nil {
				err = errors.Wrap(fh.Close(), "close csv file")
			} else {
				fh.Close()
			}
			if err != nil {
				return err
			}
			a.log.Info("waveform written", zap.String("cell", cell.Name()), zap.String("file", ac.CSV), zap.Int("points", w.Len()))
			return nil
		},
	}
	def := config.Default().Analog
	f := cmd.Flags()
	f.String("cell", def.Cell, "cell to simulate (inv, nand2)")
	f.String("csv", "", "write the pulse transient waveform to `FILE`")
	f.Float64("end", def.EndNS, "transient end time in ns")
	f.Float64("step", def.StepNS, "transient time step in ns")
	return cmd
}
