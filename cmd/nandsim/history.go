// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/nandsim/record"
	"github.com/db47h/nandsim/testbench"
)

// DefaultDB is the database read by history when none is configured.
const DefaultDB = "nandsim.db"

func status(r *record.Run) string {
	switch {
	case r.Passed == nil:
		return "INCOMPLETE"
	case *r.Passed:
		return "PASS"
	}
	return "FAIL"
}

func newHistoryCmd(a *app) *cobra.Command {
	var dbFile string
	cmd := &cobra.Command{
		Use:   "history [RUN_ID]",
		Short: "List recorded runs, or the samples of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.DB
			if cmd.Flags().Changed("db") || path == "" {
				path = dbFile
			}
			if _, err := os.Stat(path); err != nil {
				return errors.Errorf("no database %s", path)
			}
			rec, err := record.Open(path)
			if err != nil {
				return err
			}
			defer rec.Close()
			runs, err := rec.Runs()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for i := range runs {
					r := &runs[i]
					fmt.Fprintf(out, "%s  %s  %-6s %s/%s  %d sample(s)  %s\n",
						r.ID, r.Started.Format(time.RFC3339), r.DUT,
						strings.Join(r.Inputs, ","), strings.Join(r.Outputs, ","),
						r.Samples, status(r))
				}
				return nil
			}
			for i := range runs {
				if runs[i].ID != args[0] {
					continue
				}
				r := &runs[i]
				samples, err := rec.Samples(r.ID)
				if err != nil {
					return err
				}
				c := testbench.NewConsole(out)
				h := testbench.Header{RunID: r.ID, DUT: r.DUT, Inputs: r.Inputs, Outputs: r.Outputs, Period: r.Period, Hold: r.Hold, Started: r.Started}
				if err := c.Begin(h); err != nil {
					return err
				}
				for _, s := range samples {
					if err := c.Sample(s); err != nil {
						return err
					}
				}
				if r.Passed == nil {
					return nil
				}
				return c.End(&testbench.Result{Header: h, Samples: samples})
			}
			return errors.Errorf("no run with id %q", args[0])
		},
	}
	cmd.Flags().StringVar(&dbFile, "db", DefaultDB, "SQLite database `FILE`")
	return cmd
}
