// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command nandsim simulates a 2-input NAND gate driven by an exhaustive
// stimulus bench.
//
// Usage:
//
//	nandsim [--config FILE] [--env FILE] [--log-level LEVEL] <command>
//	nandsim run [--part NAME] [--hold N] [--period D] [--steps N] [--workers N] [--vcd FILE] [--db FILE]
//	nandsim table
//	nandsim analog [--cell inv|nand2] [--csv FILE] [--end NS] [--step NS]
//	nandsim history [--db FILE] [RUN_ID]
//
// Durations (D) use Go syntax, such as 10ns. The analog times (NS) are
// nanoseconds as decimal numbers, such as 0.1.
//
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"go.uber.org/zap"

	"github.com/db47h/nandsim/internal/config"
	"github.com/db47h/nandsim/internal/logging"
)

// app holds the state shared by all commands.
type app struct {
	cfgFile  string
	envFile  string
	logLevel string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "nandsim",
		Short: "2-input NAND gate simulator and stimulus bench",
		Long: `nandsim simulates a 2-input NAND gate (y = NOT(a AND b)).

The run command applies the four input combinations (0,0), (0,1), (1,0), (1,1)
in order, holds each for a fixed observation window and prints the sampled
output. Waveforms can be dumped as VCD and runs recorded in an SQLite database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(a.envFile); err != nil {
				return err
			}
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = a.logLevel
			}
			if a.log, err = logging.New(cfg.LogLevel); err != nil {
				return err
			}
			a.cfg = cfg
			a.log.Debug("configuration loaded", zap.String("file", a.cfgFile), zap.Any("config", cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", config.DefaultFile, "configuration file")
	root.PersistentFlags().StringVar(&a.envFile, "env", ".env", "environment file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRunCmd(a),
		newTableCmd(),
		newAnalogCmd(a),
		newHistoryCmd(a),
	)
	return root
}

// exitError is returned by commands that already reported their failure.
type exitError struct {
	err error
}

func (e *exitError) Error() string { return e.err.Error() }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitError
		if !errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "nandsim:", err)
		}
		atexit.Exit(1)
	}
}
