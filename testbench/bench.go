// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package testbench applies stimulus vectors to a part and reports its outputs.
//
// A Bench wraps the part under test (DUT) into a circuit with one input per
// DUT input pin and a monitor on every DUT pin. Each vector is applied and
// held for a fixed number of clock cycles (the observation window), then the
// DUT outputs are sampled and sent to the reporters:
//
//	b := testbench.New(nandsim.NandGate,
//		testbench.WithOracle(testbench.NandOracle),
//		testbench.WithReporter(testbench.NewConsole(os.Stdout)))
//	res, err := b.Run()
//
// By default, the vectors are all input combinations in ascending order, as
// returned by Exhaustive.
//
package testbench

import (
	"strings"
	"time"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/hwlib"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.uber.org/zap"
)

// Default settings.
const (
	DefaultPeriod        = 10 * time.Nanosecond
	DefaultHold          = 1
	DefaultStepsPerCycle = 16
)

// Bench is a stimulus harness for a single part.
//
type Bench struct {
	dut       nandsim.NewPartFn
	vectors   []Vector
	oracle    Oracle
	reporters []Reporter
	log       *zap.Logger
	period    time.Duration
	hold      uint
	spc       uint
	workers   int
}

// An Option configures a Bench.
//
type Option func(*Bench)

// WithVectors sets the input vectors to apply, in order.
//
func WithVectors(vs []Vector) Option { return func(b *Bench) { b.vectors = vs } }

// WithOracle sets the oracle used to check the DUT outputs.
//
func WithOracle(o Oracle) Option { return func(b *Bench) { b.oracle = o } }

// WithReporter adds reporters to the bench.
//
func WithReporter(r ...Reporter) Option {
	return func(b *Bench) { b.reporters = append(b.reporters, r...) }
}

// WithLogger sets the logger. The default is a no-op logger.
//
func WithLogger(l *zap.Logger) Option { return func(b *Bench) { b.log = l } }

// WithPeriod sets the simulated duration of a clock cycle.
//
func WithPeriod(d time.Duration) Option { return func(b *Bench) { b.period = d } }

// WithHold sets the number of clock cycles each vector is held for.
//
func WithHold(cycles uint) Option { return func(b *Bench) { b.hold = cycles } }

// WithStepsPerCycle sets the number of simulation steps per clock cycle. It
// must be larger than the propagation delay of the DUT, in steps, plus one.
//
func WithStepsPerCycle(spc uint) Option { return func(b *Bench) { b.spc = spc } }

// WithWorkers sets the number of worker goroutines of the circuit.
//
func WithWorkers(n int) Option { return func(b *Bench) { b.workers = n } }

// New returns a new Bench for the given part.
//
func New(dut nandsim.NewPartFn, opts ...Option) *Bench {
	b := &Bench{
		dut:    dut,
		log:    zap.NewNop(),
		period: DefaultPeriod,
		hold:   DefaultHold,
		spc:    DefaultStepsPerCycle,
	}
	for _, o := range opts {
		o(b)
	}
	if b.hold == 0 {
		b.hold = DefaultHold
	}
	if b.period <= 0 {
		b.period = DefaultPeriod
	}
	return b
}

// monitor returns a part that records the pin numbers of the given pins and
// has no components.
//
func monitor(pins []string, nums []int) nandsim.NewPartFn {
	return (&nandsim.PartSpec{
		Name:   "MONITOR",
		Inputs: pins,
		Mount: func(s *nandsim.Socket) []nandsim.Component {
			for i, n := range pins {
				nums[i] = s.Pin(n)
			}
			return nil
		},
	}).NewPart
}

func loopback(pins []string) string {
	var b strings.Builder
	for _, n := range pins {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n + "=" + n)
	}
	return b.String()
}

// Run applies all vectors to the DUT and returns the samples.
//
// The returned error is only non-nil if the circuit cannot be built, if a
// vector has the wrong size or if a reporter fails. Use Result.Err to check
// the outputs against the oracle.
//
func (b *Bench) Run() (*Result, error) {
	spec := b.dut("").PartSpec
	ins, outs := spec.Inputs, spec.Outputs
	if len(outs) == 0 {
		return nil, errors.Errorf("part %s has no outputs", spec.Name)
	}
	vectors := b.vectors
	if vectors == nil {
		vectors = Exhaustive(len(ins))
	}
	for i, v := range vectors {
		if len(v) != len(ins) {
			return nil, errors.Errorf("vector %d has %d values, part %s has %d inputs", i, len(v), spec.Name, len(ins))
		}
	}

	cur := make(Vector, len(ins))
	all := make([]string, 0, len(ins)+len(outs))
	all = append(append(all, ins...), outs...)
	pins := make([]int, len(all))

	parts := make(nandsim.Parts, 0, len(ins)+2)
	for i, n := range ins {
		k := i
		parts = append(parts, hwlib.Input(func() bool { return cur[k] })("out="+n))
	}
	parts = append(parts,
		b.dut(loopback(all)),
		monitor(all, pins)(loopback(all)))

	c, err := nandsim.NewCircuit(b.workers, b.spc, parts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build bench for %s", spec.Name)
	}
	defer c.Dispose()

	var tracers []Tracer
	for _, r := range b.reporters {
		if t, ok := r.(Tracer); ok {
			tracers = append(tracers, t)
		}
	}
	state := make(Vector, len(pins))
	trace := func() error {
		if len(tracers) == 0 {
			return nil
		}
		for i, p := range pins {
			state[i] = c.Get(p)
		}
		for _, t := range tracers {
			if err := t.Trace(c.Steps(), state); err != nil {
				return errors.Wrap(err, "trace")
			}
		}
		return nil
	}

	res := &Result{
		Header: Header{
			RunID:   xid.New().String(),
			DUT:     spec.Name,
			Inputs:  ins,
			Outputs: outs,
			Period:  b.period,
			SPC:     c.SPC(),
			Hold:    b.hold,
			Started: time.Now(),
		},
		Samples: make([]Sample, 0, len(vectors)),
	}
	log := b.log.With(zap.String("run", res.Header.RunID), zap.String("dut", spec.Name))
	log.Info("bench started",
		zap.Int("vectors", len(vectors)),
		zap.Uint("hold", b.hold),
		zap.Duration("period", b.period),
		zap.Int("components", c.Size()))

	for _, r := range b.reporters {
		if err := r.Begin(res.Header); err != nil {
			return nil, errors.Wrap(err, "begin report")
		}
	}
	if err := trace(); err != nil {
		return nil, err
	}

	for i, v := range vectors {
		at := res.Header.StepTime(c.Steps())
		copy(cur, v)
		for n := uint(0); n < b.hold*c.SPC(); n++ {
			c.Step()
			if err := trace(); err != nil {
				return nil, err
			}
		}
		s := Sample{
			Index:   i,
			At:      at,
			Inputs:  append(Vector(nil), v...),
			Outputs: make(Vector, len(outs)),
		}
		for o := range outs {
			s.Outputs[o] = c.Get(pins[len(ins)+o])
		}
		if b.oracle != nil {
			s.Want = b.oracle(s.Inputs)
		}
		if !s.OK() {
			log.Warn("output mismatch",
				zap.Stringer("in", s.Inputs),
				zap.Stringer("out", s.Outputs),
				zap.Stringer("want", s.Want))
		} else {
			log.Debug("sample",
				zap.Duration("at", s.At),
				zap.Stringer("in", s.Inputs),
				zap.Stringer("out", s.Outputs))
		}
		res.Samples = append(res.Samples, s)
		for _, r := range b.reporters {
			if err := r.Sample(s); err != nil {
				return nil, errors.Wrap(err, "report sample")
			}
		}
	}

	for _, r := range b.reporters {
		if err := r.End(res); err != nil {
			return nil, errors.Wrap(err, "end report")
		}
	}
	log.Info("bench finished",
		zap.Int("samples", len(res.Samples)),
		zap.Int("mismatches", len(res.Mismatches())))
	return res, nil
}
