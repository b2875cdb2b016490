// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package testbench

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Header describes a bench run.
//
type Header struct {
	RunID   string
	DUT     string   // name of the part under test
	Inputs  []string // input pin names
	Outputs []string // output pin names
	Period  time.Duration
	SPC     uint // simulation steps per clock cycle
	Hold    uint // clock cycles per input vector
	Started time.Time
}

// StepTime returns the simulated time at the given step number.
//
func (h *Header) StepTime(step uint) time.Duration {
	return time.Duration(uint64(h.Period) * uint64(step) / uint64(h.SPC))
}

// A Sample is the observation of the part outputs at the end of an
// observation window.
//
type Sample struct {
	Index   int
	At      time.Duration // simulated time at the start of the window
	Inputs  Vector
	Outputs Vector
	Want    Vector // expected outputs, nil if the bench has no oracle
}

// OK returns false if the sample outputs differ from the expected ones.
//
func (s *Sample) OK() bool {
	return s.Want == nil || s.Outputs.Equal(s.Want)
}

// Result holds the samples of a run.
//
type Result struct {
	Header  Header
	Samples []Sample
}

// Mismatches returns the samples whose outputs differ from the expected ones.
//
func (r *Result) Mismatches() []Sample {
	var ms []Sample
	for i := range r.Samples {
		if !r.Samples[i].OK() {
			ms = append(ms, r.Samples[i])
		}
	}
	return ms
}

// Err returns a *MismatchError if any sample does not match the oracle,
// nil otherwise.
//
func (r *Result) Err() error {
	ms := r.Mismatches()
	if len(ms) == 0 {
		return nil
	}
	return &MismatchError{Header: r.Header, Samples: ms}
}

// MismatchError reports the samples for which the part under test disagrees
// with the oracle.
//
type MismatchError struct {
	Header  Header
	Samples []Sample
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d mismatch", e.Header.DUT, len(e.Samples))
	if len(e.Samples) > 1 {
		b.WriteString("es")
	}
	for i := range e.Samples {
		s := &e.Samples[i]
		b.WriteString("; ")
		b.WriteString(formatPins(e.Header.Inputs, s.Inputs))
		b.WriteString(": got ")
		b.WriteString(formatPins(e.Header.Outputs, s.Outputs))
		b.WriteString(", expected ")
		b.WriteString(formatPins(e.Header.Outputs, s.Want))
	}
	return b.String()
}

func formatPins(names []string, v Vector) string {
	var b strings.Builder
	for i, n := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n)
		b.WriteByte('=')
		if i < len(v) && v[i] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

//go:generate mockgen -destination mock_testbench_test.go -package testbench_test github.com/db47h/nandsim/testbench Reporter,Tracer

// A Reporter receives the samples of a bench run.
//
type Reporter interface {
	Begin(h Header) error
	Sample(s Sample) error
	End(r *Result) error
}

// A Tracer is a Reporter that also receives the state of every monitored pin
// after each simulation step, inputs first, then outputs. Step 0 is the
// initial state. values is reused between calls and must not be retained.
//
type Tracer interface {
	Reporter
	Trace(step uint, values Vector) error
}

// Console is a Reporter that prints one line per sample, like:
//
//	t=0s a=0 b=0 out=1
//
type Console struct {
	w io.Writer
	h Header
}

// NewConsole returns a new Console reporter writing to w.
//
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Begin implements Reporter.
//
func (c *Console) Begin(h Header) error {
	c.h = h
	_, err := fmt.Fprintf(c.w, "# %s: %d input(s), hold %d x %v\n", h.DUT, len(h.Inputs), h.Hold, h.Period)
	return err
}

// Sample implements Reporter.
//
func (c *Console) Sample(s Sample) error {
	line := "t=" + s.At.String() + " " + formatPins(c.h.Inputs, s.Inputs) + " " + formatPins(c.h.Outputs, s.Outputs)
	if !s.OK() {
		line += " (expected " + formatPins(c.h.Outputs, s.Want) + ")"
	}
	_, err := fmt.Fprintln(c.w, line)
	return err
}

// End implements Reporter.
//
func (c *Console) End(r *Result) error {
	ms := len(r.Mismatches())
	var err error
	if ms == 0 {
		_, err = fmt.Fprintf(c.w, "# PASS %d/%d\n", len(r.Samples), len(r.Samples))
	} else {
		_, err = fmt.Fprintf(c.w, "# FAIL %d/%d\n", len(r.Samples)-ms, len(r.Samples))
	}
	return err
}
