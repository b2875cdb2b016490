// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vcd writes bench traces as Value Change Dump files (IEEE 1364),
// readable by waveform viewers like GTKWave.
//
package vcd

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/db47h/nandsim/testbench"
	"github.com/pkg/errors"
)

// Version is written in the $version section of the dump.
var Version = "nandsim"

// Writer is a testbench.Tracer that writes a VCD dump. The timescale is 1ps.
//
type Writer struct {
	w      *bufio.Writer
	c      io.Closer
	h      testbench.Header
	ids    []string
	last   testbench.Vector
	dumped bool
	stamp  uint // step of the last timestamp written
	err    error
}

// New returns a new Writer writing to w.
//
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Create creates the named file and returns a Writer for it. The file is
// closed by Close.
//
func Create(name string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrap(err, "create vcd file")
	}
	w := New(f)
	w.c = f
	return w, nil
}

// ident returns the short identifier code of the n-th signal, made of the
// printable ASCII characters '!' to '~'.
//
func ident(n int) string {
	const first, count = '!', '~' - '!' + 1
	var b []byte
	for {
		b = append(b, byte(first+n%count))
		n /= count
		if n == 0 {
			break
		}
		n--
	}
	return string(b)
}

func (w *Writer) write(args ...string) {
	if w.err != nil {
		return
	}
	for _, a := range args {
		if _, w.err = w.w.WriteString(a); w.err != nil {
			return
		}
	}
}

// Begin implements testbench.Reporter. It writes the VCD header.
//
func (w *Writer) Begin(h testbench.Header) error {
	w.h = h
	w.dumped = false
	w.write("$date\n\t", h.Started.Format(time.RFC1123), "\n$end\n",
		"$version\n\t", Version, "\n$end\n",
		"$comment\n\trun ", h.RunID, "\n$end\n",
		"$timescale 1ps $end\n",
		"$scope module ", scopeName(h.DUT), " $end\n")
	names := append(append([]string(nil), h.Inputs...), h.Outputs...)
	w.ids = make([]string, len(names))
	for i, n := range names {
		w.ids[i] = ident(i)
		w.write("$var wire 1 ", w.ids[i], " ", n, " $end\n")
	}
	w.write("$upscope $end\n$enddefinitions $end\n")
	w.last = make(testbench.Vector, len(names))
	return w.err
}

func scopeName(dut string) string {
	if dut == "" {
		return "dut"
	}
	return dut
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func (w *Writer) timestamp(step uint) string {
	w.stamp = step
	ps := uint64(w.h.Period.Nanoseconds()) * 1000 * uint64(step) / uint64(w.h.SPC)
	return "#" + strconv.FormatUint(ps, 10) + "\n"
}

// Trace implements testbench.Tracer. Only value changes are written.
//
func (w *Writer) Trace(step uint, values testbench.Vector) error {
	if len(values) != len(w.ids) {
		return errors.Errorf("got %d values for %d signals", len(values), len(w.ids))
	}
	if !w.dumped {
		w.write(w.timestamp(step), "$dumpvars\n")
		for i, v := range values {
			w.write(bit(v), w.ids[i], "\n")
		}
		w.write("$end\n")
		copy(w.last, values)
		w.dumped = true
		return w.err
	}
	ts := false
	for i, v := range values {
		if v == w.last[i] {
			continue
		}
		if !ts {
			w.write(w.timestamp(step))
			ts = true
		}
		w.write(bit(v), w.ids[i], "\n")
		w.last[i] = v
	}
	return w.err
}

// Sample implements testbench.Reporter. It does nothing.
//
func (w *Writer) Sample(testbench.Sample) error { return nil }

// End implements testbench.Reporter. It writes the final timestamp and
// flushes the output.
//
func (w *Writer) End(r *testbench.Result) error {
	if steps := uint(len(r.Samples)) * r.Header.Hold * r.Header.SPC; w.dumped && steps > w.stamp {
		w.write(w.timestamp(steps))
	}
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// Close closes the underlying file if the Writer was created with Create.
//
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		return err
	}
	if w.c != nil {
		return w.c.Close()
	}
	return nil
}
