// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package analog provides a switch-level transient model of static CMOS
// cells: an inverter and a 2-input NAND driving a capacitive load, excited by
// DC or pulse voltage sources.
//
// Transistors are modeled as voltage-controlled conductances, so the output
// node reduces to a single RC equation per time step. This is enough to
// observe logic levels, transition shapes and the NAND truth table at the
// Vdd/2 threshold; it is not a circuit simulator.
//
package analog
