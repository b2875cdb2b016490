// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package nandsim simulates a 2-input NAND gate and the circuits that can be
built from it, using Go as a hardware description language.

The combinational unit is the Nand function and its circuit counterpart,
NandGate. Circuits are composed with Chip and run with NewCircuit. Every
component of a circuit is updated once per simulation step, from the pin
states of the previous step, so that a NAND gate has a propagation delay of
exactly one step.

The API is designed to mimic a real hardware description language. As a
result, it relies heavily on closures and can feel a bit awkward when
implementing custom components. MakePart offers a reflection based
alternative.

Sub-package testbench applies exhaustive stimulus to a part and reports its
outputs; hwlib provides the other logic gates built from NAND units.
*/
package nandsim
