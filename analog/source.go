// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package analog

import "math"

// A Source is an independent voltage source. V returns its voltage at time t
// (seconds).
//
type Source interface {
	V(t float64) float64
}

// DC is a constant voltage source.
//
type DC float64

// V implements Source.
//
func (d DC) V(float64) float64 { return float64(d) }

// Pulse is a periodic pulse voltage source with the semantics of the SPICE
// PULSE(V1 V2 TD TR TF PW PER) source. All times are in seconds.
//
type Pulse struct {
	Initial float64 // V1
	Pulsed  float64 // V2
	Delay   float64 // TD
	Rise    float64 // TR
	Fall    float64 // TF
	Width   float64 // PW
	Period  float64 // PER, 0 for a single pulse
}

// V implements Source.
//
func (p Pulse) V(t float64) float64 {
	t -= p.Delay
	if t < 0 {
		return p.Initial
	}
	if p.Period > 0 {
		t = math.Mod(t, p.Period)
	}
	switch {
	case t < p.Rise:
		return p.Initial + (p.Pulsed-p.Initial)*t/p.Rise
	case t < p.Rise+p.Width:
		return p.Pulsed
	case t < p.Rise+p.Width+p.Fall:
		return p.Pulsed + (p.Initial-p.Pulsed)*(t-p.Rise-p.Width)/p.Fall
	}
	return p.Initial
}
