// Package parts implements the primitive part library: combinational
// gates, bus drivers, and the sequential and memory components built on
// top of the graph package's pin/node kernel.
package parts

/*
Author: Jeff Berkowitz
Copyright (C) 2023 Jeff Berkowitz

This file is part of gatesim.

Gatesim is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation, either version 3
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see http://www.gnu.org/licenses/.
*/

import (
	"github.com/gmofishsauce/gatesim/graph"
	"github.com/gmofishsauce/gatesim/signal"
)

// UnaryGate is a single-input, single-output combinational part: A -> Q.
type UnaryGate struct {
	A, Q graph.Pin
}

const (
	unaryA = 0
	unaryQ = 1
)

func newUnaryGate(g *graph.Graph, name string, updater graph.Updater) UnaryGate {
	pins := g.NewPart(name, []graph.PinState{graph.InputState(signal.Off), graph.OutputState(signal.Off)}, updater)
	return UnaryGate{A: pins[unaryA], Q: pins[unaryQ]}
}

// Not builds a single-input inverter.
func Not(g *graph.Graph, name string) UnaryGate {
	return newUnaryGate(g, name, func(pins []graph.PinState) {
		pins[unaryQ] = graph.OutputState(signal.Not(pins[unaryA].Signal()))
	})
}

// UnaryBuffer builds a non-inverting single-input driver.
func UnaryBuffer(g *graph.Graph, name string) UnaryGate {
	return newUnaryGate(g, name, func(pins []graph.PinState) {
		pins[unaryQ] = graph.OutputState(pins[unaryA].Signal())
	})
}

// BinaryGate is a two-input, single-output combinational part: A, B -> Q.
type BinaryGate struct {
	A, B, Q graph.Pin
}

const (
	binA = 0
	binB = 1
	binQ = 2
)

func newBinaryGate(g *graph.Graph, name string, updater graph.Updater) BinaryGate {
	pins := g.NewPart(name, []graph.PinState{graph.InputState(signal.Off), graph.InputState(signal.Off), graph.OutputState(signal.Off)}, updater)
	return BinaryGate{A: pins[binA], B: pins[binB], Q: pins[binQ]}
}

// And builds a two-input AND gate.
func And(g *graph.Graph, name string) BinaryGate {
	return newBinaryGate(g, name, func(pins []graph.PinState) {
		pins[binQ] = graph.OutputState(signal.And(pins[binA].Signal(), pins[binB].Signal()))
	})
}

// Nand builds a two-input NAND gate.
func Nand(g *graph.Graph, name string) BinaryGate {
	return newBinaryGate(g, name, func(pins []graph.PinState) {
		pins[binQ] = graph.OutputState(signal.Not(signal.And(pins[binA].Signal(), pins[binB].Signal())))
	})
}

// Or builds a two-input OR gate.
func Or(g *graph.Graph, name string) BinaryGate {
	return newBinaryGate(g, name, func(pins []graph.PinState) {
		pins[binQ] = graph.OutputState(signal.Or(pins[binA].Signal(), pins[binB].Signal()))
	})
}

// Nor builds a two-input NOR gate.
func Nor(g *graph.Graph, name string) BinaryGate {
	return newBinaryGate(g, name, func(pins []graph.PinState) {
		pins[binQ] = graph.OutputState(signal.Not(signal.Or(pins[binA].Signal(), pins[binB].Signal())))
	})
}

// Xor builds a two-input XOR gate.
func Xor(g *graph.Graph, name string) BinaryGate {
	return newBinaryGate(g, name, func(pins []graph.PinState) {
		pins[binQ] = graph.OutputState(signal.Xor(pins[binA].Signal(), pins[binB].Signal()))
	})
}

// NaryGate is an N-input combinational gate: pins[0] is Q, pins[1:] are
// the inputs, in declaration order.
type NaryGate struct {
	Q      graph.Pin
	Inputs []graph.Pin
}

// Input returns the i'th input pin.
func (n NaryGate) Input(i int) graph.Pin { return n.Inputs[i] }

func newNaryGate(g *graph.Graph, name string, inputs int, updater graph.Updater) NaryGate {
	states := make([]graph.PinState, inputs+1)
	states[0] = graph.OutputState(signal.Off)
	for i := 1; i < len(states); i++ {
		states[i] = graph.InputState(signal.Off)
	}
	pins := g.NewPart(name, states, updater)
	return NaryGate{Q: pins[0], Inputs: pins[1:]}
}

// foldInputs applies fold across pins[1:], seeded with pins[1].Signal(),
// without short-circuiting — an Error partway through must still be
// folded over every remaining input so it can't be masked by a later Off.
func foldInputs(pins []graph.PinState, fold func(a, b signal.Signal) signal.Signal) signal.Signal {
	result := pins[1].Signal()
	for _, st := range pins[2:] {
		result = fold(result, st.Signal())
	}
	return result
}

// AndNary builds an N-input AND gate.
func AndNary(g *graph.Graph, name string, inputs int) NaryGate {
	return newNaryGate(g, name, inputs, func(pins []graph.PinState) {
		pins[0] = graph.OutputState(foldInputs(pins, signal.And))
	})
}

// OrNary builds an N-input OR gate.
func OrNary(g *graph.Graph, name string, inputs int) NaryGate {
	return newNaryGate(g, name, inputs, func(pins []graph.PinState) {
		pins[0] = graph.OutputState(foldInputs(pins, signal.Or))
	})
}

// NandNary builds an N-input NAND gate.
func NandNary(g *graph.Graph, name string, inputs int) NaryGate {
	return newNaryGate(g, name, inputs, func(pins []graph.PinState) {
		pins[0] = graph.OutputState(signal.Not(foldInputs(pins, signal.And)))
	})
}

// NorNary builds an N-input NOR gate.
func NorNary(g *graph.Graph, name string, inputs int) NaryGate {
	return newNaryGate(g, name, inputs, func(pins []graph.PinState) {
		pins[0] = graph.OutputState(signal.Not(foldInputs(pins, signal.Or)))
	})
}
