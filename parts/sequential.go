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

// TFlipFlop is an edge-triggered toggle flip-flop: Reset dominates Set,
// Set dominates a rising edge on Toggle. It keeps one tick of private
// memory (the previous Toggle level) in a sixth pin that is never
// Connected to anything else in the graph, so node resolution never
// touches it and the part's own write from the prior tick survives.
type TFlipFlop struct {
	Toggle, Set, Reset graph.Pin
	Q, QInv            graph.Pin
}

const (
	tffToggle     = 0
	tffSet        = 1
	tffReset      = 2
	tffQ          = 3
	tffQInv       = 4
	tffTogglePrev = 5
)

// NewTFlipFlop builds one T flip-flop.
func NewTFlipFlop(g *graph.Graph, name string) TFlipFlop {
	pins := g.NewPart(name, []graph.PinState{
		graph.InputState(signal.Off),  // Toggle
		graph.InputState(signal.Off),  // Set
		graph.InputState(signal.Off),  // Reset
		graph.OutputState(signal.Low),  // Q
		graph.OutputState(signal.High), // QInv
		graph.InputState(signal.Off),  // TogglePrev (private)
	}, func(pins []graph.PinState) {
		var newQ signal.Signal
		switch {
		case pins[tffReset].Signal().IsHigh():
			newQ = signal.Low
		case pins[tffSet].Signal().IsHigh():
			newQ = signal.High
		case pins[tffToggle].Signal().IsHigh() && pins[tffTogglePrev].Signal().IsLowish():
			newQ = pins[tffQInv].Signal()
		default:
			newQ = pins[tffQ].Signal()
		}
		pins[tffQ] = graph.OutputState(newQ)
		pins[tffQInv] = graph.OutputState(signal.Not(newQ))
		pins[tffTogglePrev] = graph.InputState(pins[tffToggle].Signal())
	})
	return TFlipFlop{
		Toggle: pins[tffToggle], Set: pins[tffSet], Reset: pins[tffReset],
		Q: pins[tffQ], QInv: pins[tffQInv],
	}
}

// HalfAdder is the low-order cell of a 74193-equivalent counter: an input
// latch built from a TFlipFlop plus the combinational pre-wiring that
// lets Load, while asserted, override the toggle behavior through the
// flip-flop's Set/Reset inputs, without waiting for a clock edge.
type HalfAdder struct {
	Input, Clear, Load graph.Pin
	Toggle, Q, QInv    graph.Pin
}

// NewHalfAdder builds one half-adder cell.
func NewHalfAdder(g *graph.Graph, name string) HalfAdder {
	input := g.NewInput(name + ".input")
	clear := g.NewInput(name + ".clear")
	load := g.NewInput(name + ".load")
	ff := NewTFlipFlop(g, name+".flip_flop")

	// Clear is active-low as seen by this subnet (the outer 74193 inverts
	// the chip's active-high Clear before feeding it in here).
	useInputNary := AndNary(g, name+".use_input", 3)
	g.ConnectAll([]graph.Pin{input, useInputNary.Input(0)})
	g.Connect(load, useInputNary.Input(1))
	g.Connect(clear, useInputNary.Input(2))
	useInput := Not(g, name+".use_input_inv")
	g.Connect(useInputNary.Q, useInput.A)

	set := Not(g, name+".set")
	g.Connect(useInput.Q, set.A)

	loadFF := Nand(g, name+".load_ff")
	g.Connect(useInput.Q, loadFF.A)
	g.Connect(load, loadFF.B)

	notClear := Not(g, name+".not_clear")
	g.Connect(clear, notClear.A)
	notLoadFF := Not(g, name+".not_load_ff")
	g.Connect(loadFF.Q, notLoadFF.A)
	resetFF := Or(g, name+".reset_ff")
	g.Connect(notClear.Q, resetFF.A)
	g.Connect(notLoadFF.Q, resetFF.B)

	g.Connect(set.Q, ff.Set)
	g.Connect(resetFF.Q, ff.Reset)

	return HalfAdder{Input: input, Clear: clear, Load: load, Toggle: ff.Toggle, Q: ff.Q, QInv: ff.QInv}
}

// FullAdder is a higher-order 74193 cell: a HalfAdder whose Toggle is
// driven by the carry-chain UpCond/DownCond conditions instead of being
// exposed directly.
type FullAdder struct {
	Input, Clear, Load         graph.Pin
	Up, Down, UpCond, DownCond graph.Pin
	Q, QInv                    graph.Pin
}

// NewFullAdder builds one full-adder cell.
func NewFullAdder(g *graph.Graph, name string) FullAdder {
	up := g.NewInput(name + ".up")
	down := g.NewInput(name + ".down")
	upCond := g.NewInput(name + ".up_cond")
	downCond := g.NewInput(name + ".down_cond")
	half := NewHalfAdder(g, name+".half")

	upAnd := And(g, name+".up_and")
	g.Connect(up, upAnd.A)
	g.Connect(upCond, upAnd.B)
	downAnd := And(g, name+".down_and")
	g.Connect(down, downAnd.A)
	g.Connect(downCond, downAnd.B)
	or := Or(g, name+".up_or_down")
	g.Connect(upAnd.Q, or.A)
	g.Connect(downAnd.Q, or.B)
	toggle := Not(g, name+".toggle")
	g.Connect(or.Q, toggle.A)

	g.Connect(toggle.Q, half.Toggle)

	return FullAdder{
		Input: half.Input, Clear: half.Clear, Load: half.Load,
		Up: up, Down: down, UpCond: upCond, DownCond: downCond,
		Q: half.Q, QInv: half.QInv,
	}
}
