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

// passThrough maps a single input's state onto the matching output pin:
// HiZ propagates as HiZ, Input(sig) drives Output(sig), and anything else
// (an output wired directly onto what should be an input slot) drives
// Output(Error) rather than silently misbehaving.
func passThrough(out *graph.PinState, in graph.PinState) {
	switch {
	case in.IsHiZ():
		*out = graph.HiZState
	case in.IsInput():
		*out = graph.OutputState(in.Signal())
	default:
		*out = graph.OutputState(signal.Error)
	}
}

// Buffer is a width-W non-tristate bus driver: W inputs, W outputs,
// always driving. Unlike a single-bit gate it has no enable; its outputs
// are permanently live, which is why, unlike TristateBuffer, it can never
// contribute HiZ to a shared bus node on its own.
type Buffer struct {
	Width   int
	Outputs []graph.Pin
	Inputs  []graph.Pin
}

// BusBuffer builds a width-wide buffer: Outputs[i] = Inputs[i].
func BusBuffer(g *graph.Graph, name string, width int) Buffer {
	states := make([]graph.PinState, 2*width)
	for i := 0; i < width; i++ {
		states[i] = graph.OutputState(signal.Off)
	}
	for i := width; i < 2*width; i++ {
		states[i] = graph.InputState(signal.Off)
	}
	pins := g.NewPart(name, states, func(pins []graph.PinState) {
		outs, ins := pins[:width], pins[width:]
		for i := range outs {
			passThrough(&outs[i], ins[i])
		}
	})
	return Buffer{Width: width, Outputs: pins[:width], Inputs: pins[width:]}
}

// TristateBuffer is a width-W bus driver with a shared enable pin: when en
// is High, it behaves like Buffer; otherwise every output pin goes HiZ,
// letting another driver own the shared bus node.
type TristateBuffer struct {
	Width   int
	Outputs []graph.Pin
	Inputs  []graph.Pin
	En      graph.Pin
}

// BusTristate builds a width-wide tristate buffer with trailing enable pin.
func BusTristate(g *graph.Graph, name string, width int) TristateBuffer {
	states := make([]graph.PinState, 2*width+1)
	for i := 0; i < width; i++ {
		states[i] = graph.HiZState
	}
	for i := width; i < 2*width; i++ {
		states[i] = graph.InputState(signal.Off)
	}
	states[2*width] = graph.InputState(signal.Off)

	pins := g.NewPart(name, states, func(pins []graph.PinState) {
		outs := pins[:width]
		ins := pins[width : 2*width]
		en := pins[2*width]
		if en.Signal().IsHigh() {
			for i := range outs {
				passThrough(&outs[i], ins[i])
			}
		} else {
			for i := range outs {
				outs[i] = graph.HiZState
			}
		}
	})
	return TristateBuffer{
		Width:   width,
		Outputs: pins[:width],
		Inputs:  pins[width : 2*width],
		En:      pins[2*width],
	}
}
