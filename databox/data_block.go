// Package databox implements the composite parts that make up a
// Brainfuck-style computer's data section: an address pointer, a working
// register, backing RAM, and the bus arbitration between them.
package databox

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
	"github.com/gmofishsauce/gatesim/parts"
	"github.com/gmofishsauce/gatesim/signal"
)

// DataBlock is the data section of a Brainfuck-style machine: a 16-bit
// address pointer (`ptr`, moved by `<`/`>`), an 8-bit working register
// (`reg`, moved by `+`/`-`), a 32K x 8 RAM addressed by ptr, and the bus
// arbitration that lets reg and RAM take turns driving the shared data bus.
type DataBlock struct {
	Up, Down        graph.Pin
	Count           graph.Pin
	Store           graph.Pin
	Clear           graph.Pin
	PtrCountEnable  graph.Pin
	DataCountEnable graph.Pin
	Reset           graph.Pin

	bus parts.Buffer
	ptr parts.Counter16
}

// Data returns the externally visible data bus pins.
func (d *DataBlock) Data() []graph.Pin {
	return d.bus.Outputs
}

// Addr returns the 16 address pointer output pins.
func (d *DataBlock) Addr() [16]graph.Pin {
	return d.ptr.Q
}

// New builds a DataBlock, wiring ptr, reg, ram and the bus arbitration
// gates exactly as the reference data section does.
func New(g *graph.Graph, name string) *DataBlock {
	// ptr stores the address for `<` and `>`.
	ptr := parts.NewCounter16(g, name+".ptr")

	// reg stores the current working byte for `+` and `-`. It is
	// transferred to/from ram as ptr changes.
	reg := parts.NewCounter8(g, name+".reg")

	ram := parts.NewRAM32K(g, name+".ram")
	for i := range ram.Addr {
		g.Connect(ptr.Q[i], ram.Addr[i])
	}

	// Main data bus: also the external interface (Data()).
	bus := parts.BusBuffer(g, name+".bus", 8)

	// Lets reg be connected to or disconnected from the bus.
	regInterface := parts.BusTristate(g, name+".reg_interface", 8)

	for i := 0; i < 8; i++ {
		g.ConnectAll([]graph.Pin{
			bus.Inputs[i],
			ram.IO[i],
			reg.In[i],
			regInterface.Outputs[i],
		})
		g.Connect(reg.Q[i], regInterface.Inputs[i])
	}

	up := g.NewInput(name + ".up")
	down := g.NewInput(name + ".down")

	countClock := g.NewInput(name + ".count_clock")
	storeClock := g.NewInput(name + ".store_clock")
	clearClock := g.NewInput(name + ".clear_clock")

	ptrCountEn := g.NewInput(name + ".ptr_count_en")
	dataCountEn := g.NewInput(name + ".data_count_en")

	reset := g.NewInput(name + ".reset")
	g.Connect(reset, reg.Clear)

	// Leave the ram chip permanently selected; there is only one.
	low := g.NewOutput(name+".low", signal.Low)
	g.Connect(low, ram.CEInv)

	// Only reg or ram should drive the bus, never both. reg drives when
	// data count is enabled (to expose the result of `+`/`-`) or during
	// reset (so ram reads zero while the pointer cycles through memory,
	// clearing it). Otherwise ram drives.
	//
	// Since ram's OE is active low but the tristate enable is active
	// high, the same net can drive both directly.
	regNotRam := parts.Or(g, name+".reg_not_ram")
	g.Connect(reset, regNotRam.A)
	g.Connect(dataCountEn, regNotRam.B)
	g.ConnectAll([]graph.Pin{regNotRam.Q, regInterface.En, ram.OEInv})

	// Count reg up or down on the count clock when data count is
	// enabled.
	regCount := parts.And(g, name+".reg_count")
	g.Connect(countClock, regCount.A)
	g.Connect(dataCountEn, regCount.B)

	regUp := parts.Nand(g, name+".reg_up")
	regDown := parts.Nand(g, name+".reg_down")
	g.ConnectAll([]graph.Pin{regCount.Q, regUp.A, regDown.A})
	g.Connect(up, regUp.B)
	g.Connect(down, regDown.B)
	g.Connect(regUp.Q, reg.Up)
	g.Connect(regDown.Q, reg.Down)

	// Count ptr up or down on the count clock when ptr count is enabled,
	// or during the reset clear sweep.
	ptrCountA := parts.And(g, name+".ptr_count_a")
	g.Connect(countClock, ptrCountA.A)
	g.Connect(ptrCountEn, ptrCountA.B)

	clearSweep := parts.And(g, name+".clear_sweep")
	g.Connect(reset, clearSweep.A)
	g.Connect(clearClock, clearSweep.B)

	ptrCount := parts.Or(g, name+".ptr_count")
	g.Connect(ptrCountA.Q, ptrCount.A)
	g.Connect(clearSweep.Q, ptrCount.B)

	ptrUp := parts.Nand(g, name+".ptr_up")
	ptrDown := parts.Nand(g, name+".ptr_down")
	g.ConnectAll([]graph.Pin{ptrCount.Q, ptrUp.A, ptrDown.A})
	g.Connect(up, ptrUp.B)
	g.Connect(down, ptrDown.B)
	g.Connect(ptrUp.Q, ptr.Up)
	g.Connect(ptrDown.Q, ptr.Down)

	// Load reg from ram on the store clock, after a ptr crement.
	regLoad := parts.Nand(g, name+".reg_load")
	g.Connect(storeClock, regLoad.A)
	g.Connect(ptrCountEn, regLoad.B)
	g.Connect(regLoad.Q, reg.LoadInv)

	// Write the bus to ram on the store clock, after a reg crement, or
	// force a write during the reset clear sweep.
	write := parts.And(g, name+".write")
	g.Connect(storeClock, write.A)
	g.Connect(dataCountEn, write.B)

	ramWe := parts.Nor(g, name+".ram_we")
	g.Connect(reset, ramWe.A)
	g.Connect(write.Q, ramWe.B)
	g.Connect(ramWe.Q, ram.WEInv)

	return &DataBlock{
		Up:              up,
		Down:            down,
		Count:           countClock,
		Store:           storeClock,
		Clear:           clearClock,
		PtrCountEnable:  ptrCountEn,
		DataCountEnable: dataCountEn,
		Reset:           reset,
		bus:             bus,
		ptr:             ptr,
	}
}
